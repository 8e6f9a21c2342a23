package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Exchange records the last request a stub API server received.
type Exchange struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
	Header   http.Header
}

// NewAPIServer returns a test server that answers every request with the
// given status and JSON body. When rec is non-nil the last request is
// recorded into it. The server is closed automatically on test cleanup.
func NewAPIServer(t *testing.T, status int, body string, rec *Exchange) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rec != nil {
			payload, _ := io.ReadAll(r.Body)

			*rec = Exchange{
				Method:   r.Method,
				Path:     r.URL.Path,
				RawQuery: r.URL.RawQuery,
				Body:     payload,
				Header:   r.Header.Clone(),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server
}
