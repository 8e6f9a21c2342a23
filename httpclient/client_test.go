package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andyle182810/paystack-go/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesClientWithDefaultSettings(t *testing.T) {
	t.Parallel()

	client := httpclient.New("https://api.paystack.co")

	require.NotNil(t, client)
	require.Equal(t, "https://api.paystack.co", client.BaseURL())
}

func TestNew_TrimsTrailingSlashFromBaseURL(t *testing.T) {
	t.Parallel()

	client := httpclient.New("https://api.paystack.co/")

	require.Equal(t, "https://api.paystack.co", client.BaseURL())
}

func TestWithAPIKey_AddsBearerAuthorizationHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer sk_test_abc123", req.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL, httpclient.WithAPIKey("sk_test_abc123"))

	err := client.Get(context.Background(), "/refund", nil)

	require.NoError(t, err)
}

func TestGet_SendsRequestIDHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	err := client.Get(context.Background(), "/refund", nil)

	require.NoError(t, err)
}

func TestGet_OmitsQueryStringWhenNoParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Empty(t, req.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	err := client.Get(context.Background(), "/refund", nil, httpclient.WithQueryParams(map[string]string{}))

	require.NoError(t, err)
}

func TestGet_EncodesQueryParamsInStableOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "currency=NGN&perPage=5", req.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	err := client.Get(context.Background(), "/refund", nil,
		httpclient.WithQuery("perPage", "5"),
		httpclient.WithQuery("currency", "NGN"))

	require.NoError(t, err)
}

func TestPost_EncodesBodyAsJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "ref_123", body["transaction"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	err := client.Post(context.Background(), "/refund", map[string]string{"transaction": "ref_123"}, nil)

	require.NoError(t, err)
}

func TestGet_MapsErrorEnvelopeToServiceError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": false, "message": "Refund not found"}`))
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	err := client.Get(context.Background(), "/refund/0", nil)

	require.ErrorIs(t, err, httpclient.ErrServiceError)

	svcErr, ok := httpclient.IsServiceError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	require.Equal(t, "Refund not found", svcErr.Message)
	require.Contains(t, err.Error(), "status code: 404")
}

func TestGet_KeepsRawBodyWhenErrorEnvelopeUnparseable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	err := client.Get(context.Background(), "/refund", nil)

	svcErr, ok := httpclient.IsServiceError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, svcErr.StatusCode)
	require.Equal(t, "upstream exploded", svcErr.Message)
}

func TestGet_ReturnsDecodeErrorForMalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": tru`))
	}))
	defer server.Close()

	client := httpclient.New(server.URL)

	var response map[string]any
	err := client.Get(context.Background(), "/refund", &response)

	require.ErrorIs(t, err, httpclient.ErrDecodeResponse)
}

func TestNew_AppliesMaxResponseSizeOption(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		data := make([]byte, 1024)
		for idx := range data {
			data[idx] = 'a'
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"data": string(data)})
	}))
	defer server.Close()

	client := httpclient.New(server.URL, httpclient.WithMaxResponseSize(100))

	var response map[string]string
	err := client.Get(context.Background(), "/refund", &response)

	require.ErrorIs(t, err, httpclient.ErrResponseTooLarge)
}

func TestWithTimeout_SetsClientTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL, httpclient.WithTimeout(10*time.Millisecond))

	err := client.Get(context.Background(), "/refund", nil)

	require.Error(t, err)
}

func TestWithDefaultHeaders_SetsCustomHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "paystack-go/1.0", req.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL, httpclient.WithDefaultHeaders(map[string]string{
		"User-Agent": "paystack-go/1.0",
	}))

	err := client.Get(context.Background(), "/refund", nil)

	require.NoError(t, err)
}
