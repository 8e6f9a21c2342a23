package httpclient

// ErrorResponse mirrors the envelope the API returns on non-2xx responses.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
