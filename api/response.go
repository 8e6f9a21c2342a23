package api

// Response is the envelope wrapping every Paystack API response body.
// Status and Message are always present; Data may be omitted by the API
// depending on the operation and resource state.
type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Empty is the payload type for operations that return no data, such as
// enabling or disabling a subscription.
type Empty struct{}
