package api

import (
	"errors"
	"fmt"
)

// Resource identifies the API resource group an error originated from.
type Resource string

const (
	ResourceRefund       Resource = "refund"
	ResourceSubscription Resource = "subscription"
	ResourceCustomer     Resource = "customer"
	ResourceTransaction  Resource = "transaction"
)

// Error tags a failure with the resource group whose operation produced it.
// Serialization, transport, and deserialization failures are all reported
// through the same variant; the underlying cause stays reachable through
// Unwrap for callers that need to distinguish them.
type Error struct {
	Resource Resource
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Resource, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(resource Resource, err error) *Error {
	return &Error{
		Resource: resource,
		Err:      err,
	}
}

func IsResourceError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
