package customer

import (
	"encoding/json"
	"strconv"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/validator"
)

var validate = validator.Default()

// CreateRequest is the body for creating a customer. Build with
// NewCreateRequestBuilder.
type CreateRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type CreateRequestBuilder struct {
	req CreateRequest
}

func NewCreateRequestBuilder() *CreateRequestBuilder {
	return &CreateRequestBuilder{req: CreateRequest{}} //nolint:exhaustruct
}

func (b *CreateRequestBuilder) Email(email string) *CreateRequestBuilder {
	b.req.Email = email

	return b
}

func (b *CreateRequestBuilder) FirstName(name string) *CreateRequestBuilder {
	b.req.FirstName = &name

	return b
}

func (b *CreateRequestBuilder) LastName(name string) *CreateRequestBuilder {
	b.req.LastName = &name

	return b
}

func (b *CreateRequestBuilder) Phone(phone string) *CreateRequestBuilder {
	b.req.Phone = &phone

	return b
}

func (b *CreateRequestBuilder) Build() (CreateRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return CreateRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// UpdateRequest carries the fields that can change on an existing customer.
// All fields are optional.
type UpdateRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ListQuery pages through customers. Zero values are omitted.
type ListQuery struct {
	PerPage int
	Page    int
}

func (q ListQuery) params() map[string]string {
	params := make(map[string]string)

	if q.PerPage > 0 {
		params["perPage"] = strconv.Itoa(q.PerPage)
	}

	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}

	return params
}

// Customer as returned by the create, list, fetch and update operations.
// ID, Email and CustomerCode are always present.
type Customer struct {
	ID           int64       `json:"id"`
	Integration  *int64      `json:"integration,omitempty"`
	Email        string      `json:"email"`
	FirstName    *string     `json:"first_name,omitempty"`
	LastName     *string     `json:"last_name,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	CustomerCode string      `json:"customer_code"`
	Domain       *api.Domain `json:"domain,omitempty"`
	RiskAction   *string     `json:"risk_action,omitempty"`
	CreatedAt    *string     `json:"created_at,omitempty"`
	UpdatedAt    *string     `json:"updated_at,omitempty"`
}

// UnmarshalJSON accepts both snake_case and camelCase timestamps; the API
// mixes the two casings across endpoints.
func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer

	aux := struct {
		*plain
		CreatedAtCamel *string `json:"createdAt"`
		UpdatedAtCamel *string `json:"updatedAt"`
	}{plain: (*plain)(c), CreatedAtCamel: nil, UpdatedAtCamel: nil}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if c.CreatedAt == nil {
		c.CreatedAt = aux.CreatedAtCamel
	}

	if c.UpdatedAt == nil {
		c.UpdatedAt = aux.UpdatedAtCamel
	}

	return nil
}
