package subscription

import (
	"strconv"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/pagination"
	"github.com/andyle182810/paystack-go/validator"
)

var validate = validator.Default()

// Status of a subscription.
type Status string

const (
	StatusActive      Status = "active"
	StatusNonRenewing Status = "non-renewing"
	StatusAttention   Status = "attention"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// CreateRequest is the body for creating a subscription. Build with
// NewCreateRequestBuilder.
type CreateRequest struct {
	// Customer email address or customer code.
	Customer string `json:"customer" validate:"required"`
	// Plan code the customer is subscribed to.
	Plan string `json:"plan" validate:"required"`
	// Authorization code to charge. Defaults to the customer's most recent
	// authorization when unset.
	Authorization *string `json:"authorization,omitempty"`
	// StartDate for the first debit, ISO 8601.
	StartDate *string `json:"start_date,omitempty"`
}

type CreateRequestBuilder struct {
	req CreateRequest
}

func NewCreateRequestBuilder() *CreateRequestBuilder {
	return &CreateRequestBuilder{req: CreateRequest{}} //nolint:exhaustruct
}

func (b *CreateRequestBuilder) Customer(customer string) *CreateRequestBuilder {
	b.req.Customer = customer

	return b
}

func (b *CreateRequestBuilder) Plan(plan string) *CreateRequestBuilder {
	b.req.Plan = plan

	return b
}

func (b *CreateRequestBuilder) Authorization(authorization string) *CreateRequestBuilder {
	b.req.Authorization = &authorization

	return b
}

func (b *CreateRequestBuilder) StartDate(startDate string) *CreateRequestBuilder {
	b.req.StartDate = &startDate

	return b
}

func (b *CreateRequestBuilder) Build() (CreateRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return CreateRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// UpdateRequest identifies the subscription for the enable and disable
// operations. Build with NewUpdateRequestBuilder.
type UpdateRequest struct {
	Code  string `json:"code"  validate:"required"`
	Token string `json:"token" validate:"required"`
}

type UpdateRequestBuilder struct {
	req UpdateRequest
}

func NewUpdateRequestBuilder() *UpdateRequestBuilder {
	return &UpdateRequestBuilder{req: UpdateRequest{}} //nolint:exhaustruct
}

func (b *UpdateRequestBuilder) Code(code string) *UpdateRequestBuilder {
	b.req.Code = code

	return b
}

func (b *UpdateRequestBuilder) Token(token string) *UpdateRequestBuilder {
	b.req.Token = token

	return b
}

func (b *UpdateRequestBuilder) Build() (UpdateRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return UpdateRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// ListQuery filters the subscription list. Page controls always go on the
// wire, defaulted by the API rules; customer and plan are omitted when unset.
type ListQuery struct {
	PerPage  int
	Page     int
	Customer int64
	Plan     string
}

func (q ListQuery) params() map[string]string {
	page, perPage := pagination.Normalize(q.Page, q.PerPage)

	params := map[string]string{
		"perPage": strconv.Itoa(perPage),
		"page":    strconv.Itoa(page),
	}

	if q.Customer > 0 {
		params["customer"] = strconv.FormatInt(q.Customer, 10)
	}

	if q.Plan != "" {
		params["plan"] = q.Plan
	}

	return params
}

// Subscription as returned by the create, list and fetch operations. The
// timestamps are camelCase on the wire for this resource.
type Subscription struct {
	ID               int64             `json:"id"`
	Customer         int64             `json:"customer"`
	Plan             int64             `json:"plan"`
	Integration      int64             `json:"integration"`
	Domain           api.Domain        `json:"domain"`
	Start            int64             `json:"start"`
	Status           Status            `json:"status"`
	Quantity         int64             `json:"quantity"`
	Amount           int64             `json:"amount"`
	SubscriptionCode string            `json:"subscription_code"`
	EmailToken       string            `json:"email_token"`
	Authorization    api.Authorization `json:"authorization"`
	EasyCronID       *string           `json:"easy_cron_id,omitempty"`
	CronExpression   string            `json:"cron_expression"`
	NextPaymentDate  string            `json:"next_payment_date"`
	OpenInvoice      *string           `json:"open_invoice,omitempty"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}
