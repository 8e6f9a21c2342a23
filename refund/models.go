package refund

import (
	"encoding/json"
	"strconv"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/validator"
)

var validate = validator.Default()

// CreateRequest is the body for initiating a refund. Build with
// NewCreateRequestBuilder.
type CreateRequest struct {
	// Transaction reference or ID to refund.
	Transaction string `json:"transaction" validate:"required"`
	// Amount to refund in the subunit of the supported currency. Defaults
	// to the original transaction amount and cannot exceed it.
	Amount       *int64  `json:"amount,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	CustomerNote *string `json:"customer_note,omitempty"`
	MerchantNote *string `json:"merchant_note,omitempty"`
}

type CreateRequestBuilder struct {
	req CreateRequest
}

func NewCreateRequestBuilder() *CreateRequestBuilder {
	return &CreateRequestBuilder{req: CreateRequest{}} //nolint:exhaustruct
}

func (b *CreateRequestBuilder) Transaction(transaction string) *CreateRequestBuilder {
	b.req.Transaction = transaction

	return b
}

func (b *CreateRequestBuilder) Amount(amount int64) *CreateRequestBuilder {
	b.req.Amount = &amount

	return b
}

func (b *CreateRequestBuilder) Currency(currency string) *CreateRequestBuilder {
	b.req.Currency = &currency

	return b
}

func (b *CreateRequestBuilder) CustomerNote(note string) *CreateRequestBuilder {
	b.req.CustomerNote = &note

	return b
}

func (b *CreateRequestBuilder) MerchantNote(note string) *CreateRequestBuilder {
	b.req.MerchantNote = &note

	return b
}

func (b *CreateRequestBuilder) Build() (CreateRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return CreateRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// AccountDetails are the customer bank account details used when retrying a
// failed refund. The currency must match the payment currency.
type AccountDetails struct {
	Currency      string `json:"currency"       validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankID        string `json:"bank_id"        validate:"required"`
}

// RetryRequest is the body for retrying a failed refund. Build with
// NewRetryRequestBuilder.
type RetryRequest struct {
	RefundAccountDetails AccountDetails `json:"refund_account_details"`
}

type RetryRequestBuilder struct {
	req RetryRequest
}

func NewRetryRequestBuilder() *RetryRequestBuilder {
	return &RetryRequestBuilder{req: RetryRequest{}} //nolint:exhaustruct
}

func (b *RetryRequestBuilder) AccountDetails(details AccountDetails) *RetryRequestBuilder {
	b.req.RefundAccountDetails = details

	return b
}

func (b *RetryRequestBuilder) Build() (RetryRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return RetryRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// ListQuery filters the refund list. Zero values are left out of the query
// string entirely rather than sent empty.
type ListQuery struct {
	// Transaction ID or reference to filter by.
	Transaction string
	Currency    string
	// From and To bound the creation date range, ISO 8601.
	From    string
	To      string
	PerPage int
	Page    int
}

func (q ListQuery) params() map[string]string {
	params := make(map[string]string)

	if q.Transaction != "" {
		params["transaction"] = q.Transaction
	}

	if q.Currency != "" {
		params["currency"] = q.Currency
	}

	if q.From != "" {
		params["from"] = q.From
	}

	if q.To != "" {
		params["to"] = q.To
	}

	if q.PerPage > 0 {
		params["perPage"] = strconv.Itoa(q.PerPage)
	}

	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}

	return params
}

// Refund is returned by the create, retry, list and fetch operations. Only
// ID, Amount, Currency and Status are guaranteed; the rest depend on the
// refund's state.
type Refund struct {
	ID          int64       `json:"id"`
	Integration *int64      `json:"integration,omitempty"`
	Domain      *api.Domain `json:"domain,omitempty"`
	// Transaction is a full transaction object on create but a plain numeric
	// ID on list and fetch. Use TransactionID for the numeric form.
	Transaction    json.RawMessage `json:"transaction,omitempty"`
	Amount         int64           `json:"amount"`
	DeductedAmount *int64          `json:"deducted_amount,omitempty"`
	Currency       string          `json:"currency"`
	Channel        *string         `json:"channel,omitempty"`
	FullyDeducted  *bool           `json:"fully_deducted,omitempty"`
	RefundedBy     *string         `json:"refunded_by,omitempty"`
	RefundedAt     *string         `json:"refunded_at,omitempty"`
	ExpectedAt     *string         `json:"expected_at,omitempty"`
	CustomerNote   *string         `json:"customer_note,omitempty"`
	MerchantNote   *string         `json:"merchant_note,omitempty"`
	// Status is one of pending, processing, processed, failed.
	Status    string  `json:"status"`
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// UnmarshalJSON accepts both the snake_case timestamps the list and fetch
// endpoints return and the camelCase ones the create endpoint returns.
func (r *Refund) UnmarshalJSON(data []byte) error {
	type plain Refund

	aux := struct {
		*plain
		CreatedAtCamel *string `json:"createdAt"`
		UpdatedAtCamel *string `json:"updatedAt"`
	}{plain: (*plain)(r), CreatedAtCamel: nil, UpdatedAtCamel: nil}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if r.CreatedAt == nil {
		r.CreatedAt = aux.CreatedAtCamel
	}

	if r.UpdatedAt == nil {
		r.UpdatedAt = aux.UpdatedAtCamel
	}

	return nil
}

// TransactionID returns the refund's transaction as a numeric ID. ok is
// false when the field is absent or holds a transaction object instead.
func (r *Refund) TransactionID() (int64, bool) {
	if len(r.Transaction) == 0 {
		return 0, false
	}

	var id int64
	if err := json.Unmarshal(r.Transaction, &id); err != nil {
		return 0, false
	}

	return id, true
}
