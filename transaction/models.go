package transaction

import (
	"encoding/json"
	"strconv"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/customer"
	"github.com/andyle182810/paystack-go/validator"
)

var validate = validator.Default()

// InitializeRequest is the body for initializing a transaction. Build with
// NewInitializeRequestBuilder.
type InitializeRequest struct {
	Email string `json:"email" validate:"required,email"`
	// Amount in the subunit of the supported currency.
	Amount      int64    `json:"amount" validate:"required,gt=0"`
	Currency    *string  `json:"currency,omitempty"`
	Reference   *string  `json:"reference,omitempty"`
	CallbackURL *string  `json:"callback_url,omitempty"`
	Plan        *string  `json:"plan,omitempty"`
	Channels    []string `json:"channels,omitempty"`
}

type InitializeRequestBuilder struct {
	req InitializeRequest
}

func NewInitializeRequestBuilder() *InitializeRequestBuilder {
	return &InitializeRequestBuilder{req: InitializeRequest{}} //nolint:exhaustruct
}

func (b *InitializeRequestBuilder) Email(email string) *InitializeRequestBuilder {
	b.req.Email = email

	return b
}

func (b *InitializeRequestBuilder) Amount(amount int64) *InitializeRequestBuilder {
	b.req.Amount = amount

	return b
}

func (b *InitializeRequestBuilder) Currency(currency string) *InitializeRequestBuilder {
	b.req.Currency = &currency

	return b
}

func (b *InitializeRequestBuilder) Reference(reference string) *InitializeRequestBuilder {
	b.req.Reference = &reference

	return b
}

func (b *InitializeRequestBuilder) CallbackURL(url string) *InitializeRequestBuilder {
	b.req.CallbackURL = &url

	return b
}

func (b *InitializeRequestBuilder) Plan(plan string) *InitializeRequestBuilder {
	b.req.Plan = &plan

	return b
}

func (b *InitializeRequestBuilder) Channels(channels ...string) *InitializeRequestBuilder {
	b.req.Channels = channels

	return b
}

func (b *InitializeRequestBuilder) Build() (InitializeRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return InitializeRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// ChargeAuthorizationRequest charges a stored card authorization. Build with
// NewChargeAuthorizationRequestBuilder.
type ChargeAuthorizationRequest struct {
	Email             string  `json:"email"              validate:"required,email"`
	Amount            int64   `json:"amount"             validate:"required,gt=0"`
	AuthorizationCode string  `json:"authorization_code" validate:"required"`
	Currency          *string `json:"currency,omitempty"`
	Reference         *string `json:"reference,omitempty"`
}

type ChargeAuthorizationRequestBuilder struct {
	req ChargeAuthorizationRequest
}

func NewChargeAuthorizationRequestBuilder() *ChargeAuthorizationRequestBuilder {
	return &ChargeAuthorizationRequestBuilder{req: ChargeAuthorizationRequest{}} //nolint:exhaustruct
}

func (b *ChargeAuthorizationRequestBuilder) Email(email string) *ChargeAuthorizationRequestBuilder {
	b.req.Email = email

	return b
}

func (b *ChargeAuthorizationRequestBuilder) Amount(amount int64) *ChargeAuthorizationRequestBuilder {
	b.req.Amount = amount

	return b
}

func (b *ChargeAuthorizationRequestBuilder) AuthorizationCode(code string) *ChargeAuthorizationRequestBuilder {
	b.req.AuthorizationCode = code

	return b
}

func (b *ChargeAuthorizationRequestBuilder) Currency(currency string) *ChargeAuthorizationRequestBuilder {
	b.req.Currency = &currency

	return b
}

func (b *ChargeAuthorizationRequestBuilder) Reference(reference string) *ChargeAuthorizationRequestBuilder {
	b.req.Reference = &reference

	return b
}

func (b *ChargeAuthorizationRequestBuilder) Build() (ChargeAuthorizationRequest, error) {
	if err := validate.Validate(b.req); err != nil {
		return ChargeAuthorizationRequest{}, err //nolint:exhaustruct
	}

	return b.req, nil
}

// ListQuery filters the transaction list. Zero values are omitted.
type ListQuery struct {
	PerPage  int
	Page     int
	Customer int64
	Status   string
	From     string
	To       string
}

func (q ListQuery) params() map[string]string {
	params := make(map[string]string)

	if q.PerPage > 0 {
		params["perPage"] = strconv.Itoa(q.PerPage)
	}

	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}

	if q.Customer > 0 {
		params["customer"] = strconv.FormatInt(q.Customer, 10)
	}

	if q.Status != "" {
		params["status"] = q.Status
	}

	if q.From != "" {
		params["from"] = q.From
	}

	if q.To != "" {
		params["to"] = q.To
	}

	return params
}

// InitializedTransaction is the payload of a successful initialize call.
type InitializedTransaction struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Transaction as returned by verify, list, fetch and charge-authorization.
// ID, Status, Reference, Amount and Currency are always present.
type Transaction struct {
	ID              int64              `json:"id"`
	Domain          *api.Domain        `json:"domain,omitempty"`
	Status          string             `json:"status"`
	Reference       string             `json:"reference"`
	Amount          int64              `json:"amount"`
	Message         *string            `json:"message,omitempty"`
	GatewayResponse *string            `json:"gateway_response,omitempty"`
	PaidAt          *string            `json:"paid_at,omitempty"`
	Channel         *string            `json:"channel,omitempty"`
	Currency        string             `json:"currency"`
	IPAddress       *string            `json:"ip_address,omitempty"`
	Fees            *int64             `json:"fees,omitempty"`
	Customer        *customer.Customer `json:"customer,omitempty"`
	Authorization   *api.Authorization `json:"authorization,omitempty"`
	// Plan is an empty object for one-off charges and a plan object for
	// subscription charges.
	Plan      json.RawMessage `json:"plan,omitempty"`
	CreatedAt *string         `json:"created_at,omitempty"`
}

// UnmarshalJSON accepts both created_at and createdAt for the creation
// timestamp.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction

	aux := struct {
		*plain
		CreatedAtCamel *string `json:"createdAt"`
	}{plain: (*plain)(t), CreatedAtCamel: nil}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if t.CreatedAt == nil {
		t.CreatedAt = aux.CreatedAtCamel
	}

	return nil
}
