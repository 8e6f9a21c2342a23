package api

// Domain indicates whether a record belongs to the live or test integration.
type Domain string

const (
	DomainLive Domain = "live"
	DomainTest Domain = "test"
)

// Authorization is the reusable card authorization object returned on
// transactions and subscriptions.
type Authorization struct {
	AuthorizationCode string `json:"authorization_code"`
	Bin               string `json:"bin,omitempty"`
	Last4             string `json:"last4,omitempty"`
	ExpMonth          string `json:"exp_month,omitempty"`
	ExpYear           string `json:"exp_year,omitempty"`
	Channel           string `json:"channel,omitempty"`
	CardType          string `json:"card_type,omitempty"`
	Bank              string `json:"bank,omitempty"`
	CountryCode       string `json:"country_code,omitempty"`
	Brand             string `json:"brand,omitempty"`
	Reusable          bool   `json:"reusable,omitempty"`
	Signature         string `json:"signature,omitempty"`
	AccountName       string `json:"account_name,omitempty"`
}
