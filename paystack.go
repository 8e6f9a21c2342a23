// Package paystack is a typed Go client for the Paystack REST API. Each
// resource group lives in its own package; this package wires them onto a
// single shared transport authenticated with the integration's secret key.
//
//	client := paystack.New(os.Getenv("PAYSTACK_SECRET_KEY"))
//	resp, err := client.Refunds.Fetch(ctx, 12345)
package paystack

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/andyle182810/paystack-go/customer"
	"github.com/andyle182810/paystack-go/httpclient"
	"github.com/andyle182810/paystack-go/refund"
	"github.com/andyle182810/paystack-go/subscription"
	"github.com/andyle182810/paystack-go/transaction"
)

const DefaultBaseURL = "https://api.paystack.co"

// Client bundles one client per resource group. All resource clients share
// a single transport, which is never mutated after New returns, so a Client
// is safe for concurrent use.
type Client struct {
	Refunds       *refund.Client
	Subscriptions *subscription.Client
	Customers     *customer.Client
	Transactions  *transaction.Client

	http *httpclient.Client
}

type options struct {
	baseURL    string
	httpClient httpclient.Doer
	timeout    time.Duration
	logger     *zerolog.Logger
}

type Option func(*options)

// WithBaseURL overrides the API host, e.g. to point at a mock server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func WithHTTPClient(doer httpclient.Doer) Option {
	return func(o *options) {
		o.httpClient = doer
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// New returns a Client authenticated with the given secret key.
func New(secretKey string, opts ...Option) *Client {
	o := &options{
		baseURL:    DefaultBaseURL,
		httpClient: nil,
		timeout:    0,
		logger:     nil,
	}

	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []httpclient.Option{httpclient.WithAPIKey(secretKey)}

	if o.httpClient != nil {
		clientOpts = append(clientOpts, httpclient.WithHTTPClient(o.httpClient))
	}

	if o.timeout > 0 {
		clientOpts = append(clientOpts, httpclient.WithTimeout(o.timeout))
	}

	if o.logger != nil {
		clientOpts = append(clientOpts, httpclient.WithLogger(*o.logger))
	}

	http := httpclient.New(o.baseURL, clientOpts...)

	return &Client{
		Refunds:       refund.NewClient(http),
		Subscriptions: subscription.NewClient(http),
		Customers:     customer.NewClient(http),
		Transactions:  transaction.NewClient(http),
		http:          http,
	}
}

// BaseURL reports the API host the client targets.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}
