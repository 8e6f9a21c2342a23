// Package transaction covers the /transaction resource group: initializing
// and verifying payments, listing and fetching transactions, and charging
// stored authorizations.
package transaction

import (
	"context"
	"strconv"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/httpclient"
)

const basePath = "/transaction"

// Client exposes the transaction operations. Methods are independent
// exchanges and safe for concurrent use.
type Client struct {
	http *httpclient.Client
}

func NewClient(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// Initialize starts a transaction and returns the checkout link details.
func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*api.Response[InitializedTransaction], error) {
	resp, err := httpclient.PostJSON[api.Response[InitializedTransaction]](ctx, c.http,
		basePath+"/initialize", req)
	if err != nil {
		return nil, api.NewError(api.ResourceTransaction, err)
	}

	return &resp, nil
}

// Verify confirms the status of a transaction by its reference.
func (c *Client) Verify(ctx context.Context, reference string) (*api.Response[Transaction], error) {
	resp, err := httpclient.GetJSON[api.Response[Transaction]](ctx, c.http,
		basePath+"/verify/"+reference)
	if err != nil {
		return nil, api.NewError(api.ResourceTransaction, err)
	}

	return &resp, nil
}

// List returns the transactions matching the query.
func (c *Client) List(ctx context.Context, query ListQuery) (*api.Response[[]Transaction], error) {
	resp, err := httpclient.GetJSON[api.Response[[]Transaction]](ctx, c.http, basePath,
		httpclient.WithQueryParams(query.params()))
	if err != nil {
		return nil, api.NewError(api.ResourceTransaction, err)
	}

	return &resp, nil
}

// Fetch returns the details of a single transaction.
func (c *Client) Fetch(ctx context.Context, id int64) (*api.Response[Transaction], error) {
	path := basePath + "/" + strconv.FormatInt(id, 10)

	resp, err := httpclient.GetJSON[api.Response[Transaction]](ctx, c.http, path)
	if err != nil {
		return nil, api.NewError(api.ResourceTransaction, err)
	}

	return &resp, nil
}

// ChargeAuthorization debits a customer's stored card authorization.
func (c *Client) ChargeAuthorization(ctx context.Context, req ChargeAuthorizationRequest) (*api.Response[Transaction], error) {
	resp, err := httpclient.PostJSON[api.Response[Transaction]](ctx, c.http,
		basePath+"/charge_authorization", req)
	if err != nil {
		return nil, api.NewError(api.ResourceTransaction, err)
	}

	return &resp, nil
}
