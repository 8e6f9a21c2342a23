// Package refund covers the /refund resource group: creating, retrying,
// listing and fetching transaction refunds.
package refund

import (
	"context"
	"strconv"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/httpclient"
)

const basePath = "/refund"

// Client exposes the refund operations. Methods are independent exchanges
// and safe for concurrent use.
type Client struct {
	http *httpclient.Client
}

func NewClient(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// Create initiates a refund for a transaction.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*api.Response[Refund], error) {
	resp, err := httpclient.PostJSON[api.Response[Refund]](ctx, c.http, basePath, req)
	if err != nil {
		return nil, api.NewError(api.ResourceRefund, err)
	}

	return &resp, nil
}

// Retry retries a previously failed refund using the customer's bank
// account details.
func (c *Client) Retry(ctx context.Context, id int64, req RetryRequest) (*api.Response[Refund], error) {
	path := basePath + "/retry_with_customer_details/" + strconv.FormatInt(id, 10)

	resp, err := httpclient.PostJSON[api.Response[Refund]](ctx, c.http, path, req)
	if err != nil {
		return nil, api.NewError(api.ResourceRefund, err)
	}

	return &resp, nil
}

// List returns the refunds matching the query. Unset filters are omitted
// from the request.
func (c *Client) List(ctx context.Context, query ListQuery) (*api.Response[[]Refund], error) {
	resp, err := httpclient.GetJSON[api.Response[[]Refund]](ctx, c.http, basePath,
		httpclient.WithQueryParams(query.params()))
	if err != nil {
		return nil, api.NewError(api.ResourceRefund, err)
	}

	return &resp, nil
}

// Fetch returns the details of a single refund.
func (c *Client) Fetch(ctx context.Context, id int64) (*api.Response[Refund], error) {
	path := basePath + "/" + strconv.FormatInt(id, 10)

	resp, err := httpclient.GetJSON[api.Response[Refund]](ctx, c.http, path)
	if err != nil {
		return nil, api.NewError(api.ResourceRefund, err)
	}

	return &resp, nil
}
