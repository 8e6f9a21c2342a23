// Package customer covers the /customer resource group.
package customer

import (
	"context"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/httpclient"
)

const basePath = "/customer"

// Client exposes the customer operations. Methods are independent exchanges
// and safe for concurrent use.
type Client struct {
	http *httpclient.Client
}

func NewClient(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// Create registers a customer on the integration.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*api.Response[Customer], error) {
	resp, err := httpclient.PostJSON[api.Response[Customer]](ctx, c.http, basePath, req)
	if err != nil {
		return nil, api.NewError(api.ResourceCustomer, err)
	}

	return &resp, nil
}

// List pages through the customers on the integration.
func (c *Client) List(ctx context.Context, query ListQuery) (*api.Response[[]Customer], error) {
	resp, err := httpclient.GetJSON[api.Response[[]Customer]](ctx, c.http, basePath,
		httpclient.WithQueryParams(query.params()))
	if err != nil {
		return nil, api.NewError(api.ResourceCustomer, err)
	}

	return &resp, nil
}

// Fetch returns the customer with the given email address or customer code.
func (c *Client) Fetch(ctx context.Context, emailOrCode string) (*api.Response[Customer], error) {
	resp, err := httpclient.GetJSON[api.Response[Customer]](ctx, c.http, basePath+"/"+emailOrCode)
	if err != nil {
		return nil, api.NewError(api.ResourceCustomer, err)
	}

	return &resp, nil
}

// Update changes the customer identified by code.
func (c *Client) Update(ctx context.Context, code string, req UpdateRequest) (*api.Response[Customer], error) {
	resp, err := httpclient.PutJSON[api.Response[Customer]](ctx, c.http, basePath+"/"+code, req)
	if err != nil {
		return nil, api.NewError(api.ResourceCustomer, err)
	}

	return &resp, nil
}
