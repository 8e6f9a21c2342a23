// Package subscription covers the /subscription resource group: creating,
// listing, fetching, enabling and disabling subscriptions, plus the
// customer-facing management link operations.
package subscription

import (
	"context"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/httpclient"
)

const basePath = "/subscription"

// Client exposes the subscription operations. Methods are independent
// exchanges and safe for concurrent use.
type Client struct {
	http *httpclient.Client
}

func NewClient(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// Create subscribes a customer to a plan.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*api.Response[Subscription], error) {
	resp, err := httpclient.PostJSON[api.Response[Subscription]](ctx, c.http, basePath, req)
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}

// List returns the subscriptions matching the query.
func (c *Client) List(ctx context.Context, query ListQuery) (*api.Response[[]Subscription], error) {
	resp, err := httpclient.GetJSON[api.Response[[]Subscription]](ctx, c.http, basePath,
		httpclient.WithQueryParams(query.params()))
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}

// Fetch returns the subscription with the given ID or subscription code.
func (c *Client) Fetch(ctx context.Context, idOrCode string) (*api.Response[Subscription], error) {
	resp, err := httpclient.GetJSON[api.Response[Subscription]](ctx, c.http, basePath+"/"+idOrCode)
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}

// Enable re-activates a disabled subscription.
func (c *Client) Enable(ctx context.Context, req UpdateRequest) (*api.Response[api.Empty], error) {
	resp, err := httpclient.PostJSON[api.Response[api.Empty]](ctx, c.http, basePath+"/enable", req)
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}

// Disable stops a subscription from renewing.
func (c *Client) Disable(ctx context.Context, req UpdateRequest) (*api.Response[api.Empty], error) {
	resp, err := httpclient.PostJSON[api.Response[api.Empty]](ctx, c.http, basePath+"/disable", req)
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}

// GenerateUpdateLink returns a link the customer can use to update their
// subscription's card.
func (c *Client) GenerateUpdateLink(ctx context.Context, code string) (*api.Response[string], error) {
	resp, err := httpclient.PostJSON[api.Response[string]](ctx, c.http,
		basePath+"/"+code+"/manage/link", nil)
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}

// SendUpdateLink emails the subscription management link to the customer.
func (c *Client) SendUpdateLink(ctx context.Context, code string) (*api.Response[string], error) {
	resp, err := httpclient.PostJSON[api.Response[string]](ctx, c.http,
		basePath+"/"+code+"/manage/email", nil)
	if err != nil {
		return nil, api.NewError(api.ResourceSubscription, err)
	}

	return &resp, nil
}
