package paystack_test

import (
	"context"
	"net/http"
	"testing"

	paystack "github.com/andyle182810/paystack-go"
	"github.com/andyle182810/paystack-go/customer"
	"github.com/andyle182810/paystack-go/refund"
	"github.com/andyle182810/paystack-go/testutil"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresAllResourceClients(t *testing.T) {
	t.Parallel()

	client := paystack.New("sk_test_key")

	require.NotNil(t, client.Refunds)
	require.NotNil(t, client.Subscriptions)
	require.NotNil(t, client.Customers)
	require.NotNil(t, client.Transactions)
	require.Equal(t, paystack.DefaultBaseURL, client.BaseURL())
}

func TestNew_WithBaseURLTargetsCustomHost(t *testing.T) {
	t.Parallel()

	var rec testutil.Exchange
	server := testutil.NewAPIServer(t, http.StatusOK,
		`{"status": true, "message": "Refunds retrieved", "data": []}`, &rec)

	client := paystack.New("sk_test_key", paystack.WithBaseURL(server.URL))

	resp, err := client.Refunds.List(context.Background(), refund.ListQuery{}) //nolint:exhaustruct

	require.NoError(t, err)
	require.True(t, resp.Status)
	require.Equal(t, "Bearer sk_test_key", rec.Header.Get("Authorization"))
	require.Equal(t, "/refund", rec.Path)
}

func TestClient_ResourceClientsShareOneTransport(t *testing.T) {
	t.Parallel()

	var rec testutil.Exchange
	server := testutil.NewAPIServer(t, http.StatusOK,
		`{"status": true, "message": "Customers retrieved", "data": []}`, &rec)

	client := paystack.New("sk_test_key", paystack.WithBaseURL(server.URL))

	_, err := client.Customers.List(context.Background(), customer.ListQuery{}) //nolint:exhaustruct
	require.NoError(t, err)
	require.Equal(t, "/customer", rec.Path)
	require.Equal(t, "Bearer sk_test_key", rec.Header.Get("Authorization"))
}
