package customer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andyle182810/paystack-go/api"
	"github.com/andyle182810/paystack-go/customer"
	"github.com/andyle182810/paystack-go/httpclient"
	"github.com/andyle182810/paystack-go/testutil"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, status int, body string, rec *testutil.Exchange) *customer.Client {
	t.Helper()

	server := testutil.NewAPIServer(t, status, body, rec)

	return customer.NewClient(httpclient.New(server.URL, httpclient.WithAPIKey("sk_test_key")))
}

func TestCreateRequestBuilder_RequiresEmail(t *testing.T) {
	t.Parallel()

	_, err := customer.NewCreateRequestBuilder().
		FirstName("Ada").
		Build()

	require.Error(t, err)
	require.Contains(t, err.Error(), "email is required")
}

func TestCreateRequestBuilder_RejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	_, err := customer.NewCreateRequestBuilder().
		Email("not-an-email").
		Build()

	require.Error(t, err)
	require.Contains(t, err.Error(), "valid email")
}

func TestCreate_ReturnsCustomerEnvelope(t *testing.T) {
	t.Parallel()

	var rec testutil.Exchange
	client := newClient(t, http.StatusOK,
		`{"status": true, "message": "Customer created",
		  "data": {"id": 1173, "email": "ada@example.com", "customer_code": "CUS_xnxdt6s1zg1f4nx",
		           "domain": "test", "createdAt": "2016-03-29T20:03:09.584Z"}}`, &rec)

	req, err := customer.NewCreateRequestBuilder().
		Email("ada@example.com").
		Build()
	require.NoError(t, err)

	resp, err := client.Create(context.Background(), req)

	require.NoError(t, err)
	require.True(t, resp.Status)
	require.Equal(t, "CUS_xnxdt6s1zg1f4nx", resp.Data.CustomerCode)
	require.NotNil(t, resp.Data.CreatedAt)
	require.Equal(t, http.MethodPost, rec.Method)
	require.Equal(t, "/customer", rec.Path)
}

func TestList_SendsOnlySetPageControls(t *testing.T) {
	t.Parallel()

	var rec testutil.Exchange
	client := newClient(t, http.StatusOK,
		`{"status": true, "message": "Customers retrieved", "data": []}`, &rec)

	_, err := client.List(context.Background(), customer.ListQuery{PerPage: 20})

	require.NoError(t, err)
	require.Equal(t, "perPage=20", rec.RawQuery)
}

func TestFetch_UsesEmailOrCodeInPath(t *testing.T) {
	t.Parallel()

	var rec testutil.Exchange
	client := newClient(t, http.StatusOK,
		`{"status": true, "message": "Customer retrieved",
		  "data": {"id": 1173, "email": "ada@example.com", "customer_code": "CUS_xnxdt6s1zg1f4nx"}}`, &rec)

	resp, err := client.Fetch(context.Background(), "CUS_xnxdt6s1zg1f4nx")

	require.NoError(t, err)
	require.Equal(t, int64(1173), resp.Data.ID)
	require.Equal(t, "/customer/CUS_xnxdt6s1zg1f4nx", rec.Path)
}

func TestUpdate_SendsPutWithChangedFields(t *testing.T) {
	t.Parallel()

	var rec testutil.Exchange
	client := newClient(t, http.StatusOK,
		`{"status": true, "message": "Customer updated",
		  "data": {"id": 1173, "email": "ada@example.com", "customer_code": "CUS_xnxdt6s1zg1f4nx",
		           "first_name": "Ada"}}`, &rec)

	firstName := "Ada"
	resp, err := client.Update(context.Background(), "CUS_xnxdt6s1zg1f4nx",
		customer.UpdateRequest{FirstName: &firstName}) //nolint:exhaustruct

	require.NoError(t, err)
	require.NotNil(t, resp.Data.FirstName)
	require.Equal(t, http.MethodPut, rec.Method)
	require.Equal(t, "/customer/CUS_xnxdt6s1zg1f4nx", rec.Path)
	require.JSONEq(t, `{"first_name": "Ada"}`, string(rec.Body))
}

func TestFetch_UnknownCustomerYieldsCustomerError(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.StatusNotFound,
		`{"status": false, "message": "Customer not found"}`, nil)

	_, err := client.Fetch(context.Background(), "CUS_missing")

	require.Error(t, err)

	apiErr, ok := api.IsResourceError(err)
	require.True(t, ok)
	require.Equal(t, api.ResourceCustomer, apiErr.Resource)
}

func TestCustomer_UnmarshalAcceptsBothTimestampCasings(t *testing.T) {
	t.Parallel()

	snake := `{"id": 1, "email": "a@b.co", "customer_code": "CUS_a", "created_at": "2016-03-29T20:03:09.584Z"}`
	camel := `{"id": 1, "email": "a@b.co", "customer_code": "CUS_a", "createdAt": "2016-03-29T20:03:09.584Z"}`

	var fromSnake, fromCamel customer.Customer
	require.NoError(t, json.Unmarshal([]byte(snake), &fromSnake))
	require.NoError(t, json.Unmarshal([]byte(camel), &fromCamel))

	require.NotNil(t, fromSnake.CreatedAt)
	require.NotNil(t, fromCamel.CreatedAt)
	require.Equal(t, *fromSnake.CreatedAt, *fromCamel.CreatedAt)
}
