package api_test

import (
	"encoding/json"
	"testing"

	"github.com/andyle182810/paystack-go/api"
	"github.com/stretchr/testify/require"
)

func TestResponse_DecodesEnvelopeWithData(t *testing.T) {
	t.Parallel()

	raw := `{"status": true, "message": "Link generated", "data": "https://paystack.com/manage/abc"}`

	var resp api.Response[string]
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	require.True(t, resp.Status)
	require.Equal(t, "Link generated", resp.Message)
	require.Equal(t, "https://paystack.com/manage/abc", resp.Data)
}

func TestResponse_ToleratesOmittedData(t *testing.T) {
	t.Parallel()

	raw := `{"status": true, "message": "Subscription disabled successfully"}`

	var resp api.Response[api.Empty]
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	require.True(t, resp.Status)
	require.Equal(t, "Subscription disabled successfully", resp.Message)
}

func TestResponse_RoundTripPreservesFields(t *testing.T) {
	t.Parallel()

	original := api.Response[[]int]{
		Status:  true,
		Message: "Refunds retrieved",
		Data:    []int{1, 2, 3},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded api.Response[[]int]
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Equal(t, original, decoded)
}
