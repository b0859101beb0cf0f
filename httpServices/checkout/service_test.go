package checkout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))

		var req SessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SD-20260828-ABCD1234", req.ReferenceID)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SessionResponse{
			ID:  "cs_test_123",
			URL: "https://gateway.example/pay/cs_test_123",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")
	resp, err := client.CreateSession(SessionRequest{
		Amount:        25000,
		Currency:      "usd",
		CustomerEmail: "customer@styledecor.io",
		ReferenceID:   "SD-20260828-ABCD1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.ID)
	assert.Equal(t, "https://gateway.example/pay/cs_test_123", resp.URL)
}

func TestCreateSessionGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")
	_, err := client.CreateSession(SessionRequest{Amount: 100})
	assert.Error(t, err)
}

func TestGetSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)

		json.NewEncoder(w).Encode(SessionStatus{
			ID:            "cs_test_123",
			PaymentStatus: "paid",
			PaymentIntent: "pi_987",
			AmountTotal:   25000,
			ReferenceID:   "SD-20260828-ABCD1234",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")
	status, err := client.GetSession("cs_test_123")
	require.NoError(t, err)
	assert.True(t, status.Paid())
	assert.Equal(t, "SD-20260828-ABCD1234", status.ReferenceID)
}

func TestSessionStatusPaid(t *testing.T) {
	assert.True(t, SessionStatus{PaymentStatus: "paid"}.Paid())
	assert.False(t, SessionStatus{PaymentStatus: "unpaid"}.Paid())
	assert.False(t, SessionStatus{PaymentStatus: "open"}.Paid())
	assert.False(t, SessionStatus{}.Paid())
}
