package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hritik000/valentine-gifts-hub/config"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, apiBase string) *razorpayGateway {
	t.Helper()

	cfg := &config.Config{
		Razorpay: &config.RazorpayConfig{
			KeyID:     "rzp_test_key",
			KeySecret: "rzp_test_secret",
			APIBase:   apiBase,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRazorpayGateway(cfg, logger).(*razorpayGateway)
}

func TestRazorpayGateway_Configured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  *config.RazorpayConfig
		want bool
	}{
		{name: "both credentials", cfg: &config.RazorpayConfig{KeyID: "k", KeySecret: "s"}, want: true},
		{name: "missing secret", cfg: &config.RazorpayConfig{KeyID: "k"}, want: false},
		{name: "missing key", cfg: &config.RazorpayConfig{KeySecret: "s"}, want: false},
		{name: "nil config", cfg: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewRazorpayGateway(&config.Config{Razorpay: tt.cfg}, logger)
			assert.Equal(t, tt.want, gw.Configured())
		})
	}
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	var captured createOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "rzp_test_key", user)
		require.Equal(t, "rzp_test_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_Nq3xyz",
			"amount":   captured.Amount,
			"currency": captured.Currency,
			"receipt":  captured.Receipt,
			"status":   "created",
		})
	}))
	defer server.Close()

	gw := newTestGateway(t, server.URL)

	order, err := gw.CreateOrder(context.Background(), service.GatewayOrderRequest{
		Amount:  499.99,
		Receipt: "order_local_1",
		Notes:   map[string]string{"orderId": "order_local_1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "order_Nq3xyz", order.ID)
	assert.Equal(t, int64(49999), order.Amount)
	assert.Equal(t, "INR", order.Currency, "currency defaults to INR")
	assert.Equal(t, "created", order.Status)
}

func TestRazorpayGateway_CreateOrder_PaiseRounding(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 499.99, want: 49999},
		{amount: 499.995, want: 50000},
		{amount: 0.1, want: 10},
		{amount: 1, want: 100},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "order_x", "amount": req.Amount})
	}))
	defer server.Close()

	gw := newTestGateway(t, server.URL)

	for _, tt := range tests {
		order, err := gw.CreateOrder(context.Background(), service.GatewayOrderRequest{Amount: tt.amount})
		require.NoError(t, err)
		assert.Equal(t, tt.want, order.Amount, "amount %v", tt.amount)
	}
}

func TestRazorpayGateway_CreateOrder_GatewayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer server.Close()

	gw := newTestGateway(t, server.URL)

	order, err := gw.CreateOrder(context.Background(), service.GatewayOrderRequest{Amount: 100})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "status 401")
	assert.NotContains(t, err.Error(), "rzp_test_secret")
}

func TestRazorpayGateway_CreateOrder_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := NewRazorpayGateway(&config.Config{}, logger)

	_, err := gw.CreateOrder(context.Background(), service.GatewayOrderRequest{Amount: 100})
	require.Error(t, err)
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	gw := newTestGateway(t, "")

	sign := func(secret, orderID, paymentID string) string {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(orderID + "|" + paymentID))
		return hex.EncodeToString(mac.Sum(nil))
	}

	valid := sign("rzp_test_secret", "order_abc", "pay_def")

	assert.True(t, gw.VerifySignature("order_abc", "pay_def", valid))

	// Any single-field change breaks the proof.
	assert.False(t, gw.VerifySignature("order_abc", "pay_other", valid))
	assert.False(t, gw.VerifySignature("order_other", "pay_def", valid))
	assert.False(t, gw.VerifySignature("order_abc", "pay_def", sign("wrong_secret", "order_abc", "pay_def")))
	assert.False(t, gw.VerifySignature("order_abc", "pay_def", ""))
}

func TestRazorpayGateway_VerifySignature_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := NewRazorpayGateway(&config.Config{}, logger)

	assert.False(t, gw.VerifySignature("order_abc", "pay_def", "anything"))
}
