// Package payment contains the Razorpay gateway client and the payment
// proof verification logic.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Hritik000/valentine-gifts-hub/config"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultAPIBase = "https://api.razorpay.com"

	// Outbound calls never hang indefinitely; timeouts surface as
	// gateway errors.
	requestTimeout = 10 * time.Second

	// Gateway diagnostics are captured for operator logs only; cap the
	// amount of upstream body kept around.
	maxDiagnosticBytes = 4 << 10
)

// razorpayGateway implements service.PaymentGateway against the Razorpay
// REST API. The key secret is used for basic auth and signature checks and
// never appears in logs or responses.
type razorpayGateway struct {
	keyID      string
	keySecret  string
	apiBase    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRazorpayGateway creates the gateway client. A nil or incomplete
// credential config yields an unconfigured gateway; the storefront then
// runs in demo mode.
func NewRazorpayGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	gw := &razorpayGateway{
		apiBase: defaultAPIBase,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}

	if cfg.Razorpay != nil {
		gw.keyID = cfg.Razorpay.KeyID
		gw.keySecret = cfg.Razorpay.KeySecret
		if cfg.Razorpay.APIBase != "" {
			gw.apiBase = strings.TrimRight(cfg.Razorpay.APIBase, "/")
		}
	}

	return gw
}

// Configured reports whether gateway credentials are present.
func (g *razorpayGateway) Configured() bool {
	return g.keyID != "" && g.keySecret != ""
}

// KeyID returns the publishable key for client-side checkout widgets.
func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

// createOrderRequest is the Razorpay order-creation payload. Amount is in
// paise, the gateway's smallest currency unit.
type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// CreateOrder creates a gateway-side payment order.
func (g *razorpayGateway) CreateOrder(ctx context.Context, req service.GatewayOrderRequest) (*service.GatewayOrder, error) {
	if !g.Configured() {
		return nil, errors.New("razorpay credentials not configured")
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	notes := req.Notes
	if notes == nil {
		notes = map[string]string{}
	}

	payload := createOrderRequest{
		// Rounding, not truncation: boundary values like 499.995 must
		// not lose a currency unit.
		Amount:   int64(math.Round(req.Amount * 100)),
		Currency: currency,
		Receipt:  req.Receipt,
		Notes:    notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiBase+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	httpReq.SetBasicAuth(g.keyID, g.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		diagnostic, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnosticBytes))
		g.logger.Error("Razorpay order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("response", string(diagnostic)),
		)

		return nil, errors.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var order service.GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 proof over "orderID|paymentID".
// The comparison is constant time and reports only match or mismatch.
func (g *razorpayGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if !g.Configured() {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
