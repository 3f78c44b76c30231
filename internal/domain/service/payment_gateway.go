// Package service defines interfaces for domain services whose concrete
// implementations live in the infra layer.
package service

import (
	"context"
)

// GatewayOrder is the gateway-side payment order returned by CreateOrder.
// Amount is in the gateway's smallest currency unit (paise).
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// GatewayOrderRequest describes the payment order to create. Amount is in
// whole currency units; the gateway client converts to the smallest unit.
type GatewayOrderRequest struct {
	Amount   float64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// PaymentGateway abstracts the external payment processor. The secret half
// of the credential pair never crosses this boundary; only the publishable
// KeyID may be handed to clients.
type PaymentGateway interface {
	// Configured reports whether gateway credentials are present. When
	// false the storefront runs in demo mode and only the trust-client
	// intake path works.
	Configured() bool

	// KeyID returns the publishable key for client-side checkout widgets.
	KeyID() string

	// CreateOrder creates a gateway-side payment order.
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)

	// VerifySignature checks the HMAC proof of a completed payment over
	// the gateway order id and payment id. It reports only match or
	// mismatch, never which component was wrong.
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}
