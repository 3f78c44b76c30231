package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CartItemInput is a client-submitted cart line. Only the product id and
// quantity are trusted; prices always come from the catalog.
type CartItemInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderInput carries an order-intake request. Items and ProductID
// are alternatives; ProductID is the legacy single-product form.
type CreateOrderInput struct {
	Items         []CartItemInput
	ProductID     string
	CustomerEmail string
	CustomerName  string
	PaymentMethod string
	PaymentID     string
	UserID        *uuid.UUID
	RequestID     string
}

// CreateOrderOutput reports the persisted order.
type CreateOrderOutput struct {
	OrderID   uuid.UUID
	ItemCount int
	Total     int64
}

// CreatePaymentOrderInput carries a gateway payment-intent request.
// Amount is in whole currency units.
type CreatePaymentOrderInput struct {
	Amount   float64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// CreatePaymentOrderOutput carries the client-usable gateway credentials.
// KeyID is the publishable half of the credential pair.
type CreatePaymentOrderOutput struct {
	GatewayOrderID string
	Amount         int64
	Currency       string
	KeyID          string
}

// VerifyPaymentInput carries the gateway's signed payment proof plus the
// cart to price and persist once the proof checks out.
type VerifyPaymentInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Items            []CartItemInput
	CustomerEmail    string
	CustomerName     string
	UserID           *uuid.UUID
	RequestID        string
}

// VerifyPaymentOutput reports the order persisted for a verified payment.
type VerifyPaymentOutput struct {
	OrderID   uuid.UUID
	ItemCount int
	Total     int64
}

// CheckoutUsecase defines the interface for purchase flows: demo-mode
// order intake, gateway payment-intent creation, and signed payment
// verification.
type CheckoutUsecase interface {
	// CreateOrder prices the cart against the catalog and persists a
	// demo-mode order. Rate limited per customer email.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// CreatePaymentOrder creates a gateway-side payment intent
	CreatePaymentOrder(ctx context.Context, input *CreatePaymentOrderInput) (*CreatePaymentOrderOutput, error)

	// VerifyPayment checks the gateway signature and, only on success,
	// prices the cart and persists the order.
	VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (*VerifyPaymentOutput, error)
}
