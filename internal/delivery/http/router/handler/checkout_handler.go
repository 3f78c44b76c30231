package handler

import (
	"net/http"

	deliverycontext "github.com/Hritik000/valentine-gifts-hub/internal/delivery/context"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/middleware"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/response"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createOrderRequest is the order-intake payload. Any client-supplied
// total is accepted for wire compatibility and ignored; pricing is always
// server side.
type createOrderRequest struct {
	Items         []usecase.CartItemInput `json:"items"`
	ProductID     string                  `json:"productId"`
	CustomerEmail string                  `json:"customerEmail"`
	CustomerName  string                  `json:"customerName"`
	PaymentMethod string                  `json:"paymentMethod"`
	PaymentID     string                  `json:"paymentId"`
	Total         int64                   `json:"total"`
}

type createPaymentOrderRequest struct {
	Amount   float64           `json:"amount" validate:"required"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type verifyPaymentRequest struct {
	GatewayOrderID   string                  `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string                  `json:"gateway_payment_id" validate:"required"`
	GatewaySignature string                  `json:"gateway_signature" validate:"required"`
	Items            []usecase.CartItemInput `json:"items"`
	CustomerEmail    string                  `json:"customerEmail"`
	CustomerName     string                  `json:"customerName"`
	Total            int64                   `json:"total"`
}

// CheckoutHandler holds dependencies for purchase-flow handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// CreateOrder handles the demo-mode order intake request.
func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		Items:         req.Items,
		ProductID:     req.ProductID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
		UserID:        middleware.UserID(c),
		RequestID:     deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"orderId":   out.OrderID.String(),
		"itemCount": out.ItemCount,
		"total":     out.Total,
	}, "Order created successfully")
}

// CreatePaymentOrder handles the gateway payment-intent request.
func (h *CheckoutHandler) CreatePaymentOrder(c echo.Context) error {
	var req createPaymentOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.CreatePaymentOrder(c.Request().Context(), &usecase.CreatePaymentOrderInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orderId":  out.GatewayOrderID,
		"amount":   out.Amount,
		"currency": out.Currency,
		"keyId":    out.KeyID,
	}, "")
}

// VerifyPayment handles the signed payment proof. The response carries an
// explicit valid flag so clients can branch without parsing error codes.
func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	out, err := h.uc.VerifyPayment(c.Request().Context(), &usecase.VerifyPaymentInput{
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
		Items:            req.Items,
		CustomerEmail:    req.CustomerEmail,
		CustomerName:     req.CustomerName,
		UserID:           middleware.UserID(c),
		RequestID:        deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid":     true,
		"orderId":   out.OrderID.String(),
		"itemCount": out.ItemCount,
		"total":     out.Total,
	}, "Payment verified successfully")
}
