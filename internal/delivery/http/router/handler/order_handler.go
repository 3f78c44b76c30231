package handler

import (
	"net/http"

	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/middleware"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/response"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type verifyOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

type downloadRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// OrderHandler holds dependencies for the order and download gate handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// VerifyOrder handles the post-payment order verification request.
func (h *OrderHandler) VerifyOrder(c echo.Context) error {
	var req verifyOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.VerifyOrder(c.Request().Context(), &usecase.VerifyOrderInput{
		OrderID: req.OrderID,
		UserID:  middleware.UserID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid": true,
		"order": out.Order,
	}, "")
}

// Download handles the gated file download request.
func (h *OrderHandler) Download(c echo.Context) error {
	var req downloadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid download input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.DownloadURL(c.Request().Context(), &usecase.DownloadInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		UserID:    middleware.UserID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"downloadUrl": out.DownloadURL,
		"fileName":    out.FileName,
	}, "")
}
