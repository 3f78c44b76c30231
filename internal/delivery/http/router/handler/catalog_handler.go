// Package handler contains the HTTP handlers for the storefront.
package handler

import (
	"net/http"

	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/response"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// productView is the client-facing product shape. The stored file
// reference is deliberately absent; files are only reachable through the
// download gate.
type productView struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug,omitempty"`
	Description      string  `json:"description,omitempty"`
	ShortDescription string  `json:"shortDescription,omitempty"`
	Price            int64   `json:"price"`
	OriginalPrice    int64   `json:"originalPrice,omitempty"`
	ImageURL         string  `json:"image,omitempty"`
	Category         string  `json:"category,omitempty"`
	Featured         bool    `json:"featured"`
	Bestseller       bool    `json:"bestseller"`
	ValentineSpecial bool    `json:"valentineSpecial"`
	Rating           float64 `json:"rating"`
	Reviews          int     `json:"reviews"`
	HasFile          bool    `json:"hasFile"`
}

func toProductView(product *entity.Product) productView {
	return productView{
		ID:               product.ID.String(),
		Title:            product.Title,
		Slug:             product.Slug,
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
		Price:            product.Price,
		OriginalPrice:    product.OriginalPrice,
		ImageURL:         product.ImageURL,
		Category:         product.Category,
		Featured:         product.Featured,
		Bestseller:       product.Bestseller,
		ValentineSpecial: product.ValentineSpecial,
		Rating:           product.Rating,
		Reviews:          product.Reviews,
		HasFile:          product.HasFile(),
	}
}

// CatalogHandler holds dependencies for catalog read handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts handles the storefront catalog listing.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetProduct handles a single product lookup.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
