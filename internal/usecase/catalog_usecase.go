package usecase

import (
	"context"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
)

// CatalogUsecase defines the interface for storefront catalog reads
type CatalogUsecase interface {
	// ListProducts retrieves all purchasable products
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct retrieves a single purchasable product by id
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}
