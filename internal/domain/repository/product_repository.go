// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	"github.com/Hritik000/valentine-gifts-hub/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog reads. The catalog is
// externally owned; this service never writes to it.
type ProductRepository interface {
	// FindActiveByIDs retrieves the active products among the given ids.
	// Ids that are unknown or inactive are simply absent from the result;
	// callers decide whether that is an error.
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByIDs retrieves products by id regardless of the active flag.
	// Used for display resolution of frozen order snapshots.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindActiveByID retrieves a single active product.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAllActive retrieves the storefront catalog.
	FindAllActive(ctx context.Context) ([]*entity.Product, error)
}
