package impl

import (
	"context"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/repository"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
	}
}

// ListProducts retrieves all purchasable products
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAllActive(ctx)
	if err != nil {
		return nil, domainerrors.ErrCatalogReadFailed.WrapMessage("failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single purchasable product by id
func (s *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.ErrCatalogReadFailed.WrapMessage("failed to load product")
	}

	return product, nil
}
