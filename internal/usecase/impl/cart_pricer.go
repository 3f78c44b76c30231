package impl

import (
	"context"
	"regexp"
	"strings"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/repository"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/google/uuid"
)

// emailPattern accepts local@domain with a dotted domain. Deliverability
// is the mail provider's problem, not ours.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail lower-cases and trims a customer email. The normalized
// form is both the stored value and the rate-limit key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail normalizes and validates a customer email.
func validateEmail(email string) (string, error) {
	normalized := normalizeEmail(email)
	if normalized == "" {
		return "", domainerrors.ErrEmailRequired
	}
	if !emailPattern.MatchString(normalized) {
		return "", domainerrors.ErrInvalidEmail
	}

	return normalized, nil
}

// pricedCart is a cart validated against the catalog with server-derived
// prices.
type pricedCart struct {
	Items []entity.OrderItem
	Total int64
}

// cartPricer turns client-submitted cart lines into a trusted snapshot.
// Both the demo intake path and the verified payment path price carts
// through this one component, so client-supplied prices can never reach
// a persisted order.
type cartPricer struct {
	productRepo repository.ProductRepository
}

// Price validates every requested product against the active catalog and
// computes the order total from catalog prices. Unknown or inactive ids
// fail the whole cart, naming the offenders.
func (p *cartPricer) Price(ctx context.Context, inputs []usecase.CartItemInput) (*pricedCart, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	var missing []string
	for _, input := range inputs {
		id, err := uuid.Parse(input.ID)
		if err != nil {
			// A malformed id can never name an active product.
			missing = append(missing, input.ID)

			continue
		}
		ids = append(ids, id)
	}

	var products []*entity.Product
	if len(ids) > 0 {
		var err error
		products, err = p.productRepo.FindActiveByIDs(ctx, ids)
		if err != nil {
			return nil, domainerrors.ErrCatalogReadFailed.WrapMessage("failed to load products for pricing")
		}
	}

	byID := make(map[string]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID.String()] = product
	}

	cart := &pricedCart{Items: make([]entity.OrderItem, 0, len(inputs))}
	for _, input := range inputs {
		id, err := uuid.Parse(input.ID)
		if err != nil {
			// Already recorded as missing above.
			continue
		}

		product, ok := byID[id.String()]
		if !ok {
			missing = append(missing, input.ID)

			continue
		}

		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		cart.Items = append(cart.Items, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  quantity,
		})
		cart.Total += product.Price * int64(quantity)
	}

	if len(missing) > 0 {
		return nil, domainerrors.ErrProductUnavailable.WithDetails(
			"products not found or inactive: " + strings.Join(missing, ", "),
		)
	}

	return cart, nil
}
