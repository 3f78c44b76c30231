package repository

import (
	"context"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	"github.com/Hritik000/valentine-gifts-hub/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found. Lookups filtered
// to paid statuses return it for unpaid orders too, so callers cannot tell
// the two cases apart.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order with its frozen item snapshot and
	// fills in the generated id and timestamps.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindPaidByID retrieves an order only if its status is in the paid
	// family. Pending, cancelled and absent orders all yield
	// ErrOrderNotFound.
	FindPaidByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
