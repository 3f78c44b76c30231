package postgres

import (
	"context"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/repository"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order with its frozen item snapshot.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderCreateFailed.WrapMessage("order already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreateFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindPaidByID retrieves an order only if its status is in the paid family.
// Unpaid and absent orders are indistinguishable to callers.
func (repo *orderRepository) FindPaidByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	statuses := make([]string, 0, len(entity.PaidStatuses))
	for _, status := range entity.PaidStatuses {
		statuses = append(statuses, string(status))
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND status IN ?", id, statuses).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find paid order by id")
	}

	return toOrderDomain(&orderM), nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	var customerName string
	if data.CustomerName != nil {
		customerName = *data.CustomerName
	}

	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		CustomerEmail: data.CustomerEmail,
		CustomerName:  customerName,
		Items:         items,
		Total:         data.Total,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: data.PaymentMethod,
		PaymentID:     data.PaymentID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make(model.OrderItemsJSON, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemJSON{
			ID:       item.ProductID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	var customerName *string
	if data.CustomerName != "" {
		customerName = &data.CustomerName
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		CustomerEmail: data.CustomerEmail,
		CustomerName:  customerName,
		Items:         items,
		Total:         data.Total,
		Status:        string(data.Status),
		PaymentMethod: data.PaymentMethod,
		PaymentID:     data.PaymentID,
	}
}
