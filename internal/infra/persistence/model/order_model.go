package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/Hritik000/valentine-gifts-hub/internal/errors"

	"github.com/google/uuid"
)

// OrderItemsJSON stores the frozen item snapshot as a jsonb column. The
// snapshot is written once at order creation and never updated.
type OrderItemsJSON []OrderItemJSON

// OrderItemJSON is one snapshot line as persisted. The json keys match the
// historical records written by the original storefront.
type OrderItemJSON struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
	Quantity int       `json:"quantity"`
}

// Value implements driver.Valuer for jsonb serialization.
func (items OrderItemsJSON) Value() (driver.Value, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order items")
	}

	return data, nil
}

// Scan implements sql.Scanner for jsonb deserialization.
func (items *OrderItemsJSON) Scan(value any) error {
	if value == nil {
		*items = nil

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported order items column type %T", value)
	}

	return errors.Wrap(json.Unmarshal(data, items), "unmarshal order items")
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	CustomerEmail string  `gorm:"type:varchar(255);not null;index"`
	CustomerName  *string `gorm:"type:varchar(255)"`

	Items OrderItemsJSON `gorm:"type:jsonb;not null"`
	Total int64          `gorm:"not null"`

	Status        string `gorm:"type:varchar(20);not null;index"`
	PaymentMethod string `gorm:"type:varchar(50);not null"`
	PaymentID     string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
