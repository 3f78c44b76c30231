package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes the payment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaidStatuses lists every status that counts as proof of payment. Older
// records use "completed" and "delivered" interchangeably with "paid".
var PaidStatuses = []OrderStatus{OrderStatusPaid, OrderStatusCompleted, OrderStatusDelivered}

// IsPaid reports whether the status belongs to the paid family.
func (s OrderStatus) IsPaid() bool {
	for _, paid := range PaidStatuses {
		if s == paid {
			return true
		}
	}

	return false
}

// OrderItem is one line of an order's frozen snapshot: the product identity,
// title and unit price as they were in the catalog at order-creation time.
// Later catalog changes never alter a persisted item.
type OrderItem struct {
	ProductID uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

// Order is a purchase record. Total is always the server-computed sum of the
// snapshot lines; it is written once at creation and never recomputed.
type Order struct {
	ID            uuid.UUID
	UserID        *uuid.UUID // Nil for guest checkout; the order id is then the only capability.
	CustomerEmail string
	CustomerName  string
	Items         []OrderItem
	Total         int64
	Status        OrderStatus
	PaymentMethod string // "razorpay" for gateway-verified orders, "demo" otherwise.
	PaymentID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ContainsProduct reports whether the given product is part of the frozen
// item snapshot.
func (o *Order) ContainsProduct(productID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}

// OwnedBy reports whether the authenticated user may access this order.
// Guest orders (no owner) are accessible to anyone holding the order id.
func (o *Order) OwnedBy(userID *uuid.UUID) bool {
	if o.UserID == nil {
		return true
	}
	if userID == nil {
		return true
	}

	return *o.UserID == *userID
}
