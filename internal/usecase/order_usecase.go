package usecase

import (
	"context"

	"github.com/google/uuid"
)

// VerifyOrderInput identifies the order to verify. UserID is nil for
// guest requests.
type VerifyOrderInput struct {
	OrderID string
	UserID  *uuid.UUID
}

// OrderLineView is a display line: the frozen snapshot refreshed with
// current catalog metadata where available.
type OrderLineView struct {
	ProductID string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image,omitempty"`
}

// OrderView is the client-facing order summary. Total is always the
// frozen order total, never a recomputation.
type OrderView struct {
	ID       string          `json:"id"`
	Status   string          `json:"status"`
	Total    int64           `json:"total"`
	Items    []OrderLineView `json:"items"`
	HasFiles bool            `json:"hasFiles"`
}

// VerifyOrderOutput wraps the verified order summary.
type VerifyOrderOutput struct {
	Order *OrderView
}

// DownloadInput identifies one product inside one order.
type DownloadInput struct {
	OrderID   string
	ProductID string
	UserID    *uuid.UUID
}

// DownloadOutput carries a short-lived signed URL. The raw storage path
// never reaches the client.
type DownloadOutput struct {
	DownloadURL string
	FileName    string
}

// OrderUsecase defines the interface for the order and download gate
type OrderUsecase interface {
	// VerifyOrder checks the order exists, is paid, and belongs to the
	// requester, then returns its display summary. Read only.
	VerifyOrder(ctx context.Context, input *VerifyOrderInput) (*VerifyOrderOutput, error)

	// DownloadURL re-verifies the order and mints a signed URL for one
	// purchased product's file.
	DownloadURL(ctx context.Context, input *DownloadInput) (*DownloadOutput, error)
}
