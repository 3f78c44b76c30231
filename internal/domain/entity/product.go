// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable digital good in the catalog. The catalog is the
// single source of truth for price and availability; client-submitted prices
// are never trusted anywhere in the system.
type Product struct {
	ID               uuid.UUID // Stable catalog identifier.
	Title            string    // Display title, also used as the download file name.
	Slug             string    // URL-friendly identifier for storefront pages.
	Description      string    // Long-form product description.
	ShortDescription string    // One-line description for listing cards.
	Price            int64     // Authoritative price in whole rupees.
	OriginalPrice    int64     // Pre-discount price, zero when not discounted.
	ImageURL         string    // Public preview image.
	Category         string    // Storefront category label.
	Featured         bool
	Bestseller       bool
	ValentineSpecial bool
	Rating           float64
	Reviews          int
	FileURL          string // Storage reference of the deliverable. Never exposed to clients.
	IsActive         bool   // Only active products are purchasable.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasFile reports whether the product has a deliverable attached.
func (p *Product) HasFile() bool {
	return p.FileURL != ""
}
