// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// The catalog is the authoritative source for price and availability.
type ProductModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Slug             string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description      string    `gorm:"type:text"`
	ShortDescription string    `gorm:"type:varchar(512)"`
	Price            int64     `gorm:"not null;check:price > 0"`
	OriginalPrice    int64
	ImageURL         string `gorm:"type:varchar(1024)"`
	Category         string `gorm:"type:varchar(100);index"`
	Featured         bool   `gorm:"not null;default:false"`
	Bestseller       bool   `gorm:"not null;default:false"`
	ValentineSpecial bool   `gorm:"not null;default:false"`
	Rating           float64
	Reviews          int
	// FileURL is the storage reference of the deliverable. It may be a
	// bare object path or a historical full URL embedding a bucket name.
	FileURL   string `gorm:"type:varchar(1024)"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
