package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a lens diffuser in the catalogue.
type Product struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Subtitle          string    `json:"subtitle,omitempty" db:"subtitle"`
	Description       string    `json:"description,omitempty" db:"description"`
	Price             float64   `json:"price" db:"price"`
	ComparePrice      float64   `json:"comparePrice,omitempty" db:"compare_price"`
	ShippingPrice     float64   `json:"shippingPrice" db:"shipping_price"`
	FreeShipping      bool      `json:"freeShipping" db:"free_shipping"`
	SKU               string    `json:"sku" db:"sku"`
	Category          string    `json:"category" db:"category"`
	Stock             int       `json:"stock" db:"stock"`
	LowStockThreshold int       `json:"lowStockThreshold" db:"low_stock_threshold"`
	Features          []string  `json:"features" db:"features"`
	Sizes             []string  `json:"sizes" db:"sizes"`
	Tags              []string  `json:"tags" db:"tags"`
	Images            []string  `json:"images" db:"images"`
	IsActive          bool      `json:"isActive" db:"is_active"`
	IsFeatured        bool      `json:"isFeatured" db:"is_featured"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// LowStock reports whether the remaining stock has fallen to the reorder threshold.
func (p *Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	Name              string   `json:"name"`
	Subtitle          string   `json:"subtitle"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	ComparePrice      float64  `json:"comparePrice"`
	ShippingPrice     float64  `json:"shippingPrice"`
	FreeShipping      bool     `json:"freeShipping"`
	SKU               string   `json:"sku"`
	Category          string   `json:"category"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Features          []string `json:"features"`
	Sizes             []string `json:"sizes"`
	Tags              []string `json:"tags"`
	Images            []string `json:"images"`
	IsActive          *bool    `json:"isActive"`
	IsFeatured        *bool    `json:"isFeatured"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category     string
	ActiveOnly   bool
	FeaturedOnly bool
	Limit        int
	Offset       int
}
