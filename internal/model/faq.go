package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFAQCategory is assigned when a FAQ is created without a category.
const DefaultFAQCategory = "General"

// FAQ is a question/answer pair shown to storefront visitors.
type FAQ struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Category  string    `json:"category" db:"category"`
	SortOrder int       `json:"sortOrder" db:"sort_order"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicFAQ is the storefront view of a FAQ with admin-only fields stripped.
type PublicFAQ struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Category string    `json:"category"`
}

// Public converts a FAQ into its storefront representation.
func (f *FAQ) Public() PublicFAQ {
	return PublicFAQ{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}
}

// FAQRequest represents the payload for creating a FAQ.
type FAQRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	SortOrder *int   `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// FAQUpdateRequest represents a partial FAQ update. Nil fields are left unchanged.
type FAQUpdateRequest struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

// FAQFilter narrows FAQ listings.
type FAQFilter struct {
	Category   string
	IsActive   *bool
	ActiveOnly bool
}
