package model

import (
	"time"

	"github.com/google/uuid"
)

// Video is a tutorial or promo clip managed from the admin panel.
type Video struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	URL         string    `json:"url" db:"url"`
	Thumbnail   string    `json:"thumbnail,omitempty" db:"thumbnail"`
	Category    string    `json:"category" db:"category"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// VideoRequest represents the payload for creating or updating a video.
type VideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Category    string `json:"category"`
	SortOrder   *int   `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}
