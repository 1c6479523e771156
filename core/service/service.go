package service

import "time"

// Service is an offering advertised alongside the catalog, like custom
// design work or home delivery.
type Service struct {
	ID          string    `json:"id" db:"service_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type ServiceNew struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
}

type ServiceUp struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,gte=0"`
}
