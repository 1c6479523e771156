package category

import "time"

type Category struct {
	ID          string    `json:"id" db:"category_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type CategoryNew struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
}

type CategoryUp struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,gte=0"`
}
