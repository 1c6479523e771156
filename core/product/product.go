package product

import "time"

type Product struct {
	ID            string    `json:"id" db:"product_id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	Price         int       `json:"price" db:"price"`
	ImageURL      string    `json:"imageUrl" db:"image_url"`
	StockQuantity int       `json:"stockQuantity" db:"stock_quantity"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	Version       int       `json:"-" db:"version"`
}

type ProductNew struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"required"`
	Price         int    `json:"price" validate:"gte=0"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	StockQuantity int    `json:"stockQuantity" validate:"gte=0"`
}

type ProductUp struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Price         *int    `json:"price" validate:"omitempty,gte=0"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,url"`
	StockQuantity *int    `json:"stockQuantity" validate:"omitempty,gte=0"`
}
