package content

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// SiteContent is a keyed block of copy for one storefront section (hero,
// about, contact and so on). Each section has at most one row.
type SiteContent struct {
	ID          string         `json:"id" db:"content_id"`
	Section     string         `json:"section" db:"section"`
	Title       *string        `json:"title" db:"title"`
	Subtitle    *string        `json:"subtitle" db:"subtitle"`
	Description *string        `json:"description" db:"description"`
	ImageURL    *string        `json:"imageUrl" db:"image_url"`
	Data        types.JSONText `json:"data" db:"data"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type SiteContentUp struct {
	Title       *string        `json:"title"`
	Subtitle    *string        `json:"subtitle"`
	Description *string        `json:"description"`
	ImageURL    *string        `json:"imageUrl" validate:"omitempty,url"`
	Data        types.JSONText `json:"data"`
}
