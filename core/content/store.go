package content

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func FetchBySection(ctx context.Context, db sqlx.ExtContext, section string) (SiteContent, error) {
	const q = `SELECT * FROM site_content WHERE section = $1`

	var c SiteContent
	if err := sqlx.GetContext(ctx, db, &c, q, section); err != nil {
		return SiteContent{}, fmt.Errorf("selecting content[%s]: %w", section, err)
	}

	return c, nil
}

// Upsert writes the section's row, creating it on first save. The section key
// carries the identity; the id only exists for bookkeeping.
func Upsert(ctx context.Context, db sqlx.ExtContext, c SiteContent) error {
	const q = `
	INSERT INTO site_content
		(content_id, section, title, subtitle, description, image_url, data, updated_at)
	VALUES
		(:content_id, :section, :title, :subtitle, :description, :image_url, :data, :updated_at)
	ON CONFLICT (section) DO UPDATE SET
		title = :title,
		subtitle = :subtitle,
		description = :description,
		image_url = :image_url,
		data = :data,
		updated_at = :updated_at`

	if _, err := sqlx.NamedExecContext(ctx, db, q, c); err != nil {
		return fmt.Errorf("upserting content[%s]: %w", c.Section, err)
	}

	return nil
}
