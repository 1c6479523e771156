package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
	"github.com/jkarimi/fanaka-furniture/validate"
	"github.com/jmoiron/sqlx"
)

func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		section := web.Param(r, "section")

		c, err := FetchBySection(ctx, db, section)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// An unset section is not an error for the storefront; it
				// renders its built-in copy.
				return web.Respond(ctx, w, nil, http.StatusOK)
			}
			return fmt.Errorf("fetching content[%s]: %w", section, err)
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleUpsert(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		section := web.Param(r, "section")

		var up SiteContentUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding content: %w", err))
		}

		if field, err := validate.CheckField(up); err != nil {
			return weberr.Validation(err, field)
		}

		data := up.Data
		if len(data) == 0 {
			data = []byte(`{}`)
		}

		c := SiteContent{
			ID:          validate.GenerateID(),
			Section:     section,
			Title:       up.Title,
			Subtitle:    up.Subtitle,
			Description: up.Description,
			ImageURL:    up.ImageURL,
			Data:        data,
			UpdatedAt:   time.Now().UTC(),
		}

		if err := Upsert(ctx, db, c); err != nil {
			return fmt.Errorf("upserting content[%s]: %w", section, err)
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}
