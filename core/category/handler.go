package category

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

// HandleList serves the storefront's category filter: active ones only, in
// display order.
func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		cs, err := FetchActive(ctx, db)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}

		return web.Respond(ctx, w, cs, http.StatusOK)
	}
}

func HandleListAll(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		cs, err := FetchAll(ctx, db)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}

		return web.Respond(ctx, w, cs, http.StatusOK)
	}
}

func HandleCreate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var cn CategoryNew
		if err := web.Decode(w, r, &cn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding category: %w", err))
		}

		if field, err := validate.CheckField(cn); err != nil {
			return weberr.Validation(err, field)
		}

		now := time.Now().UTC()
		c := Category{
			ID:          validate.GenerateID(),
			Name:        cn.Name,
			Description: cn.Description,
			IsActive:    true,
			SortOrder:   cn.SortOrder,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := Create(ctx, db, c); err != nil {
			if errors.Is(err, ErrDuplicateName) {
				return weberr.Validation(err, "name")
			}
			return fmt.Errorf("creating category: %w", err)
		}

		return web.Respond(ctx, w, c, http.StatusCreated)
	}
}

func HandleUpdate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		var up CategoryUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding category update: %w", err))
		}

		if field, err := validate.CheckField(up); err != nil {
			return weberr.Validation(err, field)
		}

		c, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching category[%s]: %w", id, err)
		}

		if up.Name != nil {
			c.Name = *up.Name
		}
		if up.Description != nil {
			c.Description = *up.Description
		}
		if up.IsActive != nil {
			c.IsActive = *up.IsActive
		}
		if up.SortOrder != nil {
			c.SortOrder = *up.SortOrder
		}
		c.UpdatedAt = time.Now().UTC()

		if err := Update(ctx, db, c); err != nil {
			if errors.Is(err, ErrDuplicateName) {
				return weberr.Validation(err, "name")
			}
			return fmt.Errorf("updating category[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleDelete(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		if err := Delete(ctx, db, id); err != nil {
			return fmt.Errorf("deleting category[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
