package service

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

func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ss, err := FetchActive(ctx, db)
		if err != nil {
			return fmt.Errorf("fetching services: %w", err)
		}

		return web.Respond(ctx, w, ss, http.StatusOK)
	}
}

func HandleListAll(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ss, err := FetchAll(ctx, db)
		if err != nil {
			return fmt.Errorf("fetching services: %w", err)
		}

		return web.Respond(ctx, w, ss, http.StatusOK)
	}
}

func HandleCreate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var sn ServiceNew
		if err := web.Decode(w, r, &sn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding service: %w", err))
		}

		if field, err := validate.CheckField(sn); err != nil {
			return weberr.Validation(err, field)
		}

		now := time.Now().UTC()
		s := Service{
			ID:          validate.GenerateID(),
			Title:       sn.Title,
			Description: sn.Description,
			ImageURL:    sn.ImageURL,
			IsActive:    sn.IsActive,
			SortOrder:   sn.SortOrder,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := Create(ctx, db, s); err != nil {
			return fmt.Errorf("creating service: %w", err)
		}

		return web.Respond(ctx, w, s, http.StatusCreated)
	}
}

func HandleUpdate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		var up ServiceUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding service update: %w", err))
		}

		if field, err := validate.CheckField(up); err != nil {
			return weberr.Validation(err, field)
		}

		s, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching service[%s]: %w", id, err)
		}

		if up.Title != nil {
			s.Title = *up.Title
		}
		if up.Description != nil {
			s.Description = *up.Description
		}
		if up.ImageURL != nil {
			s.ImageURL = *up.ImageURL
		}
		if up.IsActive != nil {
			s.IsActive = *up.IsActive
		}
		if up.SortOrder != nil {
			s.SortOrder = *up.SortOrder
		}
		s.UpdatedAt = time.Now().UTC()

		if err := Update(ctx, db, s); err != nil {
			return fmt.Errorf("updating service[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, s, http.StatusOK)
	}
}

func HandleDelete(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		if err := Delete(ctx, db, id); err != nil {
			return fmt.Errorf("deleting service[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
