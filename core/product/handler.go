package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
	"github.com/jkarimi/fanaka-furniture/database"
	"github.com/jkarimi/fanaka-furniture/validate"
	"github.com/jmoiron/sqlx"
)

func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var (
			ps  []Product
			err error
		)

		if cat := r.URL.Query().Get("category"); cat != "" {
			ps, err = FetchByCategory(ctx, db, cat)
		} else {
			ps, err = FetchAll(ctx, db)
		}
		if err != nil {
			return fmt.Errorf("fetching products: %w", err)
		}

		return web.Respond(ctx, w, ps, http.StatusOK)
	}
}

func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		p, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleCreate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var pn ProductNew
		if err := web.Decode(w, r, &pn); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding product: %w", err))
		}

		if field, err := validate.CheckField(pn); err != nil {
			return weberr.Validation(err, field)
		}

		now := time.Now().UTC()
		p := Product{
			ID:            validate.GenerateID(),
			Name:          pn.Name,
			Description:   pn.Description,
			Category:      pn.Category,
			Price:         pn.Price,
			ImageURL:      pn.ImageURL,
			StockQuantity: pn.StockQuantity,
			CreatedAt:     now,
			UpdatedAt:     now,
			Version:       1,
		}

		if err := Create(ctx, db, p); err != nil {
			return fmt.Errorf("creating product: %w", err)
		}

		return web.Respond(ctx, w, p, http.StatusCreated)
	}
}

func HandleUpdate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		var up ProductUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding product update: %w", err))
		}

		if field, err := validate.CheckField(up); err != nil {
			return weberr.Validation(err, field)
		}

		var p Product
		txn := func(tx sqlx.ExtContext) error {
			var err error
			p, err = Fetch(ctx, tx, id)
			if err != nil {
				return err
			}

			if up.Name != nil {
				p.Name = *up.Name
			}
			if up.Description != nil {
				p.Description = *up.Description
			}
			if up.Category != nil {
				p.Category = *up.Category
			}
			if up.Price != nil {
				p.Price = *up.Price
			}
			if up.ImageURL != nil {
				p.ImageURL = *up.ImageURL
			}
			if up.StockQuantity != nil {
				p.StockQuantity = *up.StockQuantity
			}
			p.UpdatedAt = time.Now().UTC()

			return Update(ctx, tx, p)
		}

		if err := database.Transaction(db, txn); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("updating product[%s]: %w", id, err)
		}

		p.Version++
		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleDelete(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		if err := Delete(ctx, db, id); err != nil {
			return fmt.Errorf("deleting product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
