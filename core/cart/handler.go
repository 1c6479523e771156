package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
	"github.com/jkarimi/fanaka-furniture/core/product"
	"github.com/jkarimi/fanaka-furniture/validate"
	"github.com/jmoiron/sqlx"
)

type ItemNew struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

type QuantityUp struct {
	Quantity int `json:"quantity"`
}

func HandleShow(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		state := FromSession(ctx, session)
		return web.Respond(ctx, w, state.Snapshot(), http.StatusOK)
	}
}

// HandleAddItem copies the referenced catalog product into the session cart.
// An omitted quantity means one; the same product twice bumps the quantity.
func HandleAddItem(db *sqlx.DB, session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding cart item: %w", err))
		}

		if field, err := validate.CheckField(in); err != nil {
			return weberr.Validation(err, field)
		}

		if err := validate.CheckID(in.ProductID); err != nil {
			return weberr.BadRequest(err)
		}

		p, err := product.Fetch(ctx, db, in.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching product[%s]: %w", in.ProductID, err)
		}

		qty := in.Quantity
		if qty == 0 {
			qty = 1
		}

		state := FromSession(ctx, session)
		it := Item{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
			Description: p.Description,
		}
		if err := state.Add(it, qty); err != nil {
			return weberr.Validation(err, "quantity")
		}

		if err := Save(ctx, session, state); err != nil {
			return fmt.Errorf("saving cart: %w", err)
		}

		return web.Respond(ctx, w, state.Snapshot(), http.StatusOK)
	}
}

// HandleUpdateItem sets the absolute quantity of a line item. Zero or a
// negative number removes it.
func HandleUpdateItem(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "product_id")

		var up QuantityUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding quantity update: %w", err))
		}

		state := FromSession(ctx, session)
		state.SetQuantity(id, up.Quantity)

		if err := Save(ctx, session, state); err != nil {
			return fmt.Errorf("saving cart: %w", err)
		}

		return web.Respond(ctx, w, state.Snapshot(), http.StatusOK)
	}
}

func HandleDeleteItem(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "product_id")

		state := FromSession(ctx, session)
		state.Remove(id)

		if err := Save(ctx, session, state); err != nil {
			return fmt.Errorf("saving cart: %w", err)
		}

		return web.Respond(ctx, w, state.Snapshot(), http.StatusOK)
	}
}

func HandleDelete(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		state := FromSession(ctx, session)
		state.Clear()

		if err := Save(ctx, session, state); err != nil {
			return fmt.Errorf("saving cart: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
