package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jkarimi/fanaka-furniture/api/background"
	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
	"github.com/jkarimi/fanaka-furniture/core/cart"
	"github.com/jkarimi/fanaka-furniture/random"
	"github.com/jkarimi/fanaka-furniture/rate"
	"github.com/jkarimi/fanaka-furniture/validate"
	"github.com/jmoiron/sqlx"
)

// Submission is what a successful checkout returns: the link the shopper's
// browser opens to deliver the order, and the reference quoted inside it.
type Submission struct {
	Ref string `json:"ref"`
	URL string `json:"url"`
}

// HandleSubmit runs one checkout attempt end to end: validate the customer,
// snapshot the cart, format the order message, build the hand-off link, then
// clear the cart. The hand-off is the success boundary; if building the link
// fails, the cart is left untouched so the shopper can retry.
func HandleSubmit(db *sqlx.DB, session *scs.SessionManager, d Dispatcher, bg *background.Background, lim *rate.Limiter) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var cust Customer
		if err := web.Decode(w, r, &cust); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding customer details: %w", err))
		}

		cust.Trim()
		if field, err := validate.CheckField(cust); err != nil {
			return weberr.Validation(err, field)
		}

		state := cart.FromSession(ctx, session)
		if len(state.Items) == 0 {
			err := errors.New("no items to checkout")
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		// One submission in flight per session; the UI disables the button,
		// this enforces it server side.
		if !lim.Check(session.Token(ctx)) {
			return weberr.TooManyRequests(errors.New("a checkout for this session is already in flight"))
		}

		snap := state.Snapshot()
		ref := random.String(8)
		now := time.Now().UTC()
		msg := Message(snap, cust, ref, now)

		url, err := d.Dispatch(msg)
		if err != nil {
			return weberr.NewError(
				fmt.Errorf("handing order off to the messaging channel: %w", err),
				"the order could not be sent, please try again",
				http.StatusBadGateway,
			)
		}

		// The hand-off was requested; that is the strongest guarantee this
		// channel offers, so the cart is cleared now.
		state.Clear()
		if err := cart.Save(ctx, session, state); err != nil {
			return fmt.Errorf("clearing cart after checkout: %w", err)
		}

		l := Log{
			Ref:           ref,
			CustomerName:  cust.Name,
			CustomerPhone: cust.Phone,
			CustomerEmail: cust.Email,
			Total:         snap.Total,
			Message:       msg,
			CreatedAt:     now,
		}
		bg.Add(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return Insert(ctx, db, l)
		})

		return web.Respond(ctx, w, Submission{Ref: ref, URL: url}, http.StatusOK)
	}
}

// HandleListOrders lists dispatched orders for the admin dashboard.
func HandleListOrders(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ls, err := FetchAll(ctx, db)
		if err != nil {
			return fmt.Errorf("fetching order logs: %w", err)
		}

		return web.Respond(ctx, w, ls, http.StatusOK)
	}
}
