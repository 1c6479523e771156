package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
)

const adminKey = "admin"

// LoadAndSave adapts the scs middleware to the service's handler type so the
// session is available on every route, shopper and admin alike.
func LoadAndSave(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var err error

			wrapped := session.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			}))
			wrapped.ServeHTTP(w, r)

			return err
		}
		return h
	}
	return m
}

// Admin rejects requests whose session does not carry the admin flag.
func Admin(session *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if !session.GetBool(ctx, adminKey) {
				return weberr.NotAuthorized(errors.New("admin session required"))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
