package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
	"github.com/jkarimi/fanaka-furniture/config"
	"github.com/jkarimi/fanaka-furniture/rate"
	"github.com/jkarimi/fanaka-furniture/validate"
	"golang.org/x/crypto/bcrypt"
)

type LoginNew struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates the single admin account. Attempts are throttled
// per remote address; a wrong email and a wrong password are indistinguishable
// to the caller.
func HandleLogin(session *scs.SessionManager, cfg config.Admin, lim *rate.Limiter) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if !lim.Check(r.RemoteAddr) {
			return weberr.TooManyRequests(errors.New("login attempts throttled"))
		}

		var in LoginNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("decoding login: %w", err))
		}

		if field, err := validate.CheckField(in); err != nil {
			return weberr.Validation(err, field)
		}

		if in.Email != cfg.Email {
			return weberr.NotAuthorized(errors.New("unknown admin email"))
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(in.Password)); err != nil {
			return weberr.NotAuthorized(fmt.Errorf("password mismatch: %w", err))
		}

		// Fresh token on privilege change.
		if err := session.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}
		session.Put(ctx, adminKey, true)

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleLogout(session *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := session.Destroy(ctx); err != nil {
			return fmt.Errorf("destroying session: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
