package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/api/weberr"
)

// Panics converts a panicking handler into an error carrying the stack, so
// the errors middleware can log it and the process keeps serving.
func Panics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {

			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					err = weberr.InternalError(
						fmt.Errorf("PANIC [%v]", rec),
						weberr.WithFields(map[string]interface{}{"trace": string(trace)}),
					)
				}
			}()

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
