package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/jkarimi/fanaka-furniture/api/background"
	"github.com/jkarimi/fanaka-furniture/api/middleware"
	"github.com/jkarimi/fanaka-furniture/api/web"
	"github.com/jkarimi/fanaka-furniture/config"
	"github.com/jkarimi/fanaka-furniture/core/auth"
	"github.com/jkarimi/fanaka-furniture/core/cart"
	"github.com/jkarimi/fanaka-furniture/core/category"
	"github.com/jkarimi/fanaka-furniture/core/checkout"
	"github.com/jkarimi/fanaka-furniture/core/content"
	"github.com/jkarimi/fanaka-furniture/core/product"
	"github.com/jkarimi/fanaka-furniture/core/service"
	"github.com/jkarimi/fanaka-furniture/rate"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin      string
	Log             logrus.FieldLogger
	DB              *sqlx.DB
	Session         *scs.SessionManager
	Background      *background.Background
	Dispatcher      checkout.Dispatcher
	AdminCfg        config.Admin
	CheckoutLimiter *rate.Limiter
	LoginLimiter    *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	admin := auth.Admin(cfg.Session)

	a.Handle(http.MethodPost, "/auth/login", auth.HandleLogin(cfg.Session, cfg.AdminCfg, cfg.LoginLimiter))
	a.Handle(http.MethodPost, "/auth/logout", auth.HandleLogout(cfg.Session))

	a.Handle(http.MethodGet, "/products/{id}", product.HandleShow(cfg.DB))
	a.Handle(http.MethodGet, "/products", product.HandleList(cfg.DB))
	a.Handle(http.MethodPost, "/products", product.HandleCreate(cfg.DB), admin)
	a.Handle(http.MethodPut, "/products/{id}", product.HandleUpdate(cfg.DB), admin)
	a.Handle(http.MethodDelete, "/products/{id}", product.HandleDelete(cfg.DB), admin)

	a.Handle(http.MethodGet, "/categories/all", category.HandleListAll(cfg.DB), admin)
	a.Handle(http.MethodGet, "/categories", category.HandleList(cfg.DB))
	a.Handle(http.MethodPost, "/categories", category.HandleCreate(cfg.DB), admin)
	a.Handle(http.MethodPut, "/categories/{id}", category.HandleUpdate(cfg.DB), admin)
	a.Handle(http.MethodDelete, "/categories/{id}", category.HandleDelete(cfg.DB), admin)

	a.Handle(http.MethodGet, "/services/all", service.HandleListAll(cfg.DB), admin)
	a.Handle(http.MethodGet, "/services", service.HandleList(cfg.DB))
	a.Handle(http.MethodPost, "/services", service.HandleCreate(cfg.DB), admin)
	a.Handle(http.MethodPut, "/services/{id}", service.HandleUpdate(cfg.DB), admin)
	a.Handle(http.MethodDelete, "/services/{id}", service.HandleDelete(cfg.DB), admin)

	a.Handle(http.MethodGet, "/content/{section}", content.HandleShow(cfg.DB))
	a.Handle(http.MethodPut, "/content/{section}", content.HandleUpsert(cfg.DB), admin)

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.Session))
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.Session))
	a.Handle(http.MethodPut, "/cart/items/{product_id}", cart.HandleUpdateItem(cfg.Session))
	a.Handle(http.MethodDelete, "/cart/items/{product_id}", cart.HandleDeleteItem(cfg.Session))
	a.Handle(http.MethodPut, "/cart/items", cart.HandleAddItem(cfg.DB, cfg.Session))

	a.Handle(http.MethodPost, "/checkout", checkout.HandleSubmit(cfg.DB, cfg.Session, cfg.Dispatcher, cfg.Background, cfg.CheckoutLimiter))
	a.Handle(http.MethodGet, "/orders", checkout.HandleListOrders(cfg.DB), admin)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
