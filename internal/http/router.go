package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/sports-catalog-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-catalog-service/internal/http/middleware"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
)

// NewRouter registers HTTP routes on a chi router. The admin routes are mounted only when
// admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Middleware(logger, recorder))
	r.Use(chimw.Recoverer)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/catalog", handler.Catalog)
	if admin != nil {
		r.Post("/admin/cache/purge", admin.PurgeCache)
	}
	return r
}
