package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/sports-catalog-service/internal/catalog"
	"github.com/preston-bernstein/sports-catalog-service/internal/http/requestutil"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/poller"
)

// Lister serves one page of the catalog tree.
type Lister interface {
	List(ctx context.Context, q catalog.Query) catalog.Result
}

// Handler wires HTTP routes to the catalog navigator.
type Handler struct {
	catalog  Lister
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil statusFn reports always ready.
func NewHandler(lister Lister, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		catalog:  lister,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the cache warmer has recently succeeded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Catalog lists the children of the node identified by the id query parameter.
// An absent id lists the root.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	start, err := requestutil.QueryInt(r, "start", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	limit, err := requestutil.QueryInt(r, "limit", catalog.MaxPageSize)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	q := catalog.Query{
		Token:      strings.TrimSpace(r.URL.Query().Get("id")),
		StartIndex: start,
		Limit:      limit,
	}
	result := h.catalog.List(r.Context(), q)

	logging.Debug(logger, "served catalog listing",
		logging.FieldToken, q.Token,
		logging.FieldCount, len(result.Items),
	)
	writeJSON(w, http.StatusOK, result, logger)
}
