package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/http/requestutil"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/store"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

// CachePurger drops cached game lists.
type CachePurger interface {
	Invalidate(ctx context.Context, league leagues.League, date time.Time) error
	InvalidateAll(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	cache  CachePurger
	token  string
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// NewAdminHandler constructs an AdminHandler. loc decides "today" when only a league is given.
func NewAdminHandler(cache CachePurger, token string, loc *time.Location, logger *slog.Logger) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{
		cache:  cache,
		token:  token,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// PurgeCache drops cached game lists so the next listing refetches them.
//
//	no params        every cached list
//	league           that league's list for today
//	date (YYYYMMDD)  that day for every league
//	league and date  one list
//
// A fetch in flight for a purged list answers its waiters but is not written back.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) PurgeCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	rawLeague := strings.TrimSpace(r.URL.Query().Get("league"))
	rawDate := strings.TrimSpace(r.URL.Query().Get("date"))

	if rawLeague == "" && rawDate == "" {
		if err := h.cache.InvalidateAll(r.Context()); err != nil {
			logging.Error(logger, "admin cache purge failed", err)
			writeError(w, r, http.StatusInternalServerError, "failed to purge cache", logger)
			return
		}
		logging.Info(logger, "admin cache purged", slog.String("scope", "all"))
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "scope": "all"}, logger)
		return
	}

	targets := leagues.All()
	if rawLeague != "" {
		league, err := leagues.Parse(rawLeague)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid league", logger)
			return
		}
		targets = []leagues.League{league}
	}

	date := timeutil.Day(h.now().In(h.loc))
	if rawDate != "" {
		parsed, err := timeutil.ParseCompactDate(rawDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYYMMDD)", logger)
			return
		}
		date = parsed
	}

	purged := make([]string, 0, len(targets))
	for _, league := range targets {
		if err := h.cache.Invalidate(r.Context(), league, date); err != nil {
			logging.Error(logger, "admin cache purge failed", err,
				logging.FieldLeague, league.String(),
				logging.FieldDate, timeutil.FormatDate(date),
			)
			writeError(w, r, http.StatusInternalServerError, "failed to purge cache", logger)
			return
		}
		purged = append(purged, store.NewKey(league, date).String())
	}

	logging.Info(logger, "admin cache purged",
		logging.FieldDate, timeutil.FormatDate(date),
		logging.FieldCount, len(purged),
	)
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "purged": purged}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	token, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}
