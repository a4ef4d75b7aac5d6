package server

import (
	"context"
	"log/slog"
	"time"

	appgames "github.com/preston-bernstein/sports-catalog-service/internal/app/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/catalog"
	"github.com/preston-bernstein/sports-catalog-service/internal/config"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/reachability"
	"github.com/preston-bernstein/sports-catalog-service/internal/store"
)

// components are the catalog collaborators shared by the HTTP server and the CLI.
type components struct {
	store     store.GameStore
	games     *appgames.Service
	navigator *catalog.Navigator
	location  *time.Location
}

func buildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.ScheduleProvider, locator providers.StreamLocator) components {
	loc, err := cfg.Location()
	if err != nil {
		logging.Warn(logger, "invalid timezone, using UTC", logging.FieldError, err)
	}

	st := buildStore(cfg, logger)
	gameSvc := appgames.NewService(st, provider,
		appgames.WithLogger(logger),
		appgames.WithMetrics(recorder),
		appgames.WithFetchTimeout(cfg.Upstream.Timeout),
	)

	nav := catalog.NewNavigator(catalog.Config{
		Games:    gameSvc,
		Locator:  locator,
		Prober:   buildProber(cfg, logger),
		Profiles: loadProfiles(cfg, logger),
		CDN:      cfg.Stream.CDN,
		Location: loc,
		Logger:   logger,
		Metrics:  recorder,
	})

	return components{store: st, games: gameSvc, navigator: nav, location: loc}
}

// NewNavigator builds a Navigator wired exactly as the server wires it, for in-process
// callers such as the CLI. The returned func releases the cache backend.
func NewNavigator(cfg config.Config, logger *slog.Logger) (*catalog.Navigator, func() error) {
	recorder := metrics.NewRecorder()
	provider := newProviderFactory(logger, recorder).build(cfg)
	c := buildComponents(cfg, logger, recorder, provider, selectLocator(cfg, logger))
	return c.navigator, c.store.Close
}

func buildStore(cfg config.Config, logger *slog.Logger) store.GameStore {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		rs, err := store.NewRedisStore(cfg.Cache.RedisURL)
		if err == nil {
			timeout := cfg.Upstream.Timeout
			if timeout <= 0 {
				timeout = redisPingTimeout
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			err = rs.Ping(ctx)
			cancel()
			if err == nil {
				logging.Info(logger, "using redis cache backend")
				return rs
			}
			_ = rs.Close()
		}
		logging.Warn(logger, "redis cache unavailable, falling back to memory", logging.FieldError, err)
		return store.NewMemoryStore()
	case config.CacheBackendMemory, "":
		return store.NewMemoryStore()
	default:
		logging.Warn(logger, "unknown cache backend, using memory", slog.String("backend", cfg.Cache.Backend))
		return store.NewMemoryStore()
	}
}

func buildProber(cfg config.Config, logger *slog.Logger) catalog.Prober {
	if !cfg.Probe.Enabled {
		return nil
	}
	return reachability.NewProber(reachability.Config{
		Reference: cfg.Stream.Host,
		Timeout:   cfg.Probe.Timeout,
		Logger:    logger,
	})
}

func loadProfiles(cfg config.Config, logger *slog.Logger) []catalog.QualityProfile {
	path := cfg.Catalog.QualityProfilesFile
	if path == "" {
		return catalog.DefaultProfiles()
	}
	profiles, err := catalog.LoadProfiles(path)
	if err != nil {
		logging.Warn(logger, "quality profiles unusable, using defaults",
			slog.String("path", path),
			logging.FieldError, err,
		)
		return catalog.DefaultProfiles()
	}
	return profiles
}
