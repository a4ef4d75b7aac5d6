package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-catalog-service/internal/config"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers/fixture"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers/powersports"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers/statsapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch resolveProvider(cfg, logger) {
	case config.ProviderFixture:
		return fixture.New()
	default:
		return statsapi.NewClient(statsapi.Config{
			NHLURL:     cfg.Schedule.NHLURL,
			MLBURL:     cfg.Schedule.MLBURL,
			HTTPClient: upstreamClient(cfg),
		})
	}
}

// selectLocator pairs the fixture schedule with the fixture locator so offline runs never
// reach the stream host.
func selectLocator(cfg config.Config, logger *slog.Logger) providers.StreamLocator {
	if resolveProvider(cfg, nil) == config.ProviderFixture {
		return fixture.NewLocator()
	}
	return powersports.NewLocator(powersports.Config{
		Host:       cfg.Stream.Host,
		CDN:        cfg.Stream.CDN,
		UserAgent:  cfg.Stream.UserAgent,
		HTTPClient: upstreamClient(cfg),
		Logger:     logger,
	})
}

func resolveProvider(cfg config.Config, logger *slog.Logger) string {
	switch cfg.Provider {
	case config.ProviderFixture:
		return config.ProviderFixture
	case config.ProviderStatsAPI, "":
		return config.ProviderStatsAPI
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return config.ProviderFixture
	}
}

func upstreamClient(cfg config.Config) *http.Client {
	if cfg.Upstream.Timeout <= 0 {
		return nil
	}
	return &http.Client{Timeout: cfg.Upstream.Timeout}
}
