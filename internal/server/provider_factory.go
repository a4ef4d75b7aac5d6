package server

import (
	"log/slog"

	"github.com/preston-bernstein/sports-catalog-service/internal/config"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
)

// providerFactory assembles the schedule provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.Upstream.Rate, f.logger)
	name := normalizeProviderName(resolveProvider(cfg, nil), base)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, name, cfg.Upstream.Retries, 0)
}
