package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
)

const defaultRatePerSecond = 5

// rateLimitedProvider wraps a ScheduleProvider and caps the rate of upstream calls.
type rateLimitedProvider struct {
	next    ScheduleProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a ScheduleProvider that allows at most perSecond calls per second
// (with an equal burst). Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next ScheduleProvider, perSecond float64, logger *slog.Logger) ScheduleProvider {
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (games.GameList, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch",
		slog.String(logging.FieldLeague, league.String()),
		slog.Time(logging.FieldDate, date),
	)
	return p.next.FetchGames(ctx, league, date)
}
