package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a ScheduleProvider with retry/backoff behavior.
type retryingProvider struct {
	inner        ScheduleProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Configuration errors are never retried; rate limit responses wait for their Retry-After.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, base time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if base <= 0 {
		base = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = base
			exp.MaxInterval = maxBackoff
			exp.MaxElapsedTime = 0
			exp.Reset()
			return exp
		},
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (games.GameList, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	policy := &retryAfterBackOff{BackOff: r.newBackOff()}
	bounded := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	var result games.GameList
	attempt := 0
	op := func() error {
		attempt++
		start := time.Now()
		list, err := r.inner.FetchGames(ctx, league, date)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			result = list
			return nil
		}
		if _, ok := AsConfigurationError(err); ok {
			return backoff.Permanent(err)
		}
		if errors.Is(err, ErrMalformedResponse) {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
			policy.next = rl.RetryAfter
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	if err := backoff.RetryNotify(op, bounded, notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			"attempts", attempt,
			"err", err,
		)
		return nil, err
	}
	return result, nil
}

// retryAfterBackOff lets a single upstream Retry-After override the next computed delay.
type retryAfterBackOff struct {
	backoff.BackOff
	next time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	computed := b.BackOff.NextBackOff()
	if b.next > 0 && computed != backoff.Stop {
		delay := b.next
		b.next = 0
		return delay
	}
	return computed
}
