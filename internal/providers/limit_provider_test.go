package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/teststubs"
)

func TestRateLimitedProviderBlocksBeyondBurst(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 50, nil)

	// burst of 50 passes immediately; the 51st waits ~20ms.
	start := time.Now()
	for i := 0; i < 51; i++ {
		if _, err := rl.FetchGames(context.Background(), leagues.NHL, start); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected limiter to delay beyond burst, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 51 {
		t.Fatalf("expected 51 inner calls, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchGames(ctx, leagues.NHL, time.Now()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner ScheduleProvider
	rl := NewRateLimitedProvider(inner, 1, nil)

	if _, err := rl.FetchGames(context.Background(), leagues.NHL, time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsRate(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubProvider{}, 0, nil).(*rateLimitedProvider)
	if got := float64(rl.limiter.Limit()); got != defaultRatePerSecond {
		t.Fatalf("expected default rate %d, got %v", defaultRatePerSecond, got)
	}
	if rl.limiter.Burst() != defaultRatePerSecond {
		t.Fatalf("expected burst %d, got %d", defaultRatePerSecond, rl.limiter.Burst())
	}
}
