package server

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/config"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers/fixture"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers/powersports"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers/statsapi"
	"github.com/preston-bernstein/sports-catalog-service/internal/testutil"
)

func TestProviderFactoryWrapsAndRecords(t *testing.T) {
	rec := metrics.NewRecorder()
	prov := newProviderFactory(nil, rec).build(config.Config{Provider: config.ProviderFixture})
	if prov == nil {
		t.Fatalf("expected provider")
	}

	list, err := prov.FetchGames(context.Background(), leagues.NHL, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil || len(list) == 0 {
		t.Fatalf("expected fixture games, got %v err %v", list, err)
	}
	if rec.ProviderCalls(config.ProviderFixture) != 1 {
		t.Fatalf("expected retry wrapper to record under fixture, got %d", rec.ProviderCalls(config.ProviderFixture))
	}
}

func TestSelectProvider(t *testing.T) {
	cases := map[string]func(providers.ScheduleProvider) bool{
		config.ProviderFixture:  func(p providers.ScheduleProvider) bool { _, ok := p.(*fixture.Provider); return ok },
		config.ProviderStatsAPI: func(p providers.ScheduleProvider) bool { _, ok := p.(*statsapi.Client); return ok },
		"":                      func(p providers.ScheduleProvider) bool { _, ok := p.(*statsapi.Client); return ok },
		"unknown":               func(p providers.ScheduleProvider) bool { _, ok := p.(*fixture.Provider); return ok },
	}
	for name, check := range cases {
		logger, _ := testutil.NewBufferLogger()
		if p := selectProvider(config.Config{Provider: name}, logger); !check(p) {
			t.Fatalf("provider %q: unexpected type %T", name, p)
		}
	}
}

func TestSelectLocatorMatchesProvider(t *testing.T) {
	if _, ok := selectLocator(config.Config{Provider: config.ProviderFixture}, nil).(*fixture.Locator); !ok {
		t.Fatalf("expected fixture locator")
	}
	if _, ok := selectLocator(config.Config{Provider: "unknown"}, nil).(*fixture.Locator); !ok {
		t.Fatalf("expected fixture locator for unknown provider")
	}

	loc, ok := selectLocator(config.Config{
		Provider: config.ProviderStatsAPI,
		Stream:   config.StreamConfig{Host: "streams.test"},
	}, nil).(*powersports.Locator)
	if !ok {
		t.Fatalf("expected powersports locator")
	}
	if loc.Host() != "streams.test" {
		t.Fatalf("expected configured host, got %s", loc.Host())
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("StatsAPI", nil); got != "statsapi" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic name, got %s", got)
	}
}

func TestUpstreamClient(t *testing.T) {
	if upstreamClient(config.Config{}) != nil {
		t.Fatalf("expected nil client without timeout")
	}
	c := upstreamClient(config.Config{Upstream: config.UpstreamConfig{Timeout: 3 * time.Second}})
	if c == nil || c.Timeout != 3*time.Second {
		t.Fatalf("expected client with timeout, got %+v", c)
	}
}
