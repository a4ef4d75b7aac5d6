package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Schedule.NHLURL != "" || cfg.Schedule.MLBURL != "" {
		t.Fatalf("expected empty schedule overrides, got %+v", cfg.Schedule)
	}
	if cfg.Stream.Host != defaultStreamHost || cfg.Stream.CDN != defaultStreamCDN || cfg.Stream.UserAgent != defaultStreamUserAgent {
		t.Fatalf("unexpected stream defaults: %+v", cfg.Stream)
	}
	if cfg.Upstream.Timeout != defaultUpstreamTimeout || cfg.Upstream.Rate != defaultUpstreamRate || cfg.Upstream.Retries != defaultUpstreamRetries {
		t.Fatalf("unexpected upstream defaults: %+v", cfg.Upstream)
	}
	if cfg.Cache.Backend != CacheBackendMemory || cfg.Cache.RedisURL != defaultRedisURL {
		t.Fatalf("unexpected cache defaults: %+v", cfg.Cache)
	}
	if cfg.Catalog.Timezone != defaultTimezone || cfg.Catalog.QualityProfilesFile != "" {
		t.Fatalf("unexpected catalog defaults: %+v", cfg.Catalog)
	}
	if !cfg.Warm.Enabled || cfg.Warm.Interval != defaultWarmInterval {
		t.Fatalf("unexpected warm defaults: %+v", cfg.Warm)
	}
	if !cfg.Probe.Enabled || cfg.Probe.Timeout != defaultProbeTimeout {
		t.Fatalf("unexpected probe defaults: %+v", cfg.Probe)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName || !cfg.Metrics.Enabled {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
	if cfg.Logging.Level != defaultLogLevel || cfg.Logging.Format != defaultLogFormat {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, ProviderFixture)
	t.Setenv(envNHLScheduleURL, "http://nhl.test/{date}")
	t.Setenv(envMLBScheduleURL, "http://mlb.test/{date}")
	t.Setenv(envStreamHost, "streams.test")
	t.Setenv(envStreamCDN, "l3c")
	t.Setenv(envStreamUserAgent, "agent/1.0")
	t.Setenv(envUpstreamTimeout, "3s")
	t.Setenv(envUpstreamRate, "2.5")
	t.Setenv(envUpstreamRetries, "5")
	t.Setenv(envTimezone, "UTC")
	t.Setenv(envCacheBackend, "Redis")
	t.Setenv(envRedisURL, "redis://cache:6379/1")
	t.Setenv(envQualityProfiles, "/etc/profiles.yaml")
	t.Setenv(envWarmEnabled, "false")
	t.Setenv(envWarmInterval, "45s")
	t.Setenv(envProbeEnabled, "no")
	t.Setenv(envProbeTimeout, "500ms")
	t.Setenv(envAdminToken, "secret-token")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" || cfg.Provider != ProviderFixture {
		t.Fatalf("unexpected port/provider: %s %s", cfg.Port, cfg.Provider)
	}
	if cfg.Schedule.NHLURL != "http://nhl.test/{date}" || cfg.Schedule.MLBURL != "http://mlb.test/{date}" {
		t.Fatalf("unexpected schedule overrides: %+v", cfg.Schedule)
	}
	if cfg.Stream.Host != "streams.test" || cfg.Stream.CDN != "l3c" || cfg.Stream.UserAgent != "agent/1.0" {
		t.Fatalf("unexpected stream overrides: %+v", cfg.Stream)
	}
	if cfg.Upstream.Timeout != 3*time.Second || cfg.Upstream.Rate != 2.5 || cfg.Upstream.Retries != 5 {
		t.Fatalf("unexpected upstream overrides: %+v", cfg.Upstream)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Fatalf("unexpected cache overrides: %+v", cfg.Cache)
	}
	if cfg.Catalog.Timezone != "UTC" || cfg.Catalog.QualityProfilesFile != "/etc/profiles.yaml" {
		t.Fatalf("unexpected catalog overrides: %+v", cfg.Catalog)
	}
	if cfg.Warm.Enabled || cfg.Warm.Interval != 45*time.Second {
		t.Fatalf("unexpected warm overrides: %+v", cfg.Warm)
	}
	if cfg.Probe.Enabled || cfg.Probe.Timeout != 500*time.Millisecond {
		t.Fatalf("unexpected probe overrides: %+v", cfg.Probe)
	}
	if cfg.AdminToken != "secret-token" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging overrides: %+v", cfg.Logging)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envWarmInterval, "not-a-duration")

	cfg := Load()

	if cfg.Warm.Interval != defaultWarmInterval {
		t.Fatalf("expected default warm interval on invalid value, got %s", cfg.Warm.Interval)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envUpstreamTimeout, "0s")
	t.Setenv(envUpstreamRate, "-1")
	t.Setenv(envUpstreamRetries, "0")

	cfg := Load()

	if cfg.Upstream.Timeout != defaultUpstreamTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.Rate != defaultUpstreamRate {
		t.Fatalf("expected default rate on non-positive value, got %v", cfg.Upstream.Rate)
	}
	if cfg.Upstream.Retries != defaultUpstreamRetries {
		t.Fatalf("expected default retries on non-positive value, got %d", cfg.Upstream.Retries)
	}
}

func TestLocation(t *testing.T) {
	cfg := Config{Catalog: CatalogConfig{Timezone: "America/New_York"}}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Fatalf("unexpected location %s", loc)
	}

	cfg.Catalog.Timezone = "Nowhere/Special"
	loc, err = cfg.Location()
	if err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
	if loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", loc)
	}
}
