package config

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Provider names accepted by PROVIDER.
const (
	ProviderStatsAPI = "statsapi"
	ProviderFixture  = "fixture"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	AdminToken string
	Schedule   ScheduleConfig
	Stream     StreamConfig
	Upstream   UpstreamConfig
	Cache      CacheConfig
	Catalog    CatalogConfig
	Warm       WarmConfig
	Probe      ProbeConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		AdminToken: envOrDefault(envAdminToken, ""),
		Schedule:   loadSchedule(),
		Stream:     loadStream(),
		Upstream:   loadUpstream(),
		Cache:      loadCache(),
		Catalog:    loadCatalog(),
		Warm:       loadWarm(),
		Probe:      loadProbe(),
		Metrics:    loadMetrics(),
		Logging:    loadLogging(),
	}
}

// Location resolves the catalog time zone, falling back to UTC when it cannot be loaded.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Catalog.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("load timezone %q: %w", c.Catalog.Timezone, err)
	}
	return loc, nil
}
