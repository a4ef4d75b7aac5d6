package config

import "strings"

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig selects where game lists are cached.
type CacheConfig struct {
	Backend  string
	RedisURL string
}

// CatalogConfig controls catalog presentation.
type CatalogConfig struct {
	Timezone            string
	QualityProfilesFile string
}

// WarmConfig controls the background cache warmer.
type WarmConfig struct {
	Enabled  bool
	Interval Duration
}

// ProbeConfig controls the blackout reachability probe.
type ProbeConfig struct {
	Enabled bool
	Timeout Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:  strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)),
		RedisURL: envOrDefault(envRedisURL, defaultRedisURL),
	}
}

func loadCatalog() CatalogConfig {
	return CatalogConfig{
		Timezone:            envOrDefault(envTimezone, defaultTimezone),
		QualityProfilesFile: envOrDefault(envQualityProfiles, ""),
	}
}

func loadWarm() WarmConfig {
	return WarmConfig{
		Enabled:  boolEnvOrDefault(envWarmEnabled, defaultWarmEnabled),
		Interval: durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
	}
}

func loadProbe() ProbeConfig {
	return ProbeConfig{
		Enabled: boolEnvOrDefault(envProbeEnabled, defaultProbeEnabled),
		Timeout: durationEnvOrDefault(envProbeTimeout, defaultProbeTimeout),
	}
}
