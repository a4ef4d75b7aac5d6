package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envNHLScheduleURL  = "NHL_SCHEDULE_URL"
	envMLBScheduleURL  = "MLB_SCHEDULE_URL"
	envStreamHost      = "STREAM_HOST"
	envStreamCDN       = "STREAM_CDN"
	envStreamUserAgent = "STREAM_USER_AGENT"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envUpstreamRate    = "UPSTREAM_RATE"
	envUpstreamRetries = "UPSTREAM_RETRIES"
	envTimezone        = "TIMEZONE"
	envCacheBackend    = "CACHE_BACKEND"
	envRedisURL        = "REDIS_URL"
	envQualityProfiles = "QUALITY_PROFILES_FILE"
	envWarmEnabled     = "WARM_ENABLED"
	envWarmInterval    = "WARM_INTERVAL"
	envProbeEnabled    = "PROBE_ENABLED"
	envProbeTimeout    = "PROBE_TIMEOUT"
	envAdminToken      = "ADMIN_TOKEN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort     = "4000"
	defaultProvider = "statsapi"

	defaultStreamHost      = "powersports.ml"
	defaultStreamCDN       = "akc"
	defaultStreamUserAgent = "Mozilla/5.0 Gecko Firefox"

	// Bounds both single requests and a shared cache fill.
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultUpstreamRate    = 5.0
	defaultUpstreamRetries = 3

	defaultTimezone     = "America/New_York"
	defaultCacheBackend = CacheBackendMemory
	defaultRedisURL     = "redis://localhost:6379/0"

	defaultWarmEnabled  = true
	defaultWarmInterval = 60 * Duration(time.Second)
	defaultProbeEnabled = true
	defaultProbeTimeout = 2 * Duration(time.Second)

	defaultMetricsPort = "9090"
	defaultServiceName = "sports-catalog-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)
