package config

// ScheduleConfig holds the league schedule endpoint templates. Empty values use the public APIs.
type ScheduleConfig struct {
	NHLURL string
	MLBURL string
}

// StreamConfig controls how stream locations are resolved.
type StreamConfig struct {
	Host      string
	CDN       string
	UserAgent string
}

// UpstreamConfig bounds calls to the schedule and stream hosts.
type UpstreamConfig struct {
	Timeout Duration
	// Rate is the schedule request budget per second.
	Rate    float64
	Retries int
}

func loadSchedule() ScheduleConfig {
	return ScheduleConfig{
		NHLURL: envOrDefault(envNHLScheduleURL, ""),
		MLBURL: envOrDefault(envMLBScheduleURL, ""),
	}
}

func loadStream() StreamConfig {
	return StreamConfig{
		Host:      envOrDefault(envStreamHost, defaultStreamHost),
		CDN:       envOrDefault(envStreamCDN, defaultStreamCDN),
		UserAgent: envOrDefault(envStreamUserAgent, defaultStreamUserAgent),
	}
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Timeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		Rate:    floatEnvOrDefault(envUpstreamRate, defaultUpstreamRate),
		Retries: intEnvOrDefault(envUpstreamRetries, defaultUpstreamRetries),
	}
}
