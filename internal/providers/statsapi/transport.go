package statsapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func resolveTemplates(nhl, mlb string) map[leagues.League]string {
	if strings.TrimSpace(nhl) == "" {
		nhl = DefaultNHLURL
	}
	if strings.TrimSpace(mlb) == "" {
		mlb = DefaultMLBURL
	}
	return map[leagues.League]string{
		leagues.NHL: nhl,
		leagues.MLB: mlb,
	}
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP date.
func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
