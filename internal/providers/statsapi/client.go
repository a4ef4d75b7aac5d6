package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

// Config controls how the client reaches the league schedule APIs.
// Empty URLs fall back to the public NHL and MLB endpoints.
type Config struct {
	NHLURL     string
	MLBURL     string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches one day of a league's schedule and maps it to domain games.
type Client struct {
	templates  map[leagues.League]string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		templates:  resolveTemplates(cfg.NHLURL, cfg.MLBURL),
		userAgent:  cfg.UserAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchGames retrieves the games of league on the calendar day of date.
func (c *Client) FetchGames(ctx context.Context, league leagues.League, date time.Time) (games.GameList, error) {
	template, ok := c.templates[league]
	if !ok {
		return nil, &providers.ConfigurationError{Key: league.String(), Reason: "unsupported league"}
	}

	endpoint := strings.ReplaceAll(template, DatePlaceholder, timeutil.FormatDate(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &providers.ConfigurationError{Key: league.String() + " schedule url", Reason: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, upstreamErr("fetch schedule", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, upstreamErr("fetch schedule", resp.StatusCode, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		})
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, upstreamErr("fetch schedule", resp.StatusCode,
			fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, upstreamErr("decode schedule", resp.StatusCode, err)
	}

	list, err := mapSchedule(league, payload)
	if err != nil {
		return nil, upstreamErr("map schedule", resp.StatusCode, err)
	}
	return list, nil
}

func upstreamErr(op string, status int, err error) error {
	return &providers.UpstreamError{Provider: providerName, Op: op, StatusCode: status, Err: err}
}
