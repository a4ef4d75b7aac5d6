package powersports

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

// Config controls how the locator reaches the stream-location host.
type Config struct {
	Host       string
	CDN        string
	UserAgent  string
	HTTPClient *http.Client
	Classifier Classifier
	Logger     *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Locator asks the stream-location host for a feed's signed playback URL.
type Locator struct {
	host       string
	cdn        string
	userAgent  string
	httpClient httpDoer
	classify   Classifier
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocator constructs a Locator, filling unset fields with defaults.
func NewLocator(cfg Config) *Locator {
	l := &Locator{
		host:      strings.TrimSpace(cfg.Host),
		cdn:       strings.TrimSpace(cfg.CDN),
		userAgent: cfg.UserAgent,
		classify:  cfg.Classifier,
		logger:    cfg.Logger,
		now:       time.Now,
	}
	if l.host == "" {
		l.host = DefaultHost
	}
	if l.cdn == "" {
		l.cdn = DefaultCDN
	}
	if l.userAgent == "" {
		l.userAgent = DefaultUserAgent
	}
	if l.classify == nil {
		l.classify = ClassifyBody
	}
	if cfg.HTTPClient != nil {
		l.httpClient = cfg.HTTPClient
	} else {
		l.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return l
}

// Host returns the stream-location host the locator talks to.
func (l *Locator) Host() string {
	return l.host
}

// Resolve fetches and classifies the playback URL for req.
func (l *Locator) Resolve(ctx context.Context, req providers.StreamRequest) (string, error) {
	endpoint := l.endpoint(req)
	logger := logging.FromContext(ctx, l.logger)
	logging.Debug(logger, "resolving stream url",
		logging.FieldProvider, providerName,
		logging.FieldLeague, req.League.String(),
		logging.FieldFeedID, req.FeedID,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &providers.ConfigurationError{Key: "STREAM_HOST", Reason: err.Error()}
	}
	httpReq.Header.Set("User-Agent", l.userAgent)

	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return "", &providers.UpstreamError{Provider: providerName, Op: "resolve stream", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", &providers.UpstreamError{Provider: providerName, Op: "read stream response", StatusCode: resp.StatusCode, Err: err}
	}
	if len(body) > maxBodyBytes {
		return "", &providers.UpstreamError{
			Provider:   providerName,
			Op:         "read stream response",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response body exceeds %d bytes", maxBodyBytes),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &providers.UpstreamError{
			Provider:   providerName,
			Op:         "resolve stream",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	resolved, err := l.classify(string(body), l.now())
	if err != nil {
		logging.Warn(logger, "stream not resolved",
			logging.FieldProvider, providerName,
			logging.FieldFeedID, req.FeedID,
			logging.FieldError, err,
		)
		return "", err
	}
	return resolved, nil
}

func (l *Locator) endpoint(req providers.StreamRequest) string {
	cdn := req.CDN
	if cdn == "" {
		cdn = l.cdn
	}
	q := url.Values{}
	q.Set("league", req.League.String())
	q.Set("date", timeutil.FormatDate(req.Date))
	q.Set("id", req.FeedID)
	q.Set("cdn", cdn)
	return (&url.URL{Scheme: "https", Host: l.host, Path: "/getM3U8.php", RawQuery: q.Encode()}).String()
}
