package powersports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
)

// Classifier turns a stream-location response body into a playback URL or an error.
// It is swappable because the vendor's body format is not stable.
type Classifier func(body string, now time.Time) (string, error)

// ClassifyBody is the default Classifier:
//   - a body containing "Not" is a not-ready message and is returned verbatim as *StreamUnavailableError;
//   - a body carrying exp=<unix seconds>~ with an expiry strictly before now is expired;
//   - anything else is the base playback URL.
//
// A malformed expiry is an *UpstreamError.
func ClassifyBody(body string, now time.Time) (string, error) {
	body = strings.TrimSpace(body)
	if strings.Contains(body, notReadyMarker) {
		return "", &providers.StreamUnavailableError{Message: body}
	}

	expiresAt, ok, err := parseExpiry(body)
	if err != nil {
		return "", &providers.UpstreamError{Provider: providerName, Op: "parse expiry", Err: err}
	}
	if ok && expiresAt < now.Unix() {
		return "", &providers.StreamUnavailableError{Message: ExpiredMessage}
	}
	if body == "" {
		return "", &providers.UpstreamError{Provider: providerName, Op: "resolve stream", Err: fmt.Errorf("empty response body")}
	}
	return body, nil
}

// parseExpiry extracts the unix-seconds value between "exp=" and the next "~".
func parseExpiry(body string) (int64, bool, error) {
	idx := strings.Index(body, expMarker)
	if idx < 0 {
		return 0, false, nil
	}
	rest := body[idx+len(expMarker):]
	end := strings.Index(rest, expTerminator)
	if end < 0 {
		return 0, false, fmt.Errorf("exp value without terminator")
	}
	secs, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid exp value %q: %w", rest[:end], err)
	}
	return secs, true, nil
}
