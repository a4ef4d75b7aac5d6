package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when a provider decorator has nothing to delegate to.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrMalformedResponse marks upstream payloads that decode but miss required objects.
var ErrMalformedResponse = errors.New("malformed upstream response")

// ConfigurationError reports a request for something the service is not configured to serve,
// such as an unsupported league.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("configuration error: %q", e.Key)
	}
	return fmt.Sprintf("configuration error: %s %q", e.Reason, e.Key)
}

// UpstreamError wraps transport failures, unexpected statuses, and undecodable payloads.
type UpstreamError struct {
	Provider   string
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Provider + ": " + e.Op
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (status=%d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a game or feed id missing from an otherwise successful listing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// StreamUnavailableError carries the upstream message of a stream that is not ready or has expired.
type StreamUnavailableError struct {
	Message string
}

func (e *StreamUnavailableError) Error() string {
	if e.Message == "" {
		return "stream unavailable"
	}
	return e.Message
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsConfigurationError attempts to unwrap an error into a ConfigurationError.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr, true
	}
	return nil, false
}

// AsStreamUnavailableError attempts to unwrap an error into a StreamUnavailableError.
func AsStreamUnavailableError(err error) (*StreamUnavailableError, bool) {
	var suErr *StreamUnavailableError
	if errors.As(err, &suErr) {
		return suErr, true
	}
	return nil, false
}
