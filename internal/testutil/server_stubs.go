package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/sports-catalog-service/internal/poller"
)

// StubWarmer stands in for the cache warmer the server starts and stops.
type StubWarmer struct {
	StartCalls atomic.Int32
	StopCalls  atomic.Int32
	StopErr    error
	StatusVal  poller.Status
}

func (w *StubWarmer) Start(ctx context.Context) {
	_ = ctx
	w.StartCalls.Add(1)
}

func (w *StubWarmer) Stop(ctx context.Context) error {
	_ = ctx
	w.StopCalls.Add(1)
	return w.StopErr
}

func (w *StubWarmer) Status() poller.Status {
	return w.StatusVal
}

// StubHTTPServer stands in for the listening server. ListenAndServe returns ListenErr
// (use http.ErrServerClosed for a clean exit). When Unblock is set, Shutdown waits for it
// to close or for ctx to expire.
type StubHTTPServer struct {
	ListenErr     error
	ShutdownErr   error
	Unblock       chan struct{}
	ListenCalls   atomic.Int32
	ShutdownCalls atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.ShutdownCalls.Add(1)
	if s.Unblock == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Unblock:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string {
	return ":0"
}

func (s *StubHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}
