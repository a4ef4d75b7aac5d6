package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Games  domaingames.GameList
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
	// Release, when set, blocks each fetch until it is closed or ctx is done.
	Release chan struct{}

	mu       sync.Mutex
	requests []Request
}

// Request captures the arguments of one FetchGames call.
type Request struct {
	League leagues.League
	Date   time.Time
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	s.mu.Lock()
	s.requests = append(s.requests, Request{League: league, Date: date})
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)
	if s.Release != nil {
		select {
		case <-s.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.Games, s.Err
}

// Requests returns a copy of the recorded fetch arguments.
func (s *StubProvider) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// StubResolver is a test double for reachability.Resolver keyed by host.
type StubResolver struct {
	Addrs map[string][]string
	Errs  map[string]error
	Calls atomic.Int32
}

// LookupHost returns configured addresses or errors for host.
func (r *StubResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	_ = ctx
	r.Calls.Add(1)
	if err, ok := r.Errs[host]; ok {
		return nil, err
	}
	return r.Addrs[host], nil
}
