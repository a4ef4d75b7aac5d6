package testutil

import (
	"context"
	"sync/atomic"
	"time"

	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
)

// GoodProvider returns the provided games with no error.
type GoodProvider struct {
	Games domaingames.GameList
}

func (p GoodProvider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	_ = ctx
	_ = league
	_ = date
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	return nil, providers.ErrProviderUnavailable
}

// StubLocator resolves every request to URL or fails with Err.
type StubLocator struct {
	URL   string
	Err   error
	Calls atomic.Int32
}

func (l *StubLocator) Resolve(ctx context.Context, req providers.StreamRequest) (string, error) {
	_ = ctx
	_ = req
	l.Calls.Add(1)
	if l.Err != nil {
		return "", l.Err
	}
	return l.URL, nil
}

// UnavailableLocator reports every stream as not ready with Message.
type UnavailableLocator struct {
	Message string
}

func (l UnavailableLocator) Resolve(ctx context.Context, req providers.StreamRequest) (string, error) {
	return "", &providers.StreamUnavailableError{Message: l.Message}
}
