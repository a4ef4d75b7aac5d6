package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

// GameListTTL is how long a fetched game list stays cached.
const GameListTTL = 60 * time.Second

// Key identifies one cached game list.
type Key struct {
	League leagues.League
	Date   time.Time
}

// NewKey builds a key for the calendar day of date.
func NewKey(league leagues.League, date time.Time) Key {
	return Key{League: league, Date: timeutil.Day(date)}
}

// String renders the key as "{league}_{YYYYMMDD}".
func (k Key) String() string {
	return k.League.String() + "_" + timeutil.FormatCompactDate(k.Date)
}

// ParseKey parses the String form of a key.
func ParseKey(raw string) (Key, error) {
	league, date, ok := strings.Cut(raw, "_")
	if !ok {
		return Key{}, fmt.Errorf("invalid cache key %q", raw)
	}
	l, err := leagues.Parse(league)
	if err != nil {
		return Key{}, err
	}
	d, err := timeutil.ParseCompactDate(date)
	if err != nil {
		return Key{}, fmt.Errorf("invalid cache key date %q: %w", date, err)
	}
	return Key{League: l, Date: d}, nil
}

// GameStore caches game lists with a time-to-live. Stored lists are never mutated in place;
// Put replaces the entry and restarts its lifetime.
type GameStore interface {
	Get(ctx context.Context, key Key) (games.GameList, bool, error)
	Put(ctx context.Context, key Key, list games.GameList, ttl time.Duration) error
	Delete(ctx context.Context, key Key) error
	// Clear removes every cached list.
	Clear(ctx context.Context) error
	Close() error
}

func cloneList(list games.GameList) games.GameList {
	if list == nil {
		return games.GameList{}
	}
	out := make(games.GameList, len(list))
	copy(out, list)
	return out
}
