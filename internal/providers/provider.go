package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
)

// ScheduleProvider fetches one league's games for one calendar day and normalizes them.
// Only the date part of date is significant.
type ScheduleProvider interface {
	FetchGames(ctx context.Context, league leagues.League, date time.Time) (games.GameList, error)
}

// StreamRequest identifies the feed whose playback URL is requested.
type StreamRequest struct {
	League leagues.League
	Date   time.Time
	FeedID string
	CDN    string
}

// StreamLocator resolves a feed into a usable, not-yet-expired base playback URL.
// A stream that is not ready or already expired is reported as *StreamUnavailableError.
type StreamLocator interface {
	Resolve(ctx context.Context, req StreamRequest) (string, error)
}
