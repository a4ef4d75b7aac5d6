package fixture

import (
	"context"
	"fmt"
	"time"

	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

// BaseURL is the host of the playback URLs handed out by Locator.
const BaseURL = "https://fixture.local/hls"

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns a deterministic set of example games for the league.
// Games of the current day are reported in progress.
func (p *Provider) FetchGames(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	_ = ctx

	day := timeutil.Day(date.UTC())
	live := timeutil.FormatDate(day) == timeutil.FormatDate(p.now().UTC())
	state := "Final"
	if live {
		state = domaingames.StateInProgress
	}

	switch league {
	case leagues.NHL:
		return domaingames.GameList{
			{
				ID:        "2024020001",
				StartTime: day.Add(19 * time.Hour),
				HomeTeam:  domaingames.Team{Name: "Boston Bruins", Abbreviation: "BOS"},
				AwayTeam:  domaingames.Team{Name: "Toronto Maple Leafs", Abbreviation: "TOR"},
				Feeds: []domaingames.Feed{
					{ID: "f1", FeedType: "NHLTV - HOME", CallLetters: "NESN"},
					{ID: "f2", FeedType: "NHLTV - AWAY", CallLetters: "SNO"},
				},
				State: state,
			},
			{
				ID:        "2024020002",
				StartTime: day.Add(22 * time.Hour),
				HomeTeam:  domaingames.Team{Name: "Edmonton Oilers", Abbreviation: "EDM"},
				AwayTeam:  domaingames.Team{Name: "Calgary Flames", Abbreviation: "CGY"},
				Feeds:     []domaingames.Feed{domaingames.NoFeed},
				State:     "Scheduled",
			},
		}, nil
	case leagues.MLB:
		return domaingames.GameList{
			{
				ID:        "717465",
				StartTime: day.Add(23 * time.Hour),
				HomeTeam:  domaingames.Team{Name: "New York Yankees", Abbreviation: "NYY"},
				AwayTeam:  domaingames.Team{Name: "Boston Red Sox", Abbreviation: "BOS"},
				Feeds: []domaingames.Feed{
					{ID: "m1", FeedType: "MLBTV - HOME", CallLetters: "YES"},
					{ID: "m2", FeedType: "MLBTV - AWAY", CallLetters: "NESN"},
					{ID: "m3", FeedType: "MLBTV - NATIONAL"},
				},
				State: state,
			},
		}, nil
	default:
		return nil, &providers.ConfigurationError{Key: league.String(), Reason: "unsupported league"}
	}
}

// Locator hands out never-expiring playback URLs except for the "nofeed" placeholder.
type Locator struct{}

// NewLocator creates a fixture stream locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Resolve returns a deterministic base playback URL for the feed.
func (l *Locator) Resolve(ctx context.Context, req providers.StreamRequest) (string, error) {
	_ = ctx
	if req.FeedID == domaingames.NoFeedID {
		return "", &providers.StreamUnavailableError{Message: "Not available yet"}
	}
	return fmt.Sprintf("%s/%s/%s/%s/master.m3u8",
		BaseURL, req.League, timeutil.FormatCompactDate(req.Date), req.FeedID), nil
}
