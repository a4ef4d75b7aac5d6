package statsapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
)

func mapSchedule(league leagues.League, payload scheduleResponse) (games.GameList, error) {
	list := make(games.GameList, 0)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			game, err := mapGame(league, g)
			if err != nil {
				return nil, err
			}
			list = append(list, game)
		}
	}
	return list, nil
}

func mapGame(league leagues.League, g gameResponse) (games.Game, error) {
	if g.GamePk == nil {
		return games.Game{}, malformed("game without gamePk")
	}
	id := strconv.FormatInt(*g.GamePk, 10)
	if g.Teams == nil || g.Teams.Home == nil || g.Teams.Home.Team == nil ||
		g.Teams.Away == nil || g.Teams.Away.Team == nil {
		return games.Game{}, malformed("game %s without teams", id)
	}
	if g.Status == nil {
		return games.Game{}, malformed("game %s without status", id)
	}

	return games.Game{
		ID:        id,
		StartTime: parseGameDate(g.GameDate),
		HomeTeam:  mapTeam(*g.Teams.Home.Team),
		AwayTeam:  mapTeam(*g.Teams.Away.Team),
		Feeds:     mapFeeds(league, g.Content),
		State:     g.Status.DetailedState,
	}, nil
}

func mapTeam(t teamResponse) games.Team {
	return games.Team{Name: t.Name, Abbreviation: t.Abbreviation}
}

// mapFeeds keeps EPG entries whose title starts with the league name and never returns an empty list.
func mapFeeds(league leagues.League, content *contentResponse) []games.Feed {
	if content == nil || content.Media == nil {
		return []games.Feed{games.NoFeed}
	}

	feeds := make([]games.Feed, 0)
	seen := make(map[string]struct{})
	for _, epg := range content.Media.EPG {
		if !strings.HasPrefix(strings.ToLower(epg.Title), league.String()) {
			continue
		}
		for _, item := range epg.Items {
			id := item.MediaPlaybackID
			if id == "" {
				id = item.ID
			}
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			feeds = append(feeds, games.Feed{
				ID:          id,
				FeedType:    epg.Title + " - " + item.MediaFeedType,
				CallLetters: item.CallLetters,
			})
		}
	}
	if len(feeds) == 0 {
		return []games.Feed{games.NoFeed}
	}
	return feeds
}

func parseGameDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", providers.ErrMalformedResponse, fmt.Sprintf(format, args...))
}
