package testutil

import (
	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
)

// SampleGame returns a minimal game fixture with the provided id and two feeds.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:       id,
		HomeTeam: domaingames.Team{Name: "Home", Abbreviation: "HOM"},
		AwayTeam: domaingames.Team{Name: "Away", Abbreviation: "AWY"},
		Feeds: []domaingames.Feed{
			{ID: id + "-home", FeedType: "NHLTV - HOME", CallLetters: "HTV"},
			{ID: id + "-away", FeedType: "NHLTV - AWAY"},
		},
		State: "Final",
	}
}

// SampleGameList builds a list with one sample game per id.
func SampleGameList(ids ...string) domaingames.GameList {
	list := make(domaingames.GameList, 0, len(ids))
	for _, id := range ids {
		list = append(list, SampleGame(id))
	}
	return list
}
