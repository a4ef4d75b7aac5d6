package games

import "time"

// StateInProgress is the upstream detailed state of a game being played.
const StateInProgress = "In Progress"

// NoFeedID identifies the placeholder feed of a game without broadcast data.
const NoFeedID = "nofeed"

// NoFeed is attached to games whose upstream payload carries no media/EPG items so that
// navigation always offers at least one feed folder.
var NoFeed = Feed{ID: NoFeedID, FeedType: "No Feed Available", CallLetters: ""}

// Team is the normalized team shape.
type Team struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Feed is one broadcast variant of a game. ID is the media id later passed to the stream locator.
type Feed struct {
	ID          string `json:"id"`
	FeedType    string `json:"feedType"`
	CallLetters string `json:"callLetters"`
}

// DisplayName labels the feed folder, preferring call letters when the broadcaster has them.
func (f Feed) DisplayName() string {
	if f.CallLetters == "" {
		return f.FeedType
	}
	return f.CallLetters + " (" + f.FeedType + ")"
}

// Game is the canonical game shape produced by schedule providers.
type Game struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	HomeTeam  Team      `json:"homeTeam"`
	AwayTeam  Team      `json:"awayTeam"`
	Feeds     []Feed    `json:"feeds"`
	State     string    `json:"state"`
}

// Title is the folder name of the game.
func (g Game) Title() string {
	return g.HomeTeam.Name + " vs " + g.AwayTeam.Name
}

// InProgress reports whether the game is currently being played.
func (g Game) InProgress() bool {
	return g.State == StateInProgress
}

// Feed returns the feed with the given id.
func (g Game) Feed(id string) (Feed, bool) {
	for _, f := range g.Feeds {
		if f.ID == id {
			return f, true
		}
	}
	return Feed{}, false
}

// GameList is the ordered result of one schedule fetch for a (league, date) pair.
type GameList []Game

// Find returns the game with the given id.
func (l GameList) Find(id string) (Game, bool) {
	for _, g := range l {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}
