package catalog

import (
	"strings"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

// MaxDepth is the number of meaningful components a token can carry.
const MaxDepth = 5

const separator = "_"

var (
	escaper   = strings.NewReplacer("%", "%25", "_", "%5F")
	unescaper = strings.NewReplacer("%5F", "_", "%25", "%")
)

// Path is a decoded navigation position. Depth is the number of meaningful components.
type Path interface {
	Depth() int
	components() []string
}

// RootPath is the top of the catalog.
type RootPath struct{}

// LeaguePath selects a league.
type LeaguePath struct {
	League leagues.League
}

// DatePath selects a league's calendar day.
type DatePath struct {
	League leagues.League
	Date   time.Time
}

// GamePath selects one game of a day.
type GamePath struct {
	League leagues.League
	Date   time.Time
	GameID string
}

// FeedPath selects one feed of a game.
type FeedPath struct {
	League leagues.League
	Date   time.Time
	GameID string
	FeedID string
}

// QualityPath identifies one quality leaf of a feed.
type QualityPath struct {
	League  leagues.League
	Date    time.Time
	GameID  string
	FeedID  string
	Quality string
}

func (RootPath) Depth() int    { return 0 }
func (LeaguePath) Depth() int  { return 1 }
func (DatePath) Depth() int    { return 2 }
func (GamePath) Depth() int    { return 3 }
func (FeedPath) Depth() int    { return 4 }
func (QualityPath) Depth() int { return 5 }

func (RootPath) components() []string { return nil }

func (p LeaguePath) components() []string { return []string{p.League.String()} }

func (p DatePath) components() []string {
	return []string{p.League.String(), timeutil.FormatCompactDate(p.Date)}
}

func (p GamePath) components() []string {
	return append(DatePath{League: p.League, Date: p.Date}.components(), p.GameID)
}

func (p FeedPath) components() []string {
	return append(GamePath{League: p.League, Date: p.Date, GameID: p.GameID}.components(), p.FeedID)
}

func (p QualityPath) components() []string {
	return append(FeedPath{League: p.League, Date: p.Date, GameID: p.GameID, FeedID: p.FeedID}.components(), p.Quality)
}

// Day narrows a league to a date.
func (p LeaguePath) Day(date time.Time) DatePath {
	return DatePath{League: p.League, Date: date}
}

// Game narrows a date to a game.
func (p DatePath) Game(id string) GamePath {
	return GamePath{League: p.League, Date: p.Date, GameID: id}
}

// Feed narrows a game to a feed.
func (p GamePath) Feed(id string) FeedPath {
	return FeedPath{League: p.League, Date: p.Date, GameID: p.GameID, FeedID: id}
}

// Quality narrows a feed to a quality leaf.
func (p FeedPath) Quality(key string) QualityPath {
	return QualityPath{League: p.League, Date: p.Date, GameID: p.GameID, FeedID: p.FeedID, Quality: key}
}

// Encode serializes p followed by suffix. The suffix only keeps tokens distinct and is
// ignored by Decode.
func Encode(p Path, suffix string) string {
	return encodeComponents(p.components(), suffix)
}

func encodeComponents(components []string, suffix string) string {
	parts := make([]string, 0, len(components)+1)
	for _, c := range components {
		parts = append(parts, escaper.Replace(c))
	}
	parts = append(parts, escaper.Replace(suffix))
	return strings.Join(parts, separator)
}

// Decode parses a token produced by Encode. The empty token is the root. Tokens with more
// than MaxDepth meaningful components, empty components, an unknown league or an invalid
// date are rejected.
func Decode(token string) (Path, bool) {
	if token == "" {
		return RootPath{}, true
	}
	parts := strings.Split(token, separator)
	parts = parts[:len(parts)-1]
	if len(parts) > MaxDepth {
		return nil, false
	}

	values := make([]string, len(parts))
	for i, raw := range parts {
		if raw == "" {
			return nil, false
		}
		values[i] = unescaper.Replace(raw)
	}
	if len(values) == 0 {
		return RootPath{}, true
	}

	league, err := leagues.Parse(values[0])
	if err != nil {
		return nil, false
	}
	lp := LeaguePath{League: league}
	if len(values) == 1 {
		return lp, true
	}

	date, err := timeutil.ParseCompactDate(values[1])
	if err != nil {
		return nil, false
	}
	dp := lp.Day(date)
	switch len(values) {
	case 2:
		return dp, true
	case 3:
		return dp.Game(values[2]), true
	case 4:
		return dp.Game(values[2]).Feed(values[3]), true
	default:
		return dp.Game(values[2]).Feed(values[3]).Quality(values[4]), true
	}
}
