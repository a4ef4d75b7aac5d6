package leagues

import (
	"errors"
	"fmt"
	"strings"
)

// League identifies one of the supported upstream schedule sources.
type League int

const (
	NHL League = iota + 1
	MLB
)

// ErrUnknownLeague is returned when a league key does not match a supported league.
var ErrUnknownLeague = errors.New("unknown league")

// All returns the supported leagues in display order.
func All() []League {
	return []League{NHL, MLB}
}

// Parse resolves a case-insensitive league key ("nhl", "MLB", ...).
func Parse(raw string) (League, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "nhl":
		return NHL, nil
	case "mlb":
		return MLB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLeague, raw)
	}
}

// String returns the lower-case key used in tokens, cache keys, and upstream queries.
func (l League) String() string {
	switch l {
	case NHL:
		return "nhl"
	case MLB:
		return "mlb"
	default:
		return fmt.Sprintf("league(%d)", int(l))
	}
}

// Title is the display name of the league folder.
func (l League) Title() string {
	return strings.ToUpper(l.String())
}

// Valid reports whether l is one of the supported leagues.
func (l League) Valid() bool {
	return l == NHL || l == MLB
}
