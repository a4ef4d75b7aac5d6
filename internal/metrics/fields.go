package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrLeague   = "league"
	AttrOutcome  = "outcome"
	AttrDepth    = "depth"
)

// Outcome values used with AttrOutcome.
const (
	OutcomeHit         = "hit"
	OutcomeMiss        = "miss"
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)
