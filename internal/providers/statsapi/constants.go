package statsapi

import "time"

const (
	providerName = "statsapi"

	// DatePlaceholder is replaced with the YYYY-MM-DD request date in endpoint templates.
	DatePlaceholder = "{date}"

	DefaultNHLURL = "http://statsapi.web.nhl.com/api/v1/schedule?startDate={date}&endDate={date}&expand=schedule.teams,schedule.linescore,schedule.game.content.media.epg"
	DefaultMLBURL = "https://statsapi.mlb.com/api/v1/schedule?sportId=1&startDate={date}&endDate={date}&hydrate=team,linescore,game(content(summary,media(epg)))&language=en"

	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
