package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

const (
	// DaysBack is the number of date folders listed under a league, today included.
	DaysBack = 5

	// NoFeedsName labels the leaf shown when a game id is not in the day's list.
	NoFeedsName = "No feeds found"

	// UnavailableKey is the quality component of an informational stream leaf.
	UnavailableKey = "unavailable"

	warningSuffix = " IP ERROR"
)

// GameSource returns the cached or freshly fetched games of a league's day.
type GameSource interface {
	Games(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error)
}

// Prober reports media hosts that are not redirected to the stream host.
type Prober interface {
	Mismatched(ctx context.Context) []string
}

// Config wires a Navigator.
type Config struct {
	Games    GameSource
	Locator  providers.StreamLocator
	Prober   Prober
	Profiles []QualityProfile
	CDN      string
	Location *time.Location
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Navigator lists the catalog tree league > date > game > feed > quality.
// It never returns an error: failures degrade to empty or informational listings.
type Navigator struct {
	games     GameSource
	locator   providers.StreamLocator
	prober    Prober
	profiles  []QualityProfile
	cdn       string
	loc       *time.Location
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
	newSuffix func() string
}

// NewNavigator constructs a Navigator. Missing profiles fall back to DefaultProfiles and a
// missing location to UTC.
func NewNavigator(cfg Config) *Navigator {
	n := &Navigator{
		games:     cfg.Games,
		locator:   cfg.Locator,
		prober:    cfg.Prober,
		profiles:  cfg.Profiles,
		cdn:       cfg.CDN,
		loc:       cfg.Location,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		now:       time.Now,
		newSuffix: uuid.NewString,
	}
	if len(n.profiles) == 0 {
		n.profiles = DefaultProfiles()
	}
	if n.loc == nil {
		n.loc = time.UTC
	}
	return n
}

// Profiles returns the quality profiles leaves are expanded into.
func (n *Navigator) Profiles() []QualityProfile {
	out := make([]QualityProfile, len(n.profiles))
	copy(out, n.profiles)
	return out
}

// List returns one page of the listing under q.Token.
func (n *Navigator) List(ctx context.Context, q Query) Result {
	start := time.Now()
	logger := logging.FromContext(ctx, n.logger)

	path, ok := Decode(q.Token)
	if !ok {
		logging.Debug(logger, "undecodable catalog token", logging.FieldToken, q.Token)
		n.metrics.RecordNavigation(-1, 0, time.Since(start))
		return page(nil, q)
	}

	var items []Item
	switch p := path.(type) {
	case RootPath:
		items = n.root(ctx)
	case LeaguePath:
		items = n.dates(p)
	case DatePath:
		items = n.gameFolders(ctx, p)
	case GamePath:
		items = n.feedFolders(ctx, p)
	case FeedPath:
		items = n.qualityLeaves(ctx, p)
	}

	logging.Debug(logger, "catalog listed",
		logging.FieldToken, q.Token,
		logging.FieldDepth, path.Depth(),
		logging.FieldCount, len(items),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	n.metrics.RecordNavigation(path.Depth(), len(items), time.Since(start))
	return page(items, q)
}

func (n *Navigator) root(ctx context.Context) []Item {
	var items []Item
	if n.prober != nil {
		for _, host := range n.prober.Mismatched(ctx) {
			items = append(items, Item{
				ID:   encodeComponents([]string{host}, n.newSuffix()),
				Name: host + warningSuffix,
				Kind: KindFolder,
			})
		}
	}
	for _, l := range leagues.All() {
		items = append(items, Item{
			ID:   Encode(LeaguePath{League: l}, n.newSuffix()),
			Name: l.Title(),
			Kind: KindFolder,
		})
	}
	return items
}

func (n *Navigator) dates(p LeaguePath) []Item {
	days := timeutil.TrailingDays(n.now().In(n.loc), DaysBack)
	items := make([]Item, 0, len(days))
	for _, d := range days {
		items = append(items, Item{
			ID:   Encode(p.Day(d), n.newSuffix()),
			Name: timeutil.FormatDate(d),
			Kind: KindFolder,
		})
	}
	return items
}

func (n *Navigator) gameFolders(ctx context.Context, p DatePath) []Item {
	list, ok := n.gameList(ctx, p)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(list))
	for _, g := range list {
		items = append(items, Item{
			ID:   Encode(p.Game(g.ID), n.newSuffix()),
			Name: g.Title(),
			Kind: KindFolder,
		})
	}
	return items
}

func (n *Navigator) feedFolders(ctx context.Context, p GamePath) []Item {
	list, ok := n.gameList(ctx, DatePath{League: p.League, Date: p.Date})
	if !ok {
		return nil
	}
	game, found := list.Find(p.GameID)
	if !found {
		n.logNotFound(ctx, &providers.NotFoundError{Kind: "game", ID: p.GameID})
		return []Item{{Name: NoFeedsName, Kind: KindMedia}}
	}
	items := make([]Item, 0, len(game.Feeds))
	for _, f := range game.Feeds {
		items = append(items, Item{
			ID:   Encode(p.Feed(f.ID), n.newSuffix()),
			Name: f.DisplayName(),
			Kind: KindFolder,
		})
	}
	return items
}

func (n *Navigator) qualityLeaves(ctx context.Context, p FeedPath) []Item {
	list, ok := n.gameList(ctx, DatePath{League: p.League, Date: p.Date})
	if !ok {
		return nil
	}
	game, found := list.Find(p.GameID)
	if !found {
		n.logNotFound(ctx, &providers.NotFoundError{Kind: "game", ID: p.GameID})
		return nil
	}
	if _, found := game.Feed(p.FeedID); !found {
		n.logNotFound(ctx, &providers.NotFoundError{Kind: "feed", ID: p.FeedID})
		return nil
	}

	base, err := n.resolve(ctx, p)
	if err != nil {
		return []Item{{
			ID:   Encode(p.Quality(UnavailableKey), n.newSuffix()),
			Name: failureMessage(err),
			Kind: KindMedia,
		}}
	}

	items := make([]Item, 0, len(n.profiles))
	for _, profile := range n.profiles {
		id := Encode(p.Quality(profile.Key), n.newSuffix())
		items = append(items, Item{
			ID:           id,
			Name:         profile.Title,
			Kind:         KindMedia,
			IsLiveStream: true,
			MediaSources: []MediaSource{{
				ID:       id,
				Path:     StreamURL(base, profile.File, game.InProgress()),
				Protocol: ProtocolHTTP,
				Bitrate:  profile.Bitrate,
			}},
		})
	}
	return items
}

func (n *Navigator) resolve(ctx context.Context, p FeedPath) (string, error) {
	logger := logging.FromContext(ctx, n.logger)
	if n.locator == nil {
		return "", providers.ErrProviderUnavailable
	}
	start := time.Now()
	base, err := n.locator.Resolve(ctx, providers.StreamRequest{
		League: p.League,
		Date:   p.Date,
		FeedID: p.FeedID,
		CDN:    n.cdn,
	})
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case isUnavailable(err):
		outcome = metrics.OutcomeUnavailable
		logging.Info(logger, "stream unavailable",
			logging.FieldLeague, p.League.String(),
			logging.FieldGameID, p.GameID,
			logging.FieldFeedID, p.FeedID,
			logging.FieldError, err,
		)
	default:
		outcome = metrics.OutcomeError
		logging.Warn(logger, "stream resolution failed",
			logging.FieldLeague, p.League.String(),
			logging.FieldFeedID, p.FeedID,
			logging.FieldError, err,
		)
	}
	n.metrics.RecordStreamResolution(p.League.String(), outcome, time.Since(start))
	return base, err
}

func (n *Navigator) gameList(ctx context.Context, p DatePath) (domaingames.GameList, bool) {
	if n.games == nil {
		return nil, false
	}
	list, err := n.games.Games(ctx, p.League, p.Date)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, n.logger), "game list unavailable",
			logging.FieldLeague, p.League.String(),
			logging.FieldDate, timeutil.FormatDate(p.Date),
			logging.FieldError, err,
		)
		return nil, false
	}
	return list, true
}

func (n *Navigator) logNotFound(ctx context.Context, err *providers.NotFoundError) {
	logging.Debug(logging.FromContext(ctx, n.logger), "catalog lookup missed", logging.FieldError, err)
}

func isUnavailable(err error) bool {
	_, ok := providers.AsStreamUnavailableError(err)
	return ok
}

// failureMessage is the upstream message for unavailable streams and the error text otherwise.
func failureMessage(err error) string {
	if su, ok := providers.AsStreamUnavailableError(err); ok {
		return su.Message
	}
	return err.Error()
}
