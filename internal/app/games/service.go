package games

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
	"github.com/preston-bernstein/sports-catalog-service/internal/store"
)

const defaultFetchTimeout = 10 * time.Second

// Service serves game lists from the store and fetches through to the schedule provider on a miss.
// Concurrent misses for the same key share one upstream fetch; failed fetches are never cached.
// A purge that lands while a fetch is in flight wins: the fetch still answers its waiters but does
// not write its list back.
type Service struct {
	store        store.GameStore
	provider     providers.ScheduleProvider
	group        singleflight.Group
	purgeMu      sync.Mutex
	epoch        uint64
	keyPurges    map[string]uint64
	inflight     map[string]int
	ttl          time.Duration
	fetchTimeout time.Duration
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = recorder }
}

// WithTTL overrides how long fetched lists are cached.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFetchTimeout bounds a shared upstream fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// NewService constructs a Service over the given store and provider.
func NewService(st store.GameStore, provider providers.ScheduleProvider, opts ...Option) *Service {
	s := &Service{
		store:        st,
		provider:     provider,
		ttl:          store.GameListTTL,
		fetchTimeout: defaultFetchTimeout,
		keyPurges:    make(map[string]uint64),
		inflight:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Games returns the game list of league on the day of date.
func (s *Service) Games(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	key := store.NewKey(league, date)
	logger := logging.FromContext(ctx, s.logger)

	list, ok, err := s.store.Get(ctx, key)
	if err != nil {
		logging.Warn(logger, "cache read failed, fetching upstream",
			logging.FieldCacheKey, key.String(),
			logging.FieldError, err,
		)
	}
	if ok {
		s.metrics.RecordCacheLookup(league.String(), true)
		return list, nil
	}
	s.metrics.RecordCacheLookup(league.String(), false)

	return s.fetch(ctx, key)
}

// Game returns a single game of the day's list.
func (s *Service) Game(ctx context.Context, league leagues.League, date time.Time, id string) (domaingames.Game, bool, error) {
	list, err := s.Games(ctx, league, date)
	if err != nil {
		return domaingames.Game{}, false, err
	}
	g, ok := list.Find(id)
	return g, ok, nil
}

// Refresh fetches the list from upstream regardless of the cached entry and replaces it.
func (s *Service) Refresh(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error) {
	return s.fetch(ctx, store.NewKey(league, date))
}

// Invalidate drops the cached list for league and date. A fetch already in flight for the key
// will not repopulate it, and later callers start a fresh fetch.
func (s *Service) Invalidate(ctx context.Context, league leagues.League, date time.Time) error {
	key := store.NewKey(league, date)
	s.purgeMu.Lock()
	defer s.purgeMu.Unlock()
	s.keyPurges[key.String()]++
	s.group.Forget(key.String())
	return s.store.Delete(ctx, key)
}

// InvalidateAll drops every cached list, with the same in-flight guarantees as Invalidate.
func (s *Service) InvalidateAll(ctx context.Context) error {
	s.purgeMu.Lock()
	defer s.purgeMu.Unlock()
	s.epoch++
	for key := range s.inflight {
		s.group.Forget(key)
	}
	return s.store.Clear(ctx)
}

// beginFill marks key in flight and returns the purge generation the fill started under.
func (s *Service) beginFill(key string) uint64 {
	s.purgeMu.Lock()
	defer s.purgeMu.Unlock()
	s.inflight[key]++
	return s.epoch + s.keyPurges[key]
}

func (s *Service) endFill(key string) {
	s.purgeMu.Lock()
	defer s.purgeMu.Unlock()
	if s.inflight[key]--; s.inflight[key] <= 0 {
		delete(s.inflight, key)
	}
}

// storeIfCurrent writes list unless a purge happened since gen was taken.
func (s *Service) storeIfCurrent(ctx context.Context, key store.Key, list domaingames.GameList, gen uint64) (bool, error) {
	s.purgeMu.Lock()
	defer s.purgeMu.Unlock()
	if s.epoch+s.keyPurges[key.String()] != gen {
		return false, nil
	}
	return true, s.store.Put(ctx, key, list, s.ttl)
}

// fetch joins or starts the shared fetch for key. The shared fetch is detached from the
// caller's cancellation; each caller stops waiting when its own ctx is done.
func (s *Service) fetch(ctx context.Context, key store.Key) (domaingames.GameList, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key.String(), func() (any, error) {
		return s.fill(detached, key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(domaingames.GameList), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) fill(ctx context.Context, key store.Key) (domaingames.GameList, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	gen := s.beginFill(key.String())
	defer s.endFill(key.String())

	logger := logging.FromContext(ctx, s.logger)
	start := time.Now()
	list, err := s.provider.FetchGames(ctx, key.League, key.Date)
	if err != nil {
		logging.Warn(logger, "game list fetch failed",
			logging.FieldCacheKey, key.String(),
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
			logging.FieldError, err,
		)
		return nil, err
	}
	if list == nil {
		list = domaingames.GameList{}
	}

	stored, err := s.storeIfCurrent(ctx, key, list, gen)
	if err != nil {
		logging.Warn(logger, "cache write failed",
			logging.FieldCacheKey, key.String(),
			logging.FieldError, err,
		)
	} else if !stored {
		logging.Debug(logger, "cache purged during fetch, result not stored",
			logging.FieldCacheKey, key.String(),
		)
	}
	logging.Debug(logger, "game list fetched",
		logging.FieldCacheKey, key.String(),
		logging.FieldCount, len(list),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return list, nil
}
