package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/metrics"
	"github.com/preston-bernstein/sports-catalog-service/internal/timeutil"
)

const defaultInterval = 60 * time.Second

// Refresher re-fetches a league's day and replaces the cached list.
type Refresher interface {
	Refresh(ctx context.Context, league leagues.League, date time.Time) (domaingames.GameList, error)
}

// Poller keeps today's game lists warm by refreshing them on an interval.
type Poller struct {
	refresher Refresher
	leagues   []leagues.League
	loc       *time.Location
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller warming every league's current day in loc.
func New(refresher Refresher, loc *time.Location, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Poller{
		refresher: refresher,
		leagues:   leagues.All(),
		loc:       loc,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins warming until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "cache warmer started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "cache warmer stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "cache warmer stopped")
				return
			case <-p.ticker.C:
				p.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the warm loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) warmOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := timeutil.Day(p.now().In(p.loc))

	var errs []error
	total := 0
	for _, league := range p.leagues {
		list, err := p.refresher.Refresh(ctx, league, today)
		if err != nil {
			logging.Error(p.logger, "cache warm failed", err,
				logging.FieldLeague, league.String(),
				logging.FieldDate, timeutil.FormatDate(today),
			)
			errs = append(errs, err)
			continue
		}
		total += len(list)
	}
	err := errors.Join(errs...)
	p.metrics.RecordWarmCycle(time.Since(start), err)

	if err != nil {
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "cache warmed",
		logging.FieldDate, timeutil.FormatDate(today),
		logging.FieldCount, total,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
