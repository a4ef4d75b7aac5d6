package reachability

import (
	"context"
	"log/slog"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
)

const defaultTimeout = 2 * time.Second

// DefaultHosts are the league media hosts that must be redirected to the stream host for
// playback to work.
var DefaultHosts = []string{
	"mf.svc.nhl.com",
	"mlb-ws-mf.media.mlb.com",
	"playback.svcs.mlb.com",
}

// Resolver looks up host addresses. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Config controls a Prober.
type Config struct {
	Reference string
	Hosts     []string
	Timeout   time.Duration
	Resolver  Resolver
	Logger    *slog.Logger
}

// Prober checks that each media host resolves to the same address as the reference host.
type Prober struct {
	reference string
	hosts     []string
	timeout   time.Duration
	resolver  Resolver
	logger    *slog.Logger
}

// NewProber constructs a Prober, defaulting hosts, timeout and resolver.
func NewProber(cfg Config) *Prober {
	p := &Prober{
		reference: cfg.Reference,
		hosts:     cfg.Hosts,
		timeout:   cfg.Timeout,
		resolver:  cfg.Resolver,
		logger:    cfg.Logger,
	}
	if len(p.hosts) == 0 {
		p.hosts = DefaultHosts
	}
	if p.timeout <= 0 {
		p.timeout = defaultTimeout
	}
	if p.resolver == nil {
		p.resolver = net.DefaultResolver
	}
	return p
}

// Mismatched returns, in configured order, the hosts that do not share an address with the
// reference host. A host that fails to resolve counts as mismatched. If the reference itself
// cannot be resolved nothing can be compared and no host is reported.
func (p *Prober) Mismatched(ctx context.Context) []string {
	if p == nil || p.reference == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	logger := logging.FromContext(ctx, p.logger)

	var refAddrs []string
	results := make([][]string, len(p.hosts))
	failed := make([]bool, len(p.hosts))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addrs, err := p.resolver.LookupHost(gctx, p.reference)
		if err != nil {
			return err
		}
		refAddrs = addrs
		return nil
	})
	for i, host := range p.hosts {
		i, host := i, host
		g.Go(func() error {
			addrs, err := p.resolver.LookupHost(gctx, host)
			if err != nil {
				logging.Warn(logger, "probe lookup failed", logging.FieldHost, host, logging.FieldError, err)
				failed[i] = true
				return nil
			}
			results[i] = addrs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Warn(logger, "reference lookup failed", logging.FieldHost, p.reference, logging.FieldError, err)
		return nil
	}

	valid := make(map[string]struct{}, len(refAddrs))
	for _, a := range refAddrs {
		valid[a] = struct{}{}
	}

	var mismatched []string
	for i, host := range p.hosts {
		if failed[i] || !overlaps(valid, results[i]) {
			logging.Info(logger, "media host does not resolve to stream host",
				logging.FieldHost, host,
				"reference", p.reference,
				"addrs", results[i],
			)
			mismatched = append(mismatched, host)
		}
	}
	return mismatched
}

func overlaps(valid map[string]struct{}, addrs []string) bool {
	for _, a := range addrs {
		if _, ok := valid[a]; ok {
			return true
		}
	}
	return false
}
