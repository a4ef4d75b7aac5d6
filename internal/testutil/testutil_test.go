package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/leagues"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/poller"
	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseDate("2024-01-15"); got.Day() != 15 || got.Month() != time.January {
		t.Fatalf("unexpected parsed date %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("15/01/2024")
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame("id-1")
	if g.ID != "id-1" || g.HomeTeam.Name == "" || g.AwayTeam.Name == "" {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	if len(g.Feeds) != 2 || g.Feeds[0].ID != "id-1-home" {
		t.Fatalf("unexpected feeds %+v", g.Feeds)
	}
	list := SampleGameList("a", "b")
	if len(list) != 2 {
		t.Fatalf("expected two games, got %d", len(list))
	}
	if _, ok := list.Find("b"); !ok {
		t.Fatalf("expected game b in list")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServeAuthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	AssertStatus(t, ServeAuthorized(handler, http.MethodPost, "/admin", "secret"), http.StatusOK)
	AssertStatus(t, ServeAuthorized(handler, http.MethodPost, "/admin", ""), http.StatusUnauthorized)
}

func TestServerStubs(t *testing.T) {
	w := &StubWarmer{StopErr: errors.New("stop"), StatusVal: poller.Status{ConsecutiveFailures: 2}}
	w.Start(context.Background())
	if err := w.Stop(context.Background()); !errors.Is(err, w.StopErr) {
		t.Fatalf("expected stop error")
	}
	if w.StartCalls.Load() != 1 || w.StopCalls.Load() != 1 {
		t.Fatalf("unexpected call counts start=%d stop=%d", w.StartCalls.Load(), w.StopCalls.Load())
	}
	if w.Status().ConsecutiveFailures != 2 {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: http.ErrServerClosed, ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected configured listen error, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); !errors.Is(err, sh.ShutdownErr) {
		t.Fatalf("expected configured shutdown error, got %v", err)
	}
	if sh.Addr() == "" || sh.Handler() == nil {
		t.Fatalf("expected addr and handler defaults")
	}
	if sh.ListenCalls.Load() != 1 || sh.ShutdownCalls.Load() != 1 {
		t.Fatalf("expected one listen and one shutdown call")
	}
}

func TestStubHTTPServerShutdownBlocks(t *testing.T) {
	b := &StubHTTPServer{Unblock: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if err := b.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected shutdown to wait for ctx, got %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err after unblock, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("cache miss", logging.FieldCacheKey, "nhl_20240115")
	if !strings.Contains(buf.String(), "cache_key=nhl_20240115") {
		t.Fatalf("expected debug output with catalog field, got %q", buf.String())
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	day := MustParseDate("2024-01-15")
	g := SampleGameList("g1")

	p := GoodProvider{Games: g}
	if got, _ := p.FetchGames(ctx, leagues.NHL, day); len(got) != 1 {
		t.Fatalf("expected games from GoodProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchGames(ctx, leagues.NHL, day); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	unavail := UnavailableProvider{}
	if _, err := unavail.FetchGames(ctx, leagues.MLB, day); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}
}

func TestLocatorHelpers(t *testing.T) {
	ctx := context.Background()
	req := providers.StreamRequest{League: leagues.NHL, Date: MustParseDate("2024-01-15"), FeedID: "f1"}

	loc := &StubLocator{URL: "https://cdn.test/master.m3u8"}
	if got, err := loc.Resolve(ctx, req); err != nil || got != loc.URL {
		t.Fatalf("unexpected resolve %q err %v", got, err)
	}
	loc.Err = errors.New("down")
	if _, err := loc.Resolve(ctx, req); !errors.Is(err, loc.Err) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	if loc.Calls.Load() != 2 {
		t.Fatalf("expected two calls, got %d", loc.Calls.Load())
	}

	_, err := UnavailableLocator{Message: "Not yet"}.Resolve(ctx, req)
	unavailable, ok := providers.AsStreamUnavailableError(err)
	if !ok || unavailable.Message != "Not yet" {
		t.Fatalf("expected stream unavailable error, got %v", err)
	}
}

func TestNewServiceWithGames(t *testing.T) {
	svc := NewServiceWithGames(SampleGameList("g1"))
	list, err := svc.Games(context.Background(), leagues.NHL, MustParseDate("2024-01-15"))
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected games %v err %v", list, err)
	}
}
