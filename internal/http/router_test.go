package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/sports-catalog-service/internal/catalog"
	"github.com/preston-bernstein/sports-catalog-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-catalog-service/internal/testutil"
)

type panicLister struct{}

func (panicLister) List(context.Context, catalog.Query) catalog.Result {
	panic("boom")
}

func newTestRouter(t *testing.T, withAdmin bool) http.Handler {
	t.Helper()
	svc := testutil.NewServiceWithGames(testutil.SampleGameList("g1"))
	nav := catalog.NewNavigator(catalog.Config{
		Games:   svc,
		Locator: &testutil.StubLocator{URL: "https://cdn.test/master.m3u8"},
	})
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(nav, logger, nil)
	var admin *handlers.AdminHandler
	if withAdmin {
		admin = handlers.NewAdminHandler(svc, "secret", nil, logger)
	}
	return NewRouter(h, admin, logger, nil)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, true)

	cases := map[string]int{
		"/health":                http.StatusOK,
		"/ready":                 http.StatusOK,
		"/catalog":               http.StatusOK,
		"/catalog?id=nhl_x":      http.StatusOK,
		"/catalog?start=oops":    http.StatusBadRequest,
		"/catalog?id=garbage_!!": http.StatusOK,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s expected request id header", path)
		}
	}
}

func TestRouterRootListsLeagues(t *testing.T) {
	router := newTestRouter(t, false)

	rr := testutil.Serve(router, http.MethodGet, "/catalog", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp catalog.Result
	testutil.DecodeJSON(t, rr, &resp)
	if resp.TotalRecordCount != 2 || resp.Items[0].Name != "NHL" || resp.Items[1].Name != "MLB" {
		t.Fatalf("unexpected root listing %+v", resp)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, true)
	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	router := newTestRouter(t, true)
	rr := testutil.Serve(router, http.MethodGet, "/admin/cache/purge", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterAdminMountedOnlyWithHandler(t *testing.T) {
	withAdmin := newTestRouter(t, true)
	rr := testutil.ServeAuthorized(withAdmin, http.MethodPost, "/admin/cache/purge", "secret")
	testutil.AssertStatus(t, rr, http.StatusOK)

	withoutAdmin := newTestRouter(t, false)
	rr = testutil.ServeAuthorized(withoutAdmin, http.MethodPost, "/admin/cache/purge", "secret")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterRecoversFromPanics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	router := NewRouter(handlers.NewHandler(panicLister{}, logger, nil), nil, logger, nil)

	rr := testutil.Serve(router, http.MethodGet, "/catalog", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if !strings.Contains(buf.String(), "status_code=500") {
		t.Fatalf("expected 500 logged by request middleware, got %s", buf.String())
	}
}
