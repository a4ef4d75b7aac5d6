package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/sports-catalog-service/internal/catalog"
	"github.com/preston-bernstein/sports-catalog-service/internal/config"
)

type fakeLister struct {
	result catalog.Result
	last   catalog.Query
	closed bool
}

func (f *fakeLister) List(ctx context.Context, q catalog.Query) catalog.Result {
	_ = ctx
	f.last = q
	return f.result
}

func runCLI(t *testing.T, fake *fakeLister, args ...string) (string, error) {
	t.Helper()
	factory := func(cfg config.Config, logger *slog.Logger) (lister, func() error) {
		return fake, func() error {
			fake.closed = true
			return nil
		}
	}
	cmd := newRootCmd(factory)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func sampleResult() catalog.Result {
	return catalog.Result{
		Items: []catalog.Item{
			{ID: "nhl_a", Name: "NHL", Kind: catalog.KindFolder},
			{
				ID:           "nhl_20240115_1_f1_720p_b",
				Name:         "720p",
				Kind:         catalog.KindMedia,
				IsLiveStream: true,
				MediaSources: []catalog.MediaSource{{ID: "720p", Path: "https://cdn.test/3500K/3500_slide.m3u8", Protocol: catalog.ProtocolHTTP, Bitrate: 3500000}},
			},
		},
		TotalRecordCount: 7,
	}
}

func TestListPrintsTable(t *testing.T) {
	fake := &fakeLister{result: sampleResult()}
	out, err := runCLI(t, fake, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.last.Token != "" || fake.last.Limit != catalog.MaxPageSize {
		t.Fatalf("unexpected query %+v", fake.last)
	}
	for _, want := range []string{"KIND", "folder", "NHL", "live", "3500 kbps", "2 of 7 items"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !fake.closed {
		t.Fatalf("expected navigator resources released")
	}
}

func TestListPassesTokenAndPaging(t *testing.T) {
	fake := &fakeLister{}
	if _, err := runCLI(t, fake, "list", "nhl_20240115_x", "--start", "5", "--limit", "10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := catalog.Query{Token: "nhl_20240115_x", StartIndex: 5, Limit: 10}
	if fake.last != want {
		t.Fatalf("expected %+v, got %+v", want, fake.last)
	}
}

func TestListJSON(t *testing.T) {
	fake := &fakeLister{result: sampleResult()}
	out, err := runCLI(t, fake, "list", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res catalog.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("expected JSON output, got %v:\n%s", err, out)
	}
	if res.TotalRecordCount != 7 || len(res.Items) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestListRejectsBadInput(t *testing.T) {
	if _, err := runCLI(t, &fakeLister{}, "list", "--start", "-1"); err == nil {
		t.Fatalf("expected error for negative start")
	}
	if _, err := runCLI(t, &fakeLister{}, "list", "a", "b"); err == nil {
		t.Fatalf("expected error for extra arguments")
	}
}

func TestListWithFixtureNavigator(t *testing.T) {
	t.Setenv("PROVIDER", config.ProviderFixture)
	t.Setenv("PROBE_ENABLED", "false")
	t.Setenv("CACHE_BACKEND", config.CacheBackendMemory)

	cmd := newRootCmd(defaultNavigator)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res catalog.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.TotalRecordCount != 2 || res.Items[0].Name != "NHL" {
		t.Fatalf("unexpected root listing %+v", res)
	}
}
