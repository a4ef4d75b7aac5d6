package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStreamURL(t *testing.T) {
	base := "https://cdn.test/hls/exp=9999999999~acl/master_wired.m3u8"
	cases := []struct {
		name       string
		base       string
		inProgress bool
		want       string
	}{
		{"live", base, true, "https://cdn.test/hls/exp=9999999999~acl/3500K/3500_slide.m3u8"},
		{"finished", base, false, "https://cdn.test/hls/exp=9999999999~acl/3500K/3500_complete-trimmed.m3u8"},
		{"no_slash", "master.m3u8", false, "master.m3u8/3500K/3500_complete-trimmed.m3u8"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StreamURL(tc.base, "3500K/3500_{variant}.m3u8", tc.inProgress); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDefaultProfilesAreValid(t *testing.T) {
	if err := ValidateProfiles(DefaultProfiles()); err != nil {
		t.Fatalf("expected default profiles to validate, got %v", err)
	}
}

func TestParseProfiles(t *testing.T) {
	data := []byte(`
profiles:
  - key: hd
    title: HD
    file: 5000K/5000_{variant}.m3u8
    bitrate: 5000000
  - key: sd
    title: SD
    file: 800K/800_{variant}.m3u8
    bitrate: 800000
`)
	profiles, err := ParseProfiles(data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(profiles) != 2 || profiles[0].Key != "hd" || profiles[1].Bitrate != 800000 {
		t.Fatalf("unexpected profiles %+v", profiles)
	}
}

func TestParseProfilesRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":     "profiles: []",
		"no_key":    "profiles:\n  - file: a.m3u8\n",
		"no_file":   "profiles:\n  - key: a\n",
		"duplicate": "profiles:\n  - {key: a, file: a.m3u8}\n  - {key: a, file: b.m3u8}\n",
		"not_yaml":  "profiles: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseProfiles([]byte(data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("profiles:\n  - {key: q1, title: Q1, file: q1.m3u8, bitrate: 1}\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	profiles, err := LoadProfiles(path)
	if err != nil || len(profiles) != 1 || profiles[0].Key != "q1" {
		t.Fatalf("unexpected result %+v err %v", profiles, err)
	}
	if _, err := LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
