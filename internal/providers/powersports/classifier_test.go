package powersports

import (
	"testing"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/providers"
)

func TestClassifyBody(t *testing.T) {
	now := time.Unix(2000, 0)
	cases := []struct {
		name        string
		body        string
		wantURL     string
		unavailable string
		upstream    bool
	}{
		{
			name:    "valid_future_expiry",
			body:    "https://cdn.test/hls/exp=9999999999~acl=/*~hmac=abc/master.m3u8\n",
			wantURL: "https://cdn.test/hls/exp=9999999999~acl=/*~hmac=abc/master.m3u8",
		},
		{
			name:        "expired",
			body:        "https://cdn.test/hls/exp=1000~acl=/*~hmac=abc/master.m3u8",
			unavailable: ExpiredMessage,
		},
		{
			name:    "expiry_equal_to_now_is_valid",
			body:    "https://cdn.test/exp=2000~x/master.m3u8",
			wantURL: "https://cdn.test/exp=2000~x/master.m3u8",
		},
		{
			name:        "not_ready",
			body:        "Not available yet",
			unavailable: "Not available yet",
		},
		{
			name:    "no_expiry",
			body:    "https://cdn.test/plain/master.m3u8",
			wantURL: "https://cdn.test/plain/master.m3u8",
		},
		{
			name:    "multibyte_path_before_expiry",
			body:    "https://x/İ/exp=9999999999~a/m.m3u8",
			wantURL: "https://x/İ/exp=9999999999~a/m.m3u8",
		},
		{
			name:        "multibyte_path_with_past_expiry",
			body:        "https://cdn.test/İİİİİİ/exp=1000~x/master.m3u8",
			unavailable: ExpiredMessage,
		},
		{
			name:     "multibyte_prefix_unterminated_expiry",
			body:     "ȺȺȺȺȺexp=",
			upstream: true,
		},
		{
			name:     "malformed_expiry",
			body:     "https://cdn.test/exp=soon~x/master.m3u8",
			upstream: true,
		},
		{
			name:     "unterminated_expiry",
			body:     "https://cdn.test/exp=1234",
			upstream: true,
		},
		{
			name:     "empty",
			body:     "  ",
			upstream: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyBody(tc.body, now)
			switch {
			case tc.unavailable != "":
				suErr, ok := providers.AsStreamUnavailableError(err)
				if !ok || suErr.Message != tc.unavailable {
					t.Fatalf("expected unavailable %q, got %v", tc.unavailable, err)
				}
			case tc.upstream:
				if _, ok := providers.AsUpstreamError(err); !ok {
					t.Fatalf("expected upstream error, got %v", err)
				}
			default:
				if err != nil || got != tc.wantURL {
					t.Fatalf("expected %q, got %q err %v", tc.wantURL, got, err)
				}
			}
		})
	}
}
