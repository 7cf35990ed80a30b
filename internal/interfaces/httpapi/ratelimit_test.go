package httpapi

import (
	"testing"
	"time"
)

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(time.Minute, 1)
	limiter.now = func() time.Time { return now }

	if d := limiter.Allow("203.0.113.7"); !d.Allowed || d.Remaining != 0 {
		t.Fatalf("first request: %+v", d)
	}
	if d := limiter.Allow("203.0.113.7"); d.Allowed {
		t.Fatalf("expected second request in window to be rejected")
	}
	if d := limiter.Allow("198.51.100.2"); !d.Allowed {
		t.Fatalf("expected other client to have its own window")
	}

	now = now.Add(time.Minute)
	d := limiter.Allow("203.0.113.7")
	if !d.Allowed {
		t.Fatalf("expected request after window to pass")
	}
	if d.Reset != time.Minute {
		t.Fatalf("unexpected reset %v", d.Reset)
	}
}

func TestRateLimiter_DefaultsAndSweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(0, 0)
	limiter.now = func() time.Time { return now }
	if limiter.limit != 100 || limiter.window != 15*time.Minute {
		t.Fatalf("unexpected defaults: %d %v", limiter.limit, limiter.window)
	}

	limiter.Allow("a")
	now = now.Add(16 * time.Minute)
	limiter.Allow("b")
	if _, ok := limiter.clients["a"]; ok {
		t.Fatalf("expected expired window to be swept")
	}
}

func TestUnderPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path, prefix string
		want         bool
	}{
		{path: "/api/health", prefix: "/api", want: true},
		{path: "/api", prefix: "/api", want: true},
		{path: "/apix", prefix: "/api", want: false},
		{path: "/", prefix: "/api", want: false},
		{path: "/team/1", prefix: "", want: true},
	}
	for _, tc := range cases {
		if got := underPrefix(tc.path, tc.prefix); got != tc.want {
			t.Fatalf("underPrefix(%q, %q) = %v want %v", tc.path, tc.prefix, got, tc.want)
		}
	}
}
