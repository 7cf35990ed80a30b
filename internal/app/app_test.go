package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/riskibarqy/sportmonks-middleware/internal/config"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                          config.EnvDev,
		ServiceName:                     "sportmonks-middleware",
		ServiceVersion:                  "test",
		HTTPAddr:                        ":0",
		RoutePrefix:                     "/api",
		ReadTimeout:                     time.Second,
		WriteTimeout:                    time.Second,
		Locale:                          "th",
		RateLimitWindow:                 time.Minute,
		RateLimitMaxRequests:            100,
		SportMonksBaseURL:               "http://127.0.0.1:1",
		SportMonksToken:                 "token",
		SportMonksTimeout:               time.Second,
		SportMonksMaxPages:              1,
		SportMonksCircuitFailureCount:   5,
		SportMonksCircuitOpenTimeout:    time.Second,
		SportMonksCircuitHalfOpenMaxReq: 1,
		CacheDriver:                     config.CacheDriverMemory,
		PrefetchLeagueIDs:               []int64{8},
		PrefetchLocation:                time.UTC,
	}
}

func TestNew_MemoryDriverServesHealth(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if _, ok := application.store.(*cache.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", application.store)
	}
	if application.scheduler != nil {
		t.Fatalf("expected no scheduler when prefetch is disabled")
	}

	rec := httptest.NewRecorder()
	application.Server().Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if err := application.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestNew_RedisDriverWithPrefetch(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port: %v", err)
	}

	cfg := testConfig()
	cfg.CacheDriver = config.CacheDriverRedis
	cfg.RedisHost = mr.Host()
	cfg.RedisPort = port
	cfg.RedisDialTimeout = time.Second
	cfg.PrefetchEnabled = true

	application, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if _, ok := application.store.(*cache.RedisStore); !ok {
		t.Fatalf("expected redis store, got %T", application.store)
	}
	if application.scheduler == nil {
		t.Fatalf("expected scheduler when prefetch is enabled")
	}
	if got := len(application.scheduler.JobNames()); got != 4 {
		t.Fatalf("expected 4 prefetch jobs, got %d", got)
	}

	application.StartBackground(context.Background())
	if err := application.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestNew_RejectsBadPrefetchCron(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PrefetchEnabled = true
	cfg.PrefetchFixturesCron = "not a cron"

	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected invalid cron to fail")
	}
}
