package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/resilience"
)

// CacheTTLs holds the expiry of each resource class.
type CacheTTLs struct {
	Livescores time.Duration
	Fixtures   time.Duration
	Standings  time.Duration
	Teams      time.Duration
	Schedules  time.Duration
	Leagues    time.Duration
}

func DefaultCacheTTLs() CacheTTLs {
	return CacheTTLs{
		Livescores: 60 * time.Second,
		Fixtures:   3600 * time.Second,
		Standings:  86400 * time.Second,
		Teams:      604800 * time.Second,
		Schedules:  3600 * time.Second,
		Leagues:    86400 * time.Second,
	}
}

const (
	fixturesWindow     = 90 * 24 * time.Hour
	teamFixturesWindow = 30 * 24 * time.Hour
)

// SportDataService answers every read through the cache and only falls
// through to the provider on a miss. Failures are never cached.
type SportDataService struct {
	store    cache.Store
	provider SportsDataProvider
	ttl      CacheTTLs
	logger   *logging.Logger
	now      func() time.Time
	flight   resilience.Group[any]
}

type SportDataServiceOption func(*SportDataService)

// WithClock overrides the clock used for "today" and fixture windows.
func WithClock(now func() time.Time) SportDataServiceOption {
	return func(s *SportDataService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSportDataService(store cache.Store, provider SportsDataProvider, ttl CacheTTLs, logger *logging.Logger, opts ...SportDataServiceOption) *SportDataService {
	if logger == nil {
		logger = logging.Default()
	}
	defaults := DefaultCacheTTLs()
	if ttl.Livescores <= 0 {
		ttl.Livescores = defaults.Livescores
	}
	if ttl.Fixtures <= 0 {
		ttl.Fixtures = defaults.Fixtures
	}
	if ttl.Standings <= 0 {
		ttl.Standings = defaults.Standings
	}
	if ttl.Teams <= 0 {
		ttl.Teams = defaults.Teams
	}
	if ttl.Schedules <= 0 {
		ttl.Schedules = defaults.Schedules
	}
	if ttl.Leagues <= 0 {
		ttl.Leagues = defaults.Leagues
	}

	s := &SportDataService{
		store:    store,
		provider: provider,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PurgeByPattern drops every cached key matching a glob and reports how
// many were removed.
func (s *SportDataService) PurgeByPattern(ctx context.Context, pattern string) int {
	removed := s.store.DeleteByPattern(ctx, pattern)
	s.logger.InfoContext(ctx, "cache purged", "pattern", pattern, "removed", removed)
	return removed
}

func (s *SportDataService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resource describes one cache-aside read.
type resource[T any] struct {
	key   string
	ttl   time.Duration
	code  ErrorCode
	fetch func(ctx context.Context) (any, error)
	shape func(raw any) T
	// skip reports results that are returned but not written to the cache.
	skip func(T) bool
}

func load[T any](ctx context.Context, s *SportDataService, r resource[T]) (T, error) {
	var zero T

	if cached, ok := s.store.Get(ctx, r.key); ok {
		var out T
		err := sonic.Unmarshal(cached, &out)
		if err == nil {
			s.logger.DebugContext(ctx, "cache hit", "key", r.key)
			return out, nil
		}
		s.logger.WarnContext(ctx, "cached value is unreadable, refetching", "key", r.key, "error", err)
	}

	// Concurrent misses on one key share the fetch. The shared call must not
	// die with whichever request started it.
	shared := context.WithoutCancel(ctx)
	value, _, err := s.flight.Do(r.key, func() (any, error) {
		raw, err := r.fetch(shared)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", r.key, err)
		}

		shaped, err := shape(r.shape, raw)
		if err != nil {
			return nil, fmt.Errorf("transform %s: %w", r.key, err)
		}

		if r.skip != nil && r.skip(shaped) {
			return shaped, nil
		}
		s.write(shared, r.key, shaped, r.ttl)
		return shaped, nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "resource load failed", "key", r.key, "code", r.code, "error", err)
		return zero, newError(r.code, err)
	}

	out, ok := value.(T)
	if !ok {
		return zero, newError(r.code, crerr.Wrapf(ErrTransform, "unexpected %T for %s", value, r.key))
	}
	s.logger.DebugContext(ctx, "cache miss filled", "key", r.key)
	return out, nil
}

func (s *SportDataService) write(ctx context.Context, key string, value any, ttl time.Duration) {
	encoded, err := sonic.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "encode cache value failed", "key", key, "error", err)
		return
	}
	s.store.Set(ctx, key, encoded, ttl)
}

// shape runs a transformer and turns a panic into ErrTransform.
func shape[T any](fn func(any) T, raw any) (out T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = crerr.Wrapf(ErrTransform, "%v", recovered)
		}
	}()
	return fn(raw), nil
}
