package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportmonks-middleware/external/sportmonks"
	"github.com/riskibarqy/sportmonks-middleware/internal/config"
	"github.com/riskibarqy/sportmonks-middleware/internal/interfaces/httpapi"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/i18n"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/resilience"
	"github.com/riskibarqy/sportmonks-middleware/internal/scheduler"
	"github.com/riskibarqy/sportmonks-middleware/internal/usecase"
)

const startupPingTimeout = 3 * time.Second

// App owns every long-lived component of the process.
type App struct {
	cfg       config.Config
	logger    *logging.Logger
	store     cache.Store
	service   *usecase.SportDataService
	scheduler *scheduler.Scheduler
	server    *http.Server
}

// New builds the cache, provider client, service, prefetch scheduler and
// HTTP server. An unreachable Redis is logged, not fatal: reads fall
// through to the provider until it comes back.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store := newStore(ctx, cfg, logger)

	client := sportmonks.NewClient(sportmonks.ClientConfig{
		BaseURL:  cfg.SportMonksBaseURL,
		Token:    cfg.SportMonksToken,
		Timeout:  cfg.SportMonksTimeout,
		MaxPages: cfg.SportMonksMaxPages,
		Logger:   logger.Component("sportmonks"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportMonksCircuitEnabled,
			FailureThreshold: cfg.SportMonksCircuitFailureCount,
			OpenTimeout:      cfg.SportMonksCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportMonksCircuitHalfOpenMaxReq,
		},
	})

	service := usecase.NewSportDataService(store, client, usecase.CacheTTLs{
		Livescores: cfg.CacheTTLLivescores,
		Fixtures:   cfg.CacheTTLFixtures,
		Standings:  cfg.CacheTTLStandings,
		Teams:      cfg.CacheTTLTeams,
		Schedules:  cfg.CacheTTLSchedules,
		Leagues:    cfg.CacheTTLLeagues,
	}, logger.Component("service"))

	var jobs *scheduler.Scheduler
	if cfg.PrefetchEnabled {
		var err error
		jobs, err = scheduler.New(service, scheduler.Config{
			LeagueIDs:       cfg.PrefetchLeagueIDs,
			Delay:           cfg.PrefetchDelay,
			LivescoresCron:  cfg.PrefetchLivescoresCron,
			FixturesCron:    cfg.PrefetchFixturesCron,
			StandingsCron:   cfg.PrefetchStandingsCron,
			MaintenanceCron: cfg.PrefetchMaintenanceCron,
			Location:        cfg.PrefetchLocation,
			PurgePatterns:   cfg.CachePurgePatterns,
		}, logger.Component("scheduler"))
		if err != nil {
			_ = store.Close()
			return nil, crerr.Wrap(err, "build prefetch scheduler")
		}
	}

	messages, err := i18n.New(cfg.Locale)
	if err != nil {
		_ = store.Close()
		return nil, crerr.Wrap(err, "load messages")
	}

	handler := httpapi.NewHandler(service, store, messages, logger.Component("http"), httpapi.HandlerConfig{
		RoutePrefix: cfg.RoutePrefix,
		Version:     cfg.ServiceVersion,
	})
	limiter := httpapi.NewRateLimiter(
		cfg.RateLimitWindow,
		cfg.RateLimitMaxRequests,
		httpapi.WithTrustedProxyHeaders(cfg.RateLimitTrustProxy),
	)
	router := httpapi.NewRouter(handler, logger.Component("http"), httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Limiter:            limiter,
	})

	return &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		service:   service,
		scheduler: jobs,
		server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
	}, nil
}

func newStore(ctx context.Context, cfg config.Config, logger *logging.Logger) cache.Store {
	cacheLogger := logger.Component("cache")
	if cfg.CacheDriver == config.CacheDriverMemory {
		cacheLogger.Info("using in-memory cache")
		return cache.NewMemoryStore(cacheLogger)
	}

	redisCfg := cache.RedisConfig{
		Host:        cfg.RedisHost,
		Port:        cfg.RedisPort,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: cfg.RedisDialTimeout,
	}
	store := cache.NewRedisStore(redisCfg, cacheLogger)

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		cacheLogger.Warn("redis unreachable at startup, serving uncached until it recovers", "error", err)
	} else {
		cacheLogger.Info("redis connected", "addr", redisCfg.Addr())
	}
	return store
}

// Server exposes the HTTP server so the caller owns ListenAndServe.
func (a *App) Server() *http.Server {
	return a.server
}

// StartBackground starts the prefetch jobs and, when configured, a one-off
// warm-up that does not block serving.
func (a *App) StartBackground(ctx context.Context) {
	if a.scheduler == nil {
		a.logger.Info("prefetch scheduler disabled")
		return
	}
	a.scheduler.Start()
	if a.cfg.PrefetchWarmOnStart {
		go a.scheduler.WarmUp(ctx)
	}
}

// Shutdown drains HTTP, stops the jobs and closes the cache, in that order.
func (a *App) Shutdown(ctx context.Context) error {
	var errs error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "shutdown http server"))
	}
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop scheduler"))
		}
	}
	if err := a.store.Close(); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "close cache"))
	}
	return errs
}
