package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	JobLivescores  = "prefetch-livescores"
	JobFixtures    = "prefetch-fixtures"
	JobStandings   = "prefetch-standings"
	JobMaintenance = "cache-maintenance"
)

// Prefetcher is the slice of the resource service the jobs drive.
type Prefetcher interface {
	GetLivescores(ctx context.Context, date string) ([]football.Fixture, error)
	GetFixturesByLeague(ctx context.Context, leagueID, seasonID int64) ([]football.Fixture, error)
	GetStandingsByLeague(ctx context.Context, leagueID, seasonID int64) ([]football.Standing, error)
	PurgeByPattern(ctx context.Context, pattern string) int
}

type Config struct {
	LeagueIDs       []int64
	Delay           time.Duration
	LivescoresCron  string
	FixturesCron    string
	StandingsCron   string
	MaintenanceCron string
	Location        *time.Location
	PurgePatterns   []string
	// Seconds makes every expression carry a leading seconds field.
	Seconds bool
}

func DefaultConfig() Config {
	return Config{
		LeagueIDs:       []int64{8, 564, 384, 82, 301, 2, 5},
		Delay:           2 * time.Second,
		LivescoresCron:  "* * * * *",
		FixturesCron:    "*/30 * * * *",
		StandingsCron:   "0 */6 * * *",
		MaintenanceCron: "0 0 * * *",
		Location:        time.UTC,
	}
}

// Scheduler keeps the hottest cache keys warm. Every job runs in singleton
// mode: a tick that fires while the previous run is still going is dropped.
type Scheduler struct {
	cron    gocron.Scheduler
	service Prefetcher
	cfg     Config
	logger  *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	warming sync.WaitGroup
}

func New(service Prefetcher, cfg Config, logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	cfg = withDefaults(cfg)

	cron, err := gocron.NewScheduler(
		gocron.WithLocation(cfg.Location),
		gocron.WithLogger(logger),
		gocron.WithGlobalJobOptions(gocron.WithSingletonMode(gocron.LimitModeReschedule)),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:    cron,
		service: service,
		cfg:     cfg,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}

	jobs := []struct {
		name string
		expr string
		run  func(context.Context) error
	}{
		{JobLivescores, cfg.LivescoresCron, s.PrefetchLivescores},
		{JobFixtures, cfg.FixturesCron, s.PrefetchFixtures},
		{JobStandings, cfg.StandingsCron, s.PrefetchStandings},
		{JobMaintenance, cfg.MaintenanceCron, s.Maintenance},
	}
	for _, job := range jobs {
		run := job.run
		if _, err := cron.NewJob(
			gocron.CronJob(job.expr, cfg.Seconds),
			gocron.NewTask(func() { _ = run(s.ctx) }),
			gocron.WithName(job.name),
		); err != nil {
			cancel()
			_ = cron.Shutdown()
			return nil, fmt.Errorf("register job %s (%q): %w", job.name, job.expr, err)
		}
	}

	return s, nil
}

func withDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.Seconds {
		defaults.LivescoresCron = "0 " + defaults.LivescoresCron
		defaults.FixturesCron = "0 " + defaults.FixturesCron
		defaults.StandingsCron = "0 " + defaults.StandingsCron
		defaults.MaintenanceCron = "0 " + defaults.MaintenanceCron
	}
	if cfg.LeagueIDs == nil {
		cfg.LeagueIDs = defaults.LeagueIDs
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if strings.TrimSpace(cfg.LivescoresCron) == "" {
		cfg.LivescoresCron = defaults.LivescoresCron
	}
	if strings.TrimSpace(cfg.FixturesCron) == "" {
		cfg.FixturesCron = defaults.FixturesCron
	}
	if strings.TrimSpace(cfg.StandingsCron) == "" {
		cfg.StandingsCron = defaults.StandingsCron
	}
	if strings.TrimSpace(cfg.MaintenanceCron) == "" {
		cfg.MaintenanceCron = defaults.MaintenanceCron
	}
	if cfg.Location == nil {
		cfg.Location = defaults.Location
	}
	return cfg
}

// JobNames lists the registered jobs.
func (s *Scheduler) JobNames() []string {
	jobs := s.cron.Jobs()
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Name())
	}
	return out
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("prefetch scheduler started",
		"leagues", s.cfg.LeagueIDs,
		"livescores_cron", s.cfg.LivescoresCron,
		"fixtures_cron", s.cfg.FixturesCron,
		"standings_cron", s.cfg.StandingsCron,
		"maintenance_cron", s.cfg.MaintenanceCron,
	)
}

// Stop cancels running prefetch loops, including a warm-up, and waits for
// them to return. Later calls are no-ops.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	err := s.cron.Shutdown()
	s.warming.Wait()
	if err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	s.logger.Info("prefetch scheduler stopped")
	return nil
}

// WarmUp runs the three prefetches concurrently once, typically at boot. It
// returns early when ctx is cancelled or the scheduler stops.
func (s *Scheduler) WarmUp(ctx context.Context) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.warming.Add(1)
	s.mu.Unlock()
	defer s.warming.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	started := time.Now()

	var wg conc.WaitGroup
	wg.Go(func() { _ = s.PrefetchLivescores(ctx) })
	wg.Go(func() { _ = s.PrefetchFixtures(ctx) })
	wg.Go(func() { _ = s.PrefetchStandings(ctx) })
	wg.Wait()

	if err := ctx.Err(); err != nil {
		s.logger.WarnContext(ctx, "cache warm-up interrupted", "duration", time.Since(started), "error", err)
		return
	}
	s.logger.InfoContext(ctx, "cache warm-up finished", "duration", time.Since(started))
}

func (s *Scheduler) PrefetchLivescores(ctx context.Context) error {
	matches, err := s.service.GetLivescores(ctx, "today")
	if err != nil {
		s.logger.ErrorContext(ctx, "prefetch livescores failed", "job", JobLivescores, "error", err)
		return err
	}
	s.logger.InfoContext(ctx, "prefetched livescores", "job", JobLivescores, "matches", len(matches))
	return nil
}

func (s *Scheduler) PrefetchFixtures(ctx context.Context) error {
	return s.eachLeague(ctx, JobFixtures, func(ctx context.Context, leagueID int64) error {
		_, err := s.service.GetFixturesByLeague(ctx, leagueID, 0)
		return err
	})
}

func (s *Scheduler) PrefetchStandings(ctx context.Context) error {
	return s.eachLeague(ctx, JobStandings, func(ctx context.Context, leagueID int64) error {
		_, err := s.service.GetStandingsByLeague(ctx, leagueID, 0)
		return err
	})
}

// Maintenance purges the configured key patterns. With no patterns it only
// records that it ran.
func (s *Scheduler) Maintenance(ctx context.Context) error {
	removed := 0
	for _, pattern := range s.cfg.PurgePatterns {
		removed += s.service.PurgeByPattern(ctx, pattern)
	}
	s.logger.InfoContext(ctx, "cache maintenance finished", "job", JobMaintenance, "patterns", len(s.cfg.PurgePatterns), "removed", removed)
	return nil
}

// eachLeague walks the popular leagues one at a time with the configured
// pause between calls. A league failure is logged and the walk continues;
// only cancellation stops it early.
func (s *Scheduler) eachLeague(ctx context.Context, job string, fn func(context.Context, int64) error) error {
	started := time.Now()
	failed := 0
	for i, leagueID := range s.cfg.LeagueIDs {
		if i > 0 {
			if err := sleep(ctx, s.cfg.Delay); err != nil {
				s.logger.WarnContext(ctx, "prefetch interrupted", "job", job, "done", i, "total", len(s.cfg.LeagueIDs))
				return err
			}
		}
		if err := fn(ctx, leagueID); err != nil {
			failed++
			s.logger.ErrorContext(ctx, "prefetch league failed", "job", job, "league_id", leagueID, "error", err)
			continue
		}
		s.logger.DebugContext(ctx, "prefetched league", "job", job, "league_id", leagueID)
	}

	s.logger.InfoContext(ctx, "prefetch finished",
		"job", job,
		"leagues", len(s.cfg.LeagueIDs),
		"failed", failed,
		"duration", time.Since(started),
	)
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
