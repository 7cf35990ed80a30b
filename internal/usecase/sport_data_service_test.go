package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	usecasemock "github.com/riskibarqy/sportmonks-middleware/internal/mocks/usecase"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*SportDataService, *usecasemock.SportsDataProvider, *cache.MemoryStore, *testClock) {
	t.Helper()

	clock := &testClock{now: fixedNow}
	store := cache.NewMemoryStore(logging.NewNop()).WithClock(clock.Now)
	provider := usecasemock.NewSportsDataProvider(t)
	service := NewSportDataService(store, provider, DefaultCacheTTLs(), logging.NewNop(), WithClock(clock.Now))
	return service, provider, store, clock
}

func payload(t *testing.T, raw string) any {
	t.Helper()
	var out any
	if err := sonic.UnmarshalString(raw, &out); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return out
}

func upstreamErr(msg string) error {
	return crerr.Mark(errors.New(msg), ErrUpstream)
}

const standingsPayload = `[
	{"position": 1, "points": 19, "participant": {"id": 9, "name": "Manchester City"},
	 "details": [{"type_id": 129, "value": 8}, {"type_id": 130, "value": 6}, {"type_id": 131, "value": 1}, {"type_id": 132, "value": 1}]},
	{"position": 2, "points": 17, "participant": {"id": 8, "name": "Liverpool"}, "details": []}
]`

func TestGetStandingsByLeague_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchStandings", mock.Anything, int64(8), int64(0)).
		Return(payload(t, standingsPayload), nil).
		Once()

	first, err := service.GetStandingsByLeague(ctx, 8, 0)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := service.GetStandingsByLeague(ctx, 8, 0)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("unexpected table sizes: first=%d second=%d", len(first), len(second))
	}
	if first[0].Stats.Played != 8 || second[0].Stats.Played != 8 {
		t.Fatalf("unexpected played: first=%d second=%d", first[0].Stats.Played, second[0].Stats.Played)
	}
	if *second[0].Team.Name != "Manchester City" {
		t.Fatalf("unexpected cached team name: %s", *second[0].Team.Name)
	}
	if _, ok := store.Get(ctx, "standings:league:8:current"); !ok {
		t.Fatalf("expected standings to be cached under the current-season key")
	}
}

func TestGetStandingsByLeague_RefetchesAfterTTL(t *testing.T) {
	t.Parallel()

	service, provider, _, clock := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchStandings", mock.Anything, int64(8), int64(23614)).
		Return(payload(t, standingsPayload), nil).
		Twice()

	if _, err := service.GetStandingsByLeague(ctx, 8, 23614); err != nil {
		t.Fatalf("first load: %v", err)
	}
	clock.Advance(DefaultCacheTTLs().Standings - time.Second)
	if _, err := service.GetStandingsByLeague(ctx, 8, 23614); err != nil {
		t.Fatalf("load before expiry: %v", err)
	}
	clock.Advance(2 * time.Second)
	if _, err := service.GetStandingsByLeague(ctx, 8, 23614); err != nil {
		t.Fatalf("load after expiry: %v", err)
	}
}

func TestGetStandingsByLeague_FailureIsNotCached(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchStandings", mock.Anything, int64(8), int64(0)).
		Return(nil, upstreamErr("sportmonks status 503")).
		Once()
	provider.
		On("FetchStandings", mock.Anything, int64(8), int64(0)).
		Return(payload(t, standingsPayload), nil).
		Once()

	_, err := service.GetStandingsByLeague(ctx, 8, 0)
	if err == nil {
		t.Fatalf("expected upstream failure")
	}
	if CodeOf(err) != CodeStandingsUnavailable {
		t.Fatalf("unexpected code: %s", CodeOf(err))
	}
	if !IsUpstream(err) {
		t.Fatalf("expected upstream marker to survive wrapping: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected nothing cached after failure, got %d entries", store.Len())
	}

	got, err := service.GetStandingsByLeague(ctx, 8, 0)
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected table size: %d", len(got))
	}
}

func TestSportDataService_RejectsMissingIDsWithoutCallingProvider(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		call  func() error
		param string
	}{
		{"standings", func() error { _, err := service.GetStandingsByLeague(ctx, 0, 0); return err }, "leagueId"},
		{"fixtures", func() error { _, err := service.GetFixturesByLeague(ctx, -1, 0); return err }, "leagueId"},
		{"team fixtures", func() error { _, err := service.GetTeamFixtures(ctx, 0, ""); return err }, "teamId"},
		{"team", func() error { _, err := service.GetTeam(ctx, 0); return err }, "teamId"},
		{"match", func() error { _, err := service.GetMatch(ctx, 0); return err }, "matchId"},
		{"schedules season", func() error { _, err := service.GetSchedulesBySeason(ctx, 0); return err }, "seasonId"},
		{"schedules team", func() error { _, err := service.GetSchedulesByTeam(ctx, 0); return err }, "teamId"},
		{"schedules season team", func() error { _, err := service.GetSchedulesBySeasonAndTeam(ctx, 1, 0); return err }, "teamId"},
		{"schedules league", func() error { _, err := service.GetSchedulesByLeague(ctx, 0); return err }, "leagueId"},
		{"fixtures by date", func() error { _, err := service.GetFixturesByDate(ctx, " "); return err }, "date"},
	}

	for _, tc := range cases {
		err := tc.call()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if CodeOf(err) != CodeMissingParameter {
			t.Fatalf("%s: unexpected code %s", tc.name, CodeOf(err))
		}
		if ParamOf(err) != tc.param {
			t.Fatalf("%s: unexpected param %q want %q", tc.name, ParamOf(err), tc.param)
		}
		if !IsInvalidInput(err) {
			t.Fatalf("%s: expected invalid input marker", tc.name)
		}
	}
}

func TestGetLivescores_InvalidDate(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestService(t)

	_, err := service.GetLivescores(context.Background(), "2026-13-40")
	if CodeOf(err) != CodeInvalidParameter || ParamOf(err) != "date" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetLivescores_TodayUsesLiveFeed(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchLivescores", mock.Anything).
		Return(payload(t, `[{"id": 1, "participants": [], "scores": []}]`), nil).
		Once()

	got, err := service.GetLivescores(ctx, "")
	if err != nil {
		t.Fatalf("get livescores: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected matches: %d", len(got))
	}
	if _, ok := store.Get(ctx, "livescores:today"); !ok {
		t.Fatalf("expected livescores:today to be cached")
	}
}

func TestGetLivescores_OtherDayUsesFixturesFeed(t *testing.T) {
	t.Parallel()

	service, provider, _, _ := newTestService(t)

	provider.
		On("FetchFixturesByDate", mock.Anything, "2026-10-17").
		Return(payload(t, `[]`), nil).
		Once()

	got, err := service.GetLivescores(context.Background(), "2026-10-17")
	if err != nil {
		t.Fatalf("get livescores: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", got)
	}
}

func TestGetFixturesByLeague_UsesNinetyDayWindow(t *testing.T) {
	t.Parallel()

	service, provider, _, _ := newTestService(t)
	from := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	provider.
		On("FetchFixturesByLeague", mock.Anything, int64(8), int64(0), from, from.Add(90*24*time.Hour)).
		Return(payload(t, `[]`), nil).
		Once()

	if _, err := service.GetFixturesByLeague(context.Background(), 8, 0); err != nil {
		t.Fatalf("get fixtures: %v", err)
	}
}

func TestGetTeamFixtures_DateNarrowsWindowToOneDay(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

	provider.
		On("FetchTeamFixtures", mock.Anything, int64(14), day, day).
		Return(payload(t, `[]`), nil).
		Once()

	if _, err := service.GetTeamFixtures(ctx, 14, "2026-11-01"); err != nil {
		t.Fatalf("get team fixtures: %v", err)
	}
	if _, ok := store.Get(ctx, "fixtures:team:14:2026-11-01"); !ok {
		t.Fatalf("expected dated team fixtures to be cached")
	}
}

const fixturesByDatePayload = `[
	{"id": 3, "starting_at": "2026-10-18 19:00:00", "league": {"id": 8, "name": "Premier League"}},
	{"id": 1, "starting_at": "2026-10-18 14:00:00", "league": {"id": 8, "name": "Premier League"}},
	{"id": 2, "starting_at": "2026-10-18 16:00:00", "league": {"id": 564, "name": "La Liga"}},
	{"id": 4, "league": {"id": 8, "name": "Premier League"}}
]`

func TestGetFixturesByDate_GroupsByLeague(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchFixturesByDate", mock.Anything, "2026-10-18").
		Return(payload(t, fixturesByDatePayload), nil).
		Once()

	got, err := service.GetFixturesByDate(ctx, "2026-10-18")
	if err != nil {
		t.Fatalf("get fixtures by date: %v", err)
	}
	if got.TotalFixtures != 4 {
		t.Fatalf("unexpected total: %d", got.TotalFixtures)
	}
	if len(got.Leagues) != 2 {
		t.Fatalf("unexpected league buckets: %d", len(got.Leagues))
	}
	if *got.Leagues[0].League.ID != 8 || len(got.Leagues[0].Fixtures) != 3 {
		t.Fatalf("expected premier league bucket first with 3 fixtures, got %+v", got.Leagues[0].League)
	}
	order := []int64{1, 3, 4}
	for i, fixture := range got.Leagues[0].Fixtures {
		if *fixture.ID != order[i] {
			t.Fatalf("fixture %d: got id %d want %d", i, *fixture.ID, order[i])
		}
	}
	if _, ok := store.Get(ctx, "fixtures:date:2026-10-18"); !ok {
		t.Fatalf("expected grouped fixtures to be cached")
	}

	cached, err := service.GetFixturesByDate(ctx, "2026-10-18")
	if err != nil {
		t.Fatalf("cached fixtures by date: %v", err)
	}
	if cached.TotalFixtures != 4 || len(cached.Leagues) != 2 {
		t.Fatalf("unexpected cached result: %+v", cached)
	}
}

func TestGetTeam_NilResultIsNotCached(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchTeam", mock.Anything, int64(99)).
		Return(nil, nil).
		Once()

	got, err := service.GetTeam(ctx, 99)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil team, got %+v", got)
	}
	if store.Len() != 0 {
		t.Fatalf("expected nil team to stay uncached")
	}
}

func TestGetTeam_ConcurrentMissesShareOneFetch(t *testing.T) {
	t.Parallel()

	service, provider, _, _ := newTestService(t)
	release := make(chan struct{})

	provider.
		On("FetchTeam", mock.Anything, int64(14)).
		Run(func(mock.Arguments) { <-release }).
		Return(payload(t, `{"id": 14, "name": "Manchester United"}`), nil).
		Once()

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			team, err := service.GetTeam(context.Background(), 14)
			if err == nil && (team == nil || *team.Name != "Manchester United") {
				err = errors.New("unexpected team")
			}
			errs <- err
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent get team: %v", err)
		}
	}
}

func TestGetMatch_UsesLivescoreTTL(t *testing.T) {
	t.Parallel()

	service, provider, _, clock := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchMatch", mock.Anything, int64(19135003)).
		Return(payload(t, `{"id": 19135003, "participants": [], "events": [], "statistics": []}`), nil).
		Twice()

	if _, err := service.GetMatch(ctx, 19135003); err != nil {
		t.Fatalf("first load: %v", err)
	}
	clock.Advance(61 * time.Second)
	if _, err := service.GetMatch(ctx, 19135003); err != nil {
		t.Fatalf("load after livescore ttl: %v", err)
	}
}

func TestGetSchedulesByLeague_ResolvesCurrentSeason(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)
	ctx := context.Background()

	provider.
		On("FetchLeagueWithCurrentSeason", mock.Anything, int64(8)).
		Return(payload(t, `{"id": 8, "name": "Premier League", "currentseason": {"id": 23614}}`), nil).
		Once()
	provider.
		On("FetchSchedulesBySeason", mock.Anything, int64(23614)).
		Return(payload(t, `[{"id": 77, "name": "Regular Season", "season_id": 23614, "rounds": [{"id": 1, "name": "1", "fixtures": []}]}]`), nil).
		Once()

	got, err := service.GetSchedulesByLeague(ctx, 8)
	if err != nil {
		t.Fatalf("schedules by league: %v", err)
	}
	if len(got) != 1 || *got[0].Name != "Regular Season" || len(got[0].Rounds) != 1 {
		t.Fatalf("unexpected schedule: %+v", got)
	}
	if _, ok := store.Get(ctx, "league:8:current-season"); !ok {
		t.Fatalf("expected current season to be cached")
	}
	if _, ok := store.Get(ctx, "schedules:league:8:current"); !ok {
		t.Fatalf("expected league schedule to be cached")
	}
}

func TestGetSchedulesByLeague_NoCurrentSeason(t *testing.T) {
	t.Parallel()

	service, provider, store, _ := newTestService(t)

	provider.
		On("FetchLeagueWithCurrentSeason", mock.Anything, int64(1234)).
		Return(payload(t, `{"id": 1234, "name": "Dormant League"}`), nil).
		Once()

	_, err := service.GetSchedulesByLeague(context.Background(), 1234)
	if err == nil {
		t.Fatalf("expected no current season error")
	}
	if CodeOf(err) != CodeNoCurrentSeason {
		t.Fatalf("unexpected code: %s", CodeOf(err))
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not found marker: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected nothing cached, got %d entries", store.Len())
	}
}

func TestPurgeByPattern(t *testing.T) {
	t.Parallel()

	service, _, store, _ := newTestService(t)
	ctx := context.Background()
	store.Set(ctx, "livescores:today", []byte(`[]`), time.Minute)
	store.Set(ctx, "livescores:2026-10-17", []byte(`[]`), time.Minute)
	store.Set(ctx, "team:1", []byte(`{}`), time.Minute)

	if removed := service.PurgeByPattern(ctx, "livescores:*"); removed != 2 {
		t.Fatalf("unexpected removed count: %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected team entry to survive, got %d entries", store.Len())
	}
}
