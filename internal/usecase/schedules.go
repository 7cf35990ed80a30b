package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
	"go.opentelemetry.io/otel/attribute"
)

func (s *SportDataService) GetSchedulesBySeason(ctx context.Context, seasonID int64) (out []football.ScheduleStage, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetSchedulesBySeason", attribute.Int64("season_id", seasonID))
	defer func() { endSpan(span, err) }()

	if seasonID <= 0 {
		return nil, MissingParameter("seasonId")
	}
	return s.loadSchedules(ctx, cache.SchedulesBySeasonKey(seasonID), func(ctx context.Context) (any, error) {
		return s.provider.FetchSchedulesBySeason(ctx, seasonID)
	})
}

func (s *SportDataService) GetSchedulesByTeam(ctx context.Context, teamID int64) (out []football.ScheduleStage, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetSchedulesByTeam", attribute.Int64("team_id", teamID))
	defer func() { endSpan(span, err) }()

	if teamID <= 0 {
		return nil, MissingParameter("teamId")
	}
	return s.loadSchedules(ctx, cache.SchedulesByTeamKey(teamID), func(ctx context.Context) (any, error) {
		return s.provider.FetchSchedulesByTeam(ctx, teamID)
	})
}

func (s *SportDataService) GetSchedulesBySeasonAndTeam(ctx context.Context, seasonID, teamID int64) (out []football.ScheduleStage, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetSchedulesBySeasonAndTeam",
		attribute.Int64("season_id", seasonID), attribute.Int64("team_id", teamID))
	defer func() { endSpan(span, err) }()

	if seasonID <= 0 {
		return nil, MissingParameter("seasonId")
	}
	if teamID <= 0 {
		return nil, MissingParameter("teamId")
	}
	return s.loadSchedules(ctx, cache.SchedulesBySeasonTeamKey(seasonID, teamID), func(ctx context.Context) (any, error) {
		return s.provider.FetchSchedulesBySeasonAndTeam(ctx, seasonID, teamID)
	})
}

// GetSchedulesByLeague resolves the league's current season first and then
// returns that season's schedule. It fails with CodeNoCurrentSeason when
// the league has none.
func (s *SportDataService) GetSchedulesByLeague(ctx context.Context, leagueID int64) (out []football.ScheduleStage, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetSchedulesByLeague", attribute.Int64("league_id", leagueID))
	defer func() { endSpan(span, err) }()

	if leagueID <= 0 {
		return nil, MissingParameter("leagueId")
	}

	return s.loadSchedules(ctx, cache.SchedulesByLeagueKey(leagueID), func(ctx context.Context) (any, error) {
		seasonID, err := s.currentSeasonID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return s.provider.FetchSchedulesBySeason(ctx, seasonID)
	})
}

// currentSeasonID is cached on its own so a schedule miss does not pay for
// the league lookup every time. Leagues without a season are not cached.
func (s *SportDataService) currentSeasonID(ctx context.Context, leagueID int64) (int64, error) {
	seasonID, err := load(ctx, s, resource[int64]{
		key:  cache.LeagueCurrentSeasonKey(leagueID),
		ttl:  s.ttl.Leagues,
		code: CodeSchedulesUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchLeagueWithCurrentSeason(ctx, leagueID)
		},
		shape: transform.CurrentSeasonID,
		skip:  func(id int64) bool { return id <= 0 },
	})
	if err != nil {
		return 0, err
	}
	if seasonID <= 0 {
		return 0, newError(CodeNoCurrentSeason, crerr.Wrapf(ErrNotFound, "league %d has no current season", leagueID))
	}
	return seasonID, nil
}

func (s *SportDataService) loadSchedules(ctx context.Context, key string, fetch func(context.Context) (any, error)) ([]football.ScheduleStage, error) {
	stages, err := load(ctx, s, resource[[]football.ScheduleStage]{
		key:   key,
		ttl:   s.ttl.Schedules,
		code:  CodeSchedulesUnavailable,
		fetch: fetch,
		shape: transform.Schedules,
	})
	if err != nil {
		// A domain error raised inside the fetch keeps its own code.
		var inner *Error
		if crerr.As(crerr.UnwrapOnce(err), &inner) {
			return nil, inner
		}
		return nil, err
	}
	return stages, nil
}
