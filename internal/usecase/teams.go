package usecase

import (
	"context"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
	"go.opentelemetry.io/otel/attribute"
)

// GetTeam returns a team profile. A provider answer without a team object
// yields nil and is not cached.
func (s *SportDataService) GetTeam(ctx context.Context, teamID int64) (out *football.Team, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetTeam", attribute.Int64("team_id", teamID))
	defer func() { endSpan(span, err) }()

	if teamID <= 0 {
		return nil, MissingParameter("teamId")
	}

	return load(ctx, s, resource[*football.Team]{
		key:  cache.TeamKey(teamID),
		ttl:  s.ttl.Teams,
		code: CodeTeamUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchTeam(ctx, teamID)
		},
		shape: transform.Team,
		skip:  func(team *football.Team) bool { return team == nil },
	})
}

// GetMatch returns one fixture with events and statistics. Match detail
// changes while the match is live, so it shares the livescores TTL.
func (s *SportDataService) GetMatch(ctx context.Context, matchID int64) (out *football.MatchDetail, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetMatch", attribute.Int64("match_id", matchID))
	defer func() { endSpan(span, err) }()

	if matchID <= 0 {
		return nil, MissingParameter("matchId")
	}

	return load(ctx, s, resource[*football.MatchDetail]{
		key:  cache.MatchKey(matchID),
		ttl:  s.ttl.Livescores,
		code: CodeMatchUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchMatch(ctx, matchID)
		},
		shape: transform.MatchDetail,
		skip:  func(match *football.MatchDetail) bool { return match == nil },
	})
}
