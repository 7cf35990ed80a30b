package usecase

import (
	"context"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
	"go.opentelemetry.io/otel/attribute"
)

// GetStandingsByLeague returns the league table. A seasonID of 0 reads the
// league's live table for the current season.
func (s *SportDataService) GetStandingsByLeague(ctx context.Context, leagueID, seasonID int64) (out []football.Standing, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetStandingsByLeague",
		attribute.Int64("league_id", leagueID), attribute.Int64("season_id", seasonID))
	defer func() { endSpan(span, err) }()

	if leagueID <= 0 {
		return nil, MissingParameter("leagueId")
	}
	if seasonID < 0 {
		return nil, InvalidParameter("season", seasonID)
	}

	return load(ctx, s, resource[[]football.Standing]{
		key:  cache.StandingsByLeagueKey(leagueID, seasonID),
		ttl:  s.ttl.Standings,
		code: CodeStandingsUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchStandings(ctx, leagueID, seasonID)
		},
		shape: transform.Standings,
	})
}
