package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
	"go.opentelemetry.io/otel/attribute"
)

// GroupedFixtures is the fixtures-by-date answer: one bucket per league.
type GroupedFixtures struct {
	Leagues       []football.LeagueFixtures `json:"leagues"`
	TotalFixtures int                       `json:"totalFixtures"`
}

// GetFixturesByLeague returns fixtures from today through the next 90 days.
// A seasonID of 0 means the current season.
func (s *SportDataService) GetFixturesByLeague(ctx context.Context, leagueID, seasonID int64) (out []football.Fixture, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetFixturesByLeague",
		attribute.Int64("league_id", leagueID), attribute.Int64("season_id", seasonID))
	defer func() { endSpan(span, err) }()

	if leagueID <= 0 {
		return nil, MissingParameter("leagueId")
	}
	if seasonID < 0 {
		return nil, InvalidParameter("season", seasonID)
	}

	from := s.today()
	to := from.Add(fixturesWindow)
	return load(ctx, s, resource[[]football.Fixture]{
		key:  cache.FixturesByLeagueKey(leagueID, seasonID),
		ttl:  s.ttl.Fixtures,
		code: CodeFixturesUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchFixturesByLeague(ctx, leagueID, seasonID, from, to)
		},
		shape: transform.Fixtures,
	})
}

// GetTeamFixtures returns a team's fixtures on date, or the next 30 days of
// fixtures when date is empty.
func (s *SportDataService) GetTeamFixtures(ctx context.Context, teamID int64, date string) (out []football.Fixture, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetTeamFixtures",
		attribute.Int64("team_id", teamID), attribute.String("date", date))
	defer func() { endSpan(span, err) }()

	if teamID <= 0 {
		return nil, MissingParameter("teamId")
	}

	date = strings.TrimSpace(date)
	from := s.today()
	to := from.Add(teamFixturesWindow)
	if date != "" {
		day, err := s.parseDate("date", date)
		if err != nil {
			return nil, err
		}
		from, to = day, day
	}

	return load(ctx, s, resource[[]football.Fixture]{
		key:  cache.FixturesByTeamKey(teamID, date),
		ttl:  s.ttl.Fixtures,
		code: CodeTeamFixturesUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchTeamFixtures(ctx, teamID, from, to)
		},
		shape: transform.Fixtures,
	})
}

// GetFixturesByDate returns the fixtures of one day grouped by league. The
// grouped form is what gets cached.
func (s *SportDataService) GetFixturesByDate(ctx context.Context, date string) (out GroupedFixtures, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetFixturesByDate", attribute.String("date", date))
	defer func() { endSpan(span, err) }()

	date = strings.TrimSpace(date)
	if date == "" {
		return GroupedFixtures{}, MissingParameter("date")
	}
	day, err := s.parseDate("date", date)
	if err != nil {
		return GroupedFixtures{}, err
	}
	formatted := day.Format(dateLayout)

	return load(ctx, s, resource[GroupedFixtures]{
		key:  cache.FixturesByDateKey(formatted),
		ttl:  s.ttl.Fixtures,
		code: CodeFixturesUnavailable,
		fetch: func(ctx context.Context) (any, error) {
			return s.provider.FetchFixturesByDate(ctx, formatted)
		},
		shape: func(raw any) GroupedFixtures {
			fixtures := transform.Fixtures(raw)
			return GroupedFixtures{
				Leagues:       GroupFixturesByLeague(fixtures),
				TotalFixtures: len(fixtures),
			}
		},
	})
}
