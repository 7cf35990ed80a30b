package usecase

import (
	"context"
	"time"
)

// SportsDataProvider is the upstream sports data API. Every method issues
// one logical GET and returns the decoded "data" member as a generic JSON
// tree. Failures are marked with ErrUpstream.
type SportsDataProvider interface {
	FetchLivescores(ctx context.Context) (any, error)
	FetchFixturesByDate(ctx context.Context, date string) (any, error)
	FetchFixturesByLeague(ctx context.Context, leagueID, seasonID int64, from, to time.Time) (any, error)
	FetchTeamFixtures(ctx context.Context, teamID int64, from, to time.Time) (any, error)
	FetchStandings(ctx context.Context, leagueID, seasonID int64) (any, error)
	FetchTeam(ctx context.Context, teamID int64) (any, error)
	FetchMatch(ctx context.Context, matchID int64) (any, error)
	FetchSchedulesBySeason(ctx context.Context, seasonID int64) (any, error)
	FetchSchedulesByTeam(ctx context.Context, teamID int64) (any, error)
	FetchSchedulesBySeasonAndTeam(ctx context.Context, seasonID, teamID int64) (any, error)
	FetchLeagueWithCurrentSeason(ctx context.Context, leagueID int64) (any, error)
}
