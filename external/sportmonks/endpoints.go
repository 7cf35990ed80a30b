package sportmonks

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	dateLayout = "2006-01-02"

	includeLivescores = "participants;league;scores;state;venue"
	includeFixtures   = "participants;league;venue;round;state;scores"
	includeStandings  = "participant;details.type;form"
	includeTeam       = "country;venue;venue.city"
	includeMatch      = "participants;league;league.country;scores;state;venue;venue.city;events;events.player;events.participant;events.type;statistics;statistics.type;referees.referee"
	includeLeague     = "currentSeason"
)

func (c *Client) FetchLivescores(ctx context.Context) (any, error) {
	return c.getList(ctx, "/livescores", map[string]string{"include": includeLivescores})
}

func (c *Client) FetchFixturesByDate(ctx context.Context, date string) (any, error) {
	return c.getList(ctx, "/fixtures/date/"+date, map[string]string{"include": includeFixtures})
}

func (c *Client) FetchFixturesByLeague(ctx context.Context, leagueID, seasonID int64, from, to time.Time) (any, error) {
	filters := "fixtureLeagues:" + formatID(leagueID)
	if seasonID > 0 {
		filters += ";fixtureSeasons:" + formatID(seasonID)
	}
	path := fmt.Sprintf("/fixtures/between/%s/%s", from.Format(dateLayout), to.Format(dateLayout))
	return c.getList(ctx, path, map[string]string{
		"include": includeFixtures,
		"filters": filters,
	})
}

func (c *Client) FetchTeamFixtures(ctx context.Context, teamID int64, from, to time.Time) (any, error) {
	path := fmt.Sprintf("/fixtures/between/%s/%s/%d", from.Format(dateLayout), to.Format(dateLayout), teamID)
	return c.getList(ctx, path, map[string]string{"include": includeFixtures})
}

// FetchStandings reads a season table when seasonID is set and the league's
// live table otherwise.
func (c *Client) FetchStandings(ctx context.Context, leagueID, seasonID int64) (any, error) {
	path := "/standings/live/leagues/" + formatID(leagueID)
	if seasonID > 0 {
		path = "/standings/seasons/" + formatID(seasonID)
	}
	return c.getData(ctx, path, map[string]string{"include": includeStandings})
}

func (c *Client) FetchTeam(ctx context.Context, teamID int64) (any, error) {
	return c.getData(ctx, "/teams/"+formatID(teamID), map[string]string{"include": includeTeam})
}

func (c *Client) FetchMatch(ctx context.Context, matchID int64) (any, error) {
	return c.getData(ctx, "/fixtures/"+formatID(matchID), map[string]string{"include": includeMatch})
}

func (c *Client) FetchSchedulesBySeason(ctx context.Context, seasonID int64) (any, error) {
	return c.getData(ctx, "/schedules/seasons/"+formatID(seasonID), nil)
}

func (c *Client) FetchSchedulesByTeam(ctx context.Context, teamID int64) (any, error) {
	return c.getData(ctx, "/schedules/teams/"+formatID(teamID), nil)
}

func (c *Client) FetchSchedulesBySeasonAndTeam(ctx context.Context, seasonID, teamID int64) (any, error) {
	return c.getData(ctx, fmt.Sprintf("/schedules/seasons/%d/teams/%d", seasonID, teamID), nil)
}

func (c *Client) FetchLeagueWithCurrentSeason(ctx context.Context, leagueID int64) (any, error) {
	return c.getData(ctx, "/leagues/"+formatID(leagueID), map[string]string{"include": includeLeague})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
