package cache

import (
	"strconv"
	"strings"
)

const (
	currentSeasonToken = "current"
	upcomingToken      = "upcoming"
)

func LivescoresKey(date string) string {
	return join("livescores", date)
}

func FixturesByLeagueKey(leagueID, seasonID int64) string {
	return join("fixtures", "league", id(leagueID), season(seasonID))
}

func FixturesByTeamKey(teamID int64, date string) string {
	if strings.TrimSpace(date) == "" {
		date = upcomingToken
	}
	return join("fixtures", "team", id(teamID), date)
}

func FixturesByDateKey(date string) string {
	return join("fixtures", "date", date)
}

func StandingsByLeagueKey(leagueID, seasonID int64) string {
	return join("standings", "league", id(leagueID), season(seasonID))
}

func TeamKey(teamID int64) string {
	return join("team", id(teamID))
}

func MatchKey(matchID int64) string {
	return join("match", id(matchID))
}

func SchedulesBySeasonKey(seasonID int64) string {
	return join("schedules", "season", id(seasonID))
}

func SchedulesByTeamKey(teamID int64) string {
	return join("schedules", "team", id(teamID))
}

func SchedulesBySeasonTeamKey(seasonID, teamID int64) string {
	return join("schedules", "season", id(seasonID), "team", id(teamID))
}

func SchedulesByLeagueKey(leagueID int64) string {
	return join("schedules", "league", id(leagueID), currentSeasonToken)
}

func LeagueCurrentSeasonKey(leagueID int64) string {
	return join("league", id(leagueID), "current-season")
}

func season(seasonID int64) string {
	if seasonID <= 0 {
		return currentSeasonToken
	}
	return id(seasonID)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}
