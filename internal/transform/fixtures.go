package transform

import (
	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
)

const (
	scoreCurrent  = "current"
	scoreHalfTime = "1st_half"
)

// Livescores maps in-play fixtures. Round is left null.
func Livescores(raw any) []football.Fixture {
	items := list(raw)
	out := make([]football.Fixture, 0, len(items))
	for _, item := range items {
		fixture := object(item)
		if fixture == nil {
			continue
		}
		mapped := mapFixture(fixture)
		mapped.Round = nil
		out = append(out, mapped)
	}
	return out
}

// Fixtures maps scheduled or finished fixtures including their round name.
func Fixtures(raw any) []football.Fixture {
	items := list(raw)
	out := make([]football.Fixture, 0, len(items))
	for _, item := range items {
		fixture := object(item)
		if fixture == nil {
			continue
		}
		out = append(out, mapFixture(fixture))
	}
	return out
}

func mapFixture(src map[string]any) football.Fixture {
	home, away := participants(src)
	scoreHome, scoreAway := scoreFor(src, scoreCurrent, true)
	return football.Fixture{
		ID:        int64At(src, "id"),
		League:    leagueRef(object(src["league"])),
		HomeTeam:  teamRef(home),
		AwayTeam:  teamRef(away),
		Score:     football.Score{Home: scoreHome, Away: scoreAway},
		Status:    status(src),
		StartTime: stringAt(src, "starting_at"),
		Venue:     stringAt(src, "venue", "name"),
		Round:     stringAt(src, "round", "name"),
	}
}

func leagueRef(src map[string]any) football.LeagueRef {
	return football.LeagueRef{
		ID:   int64At(src, "id"),
		Name: stringAt(src, "name"),
		Logo: stringAt(src, "image_path"),
	}
}

func teamRef(src map[string]any) football.TeamRef {
	return football.TeamRef{
		ID:        int64At(src, "id"),
		Name:      stringAt(src, "name"),
		ShortCode: stringAt(src, "short_code"),
		Logo:      stringAt(src, "image_path"),
	}
}

// participants resolves home and away by meta.location and falls back to
// list order when the location is not included.
func participants(src map[string]any) (home, away map[string]any) {
	items := objects(src["participants"])
	for _, item := range items {
		switch lower(stringAt(item, "meta", "location")) {
		case "home":
			if home == nil {
				home = item
			}
		case "away":
			if away == nil {
				away = item
			}
		}
	}
	if home == nil && len(items) > 0 {
		home = items[0]
	}
	if away == nil && len(items) > 1 {
		away = items[1]
	}
	return home, away
}

// scoreFor reads goals for one score description keyed by score.participant.
// When positional is set and no keyed entry exists the first two scores are
// read as home and away.
func scoreFor(src map[string]any, description string, positional bool) (home, away int) {
	items := objects(src["scores"])

	found := false
	for _, item := range items {
		if lower(stringAt(item, "description")) != description {
			continue
		}
		goals, ok := asInt64(lookup(item, "score", "goals"))
		if !ok {
			continue
		}
		switch lower(stringAt(item, "score", "participant")) {
		case "home":
			home = int(goals)
			found = true
		case "away":
			away = int(goals)
			found = true
		}
	}
	if found || !positional {
		return home, away
	}

	if len(items) > 0 {
		if goals, ok := asInt64(lookup(items[0], "score", "goals")); ok {
			home = int(goals)
		}
	}
	if len(items) > 1 {
		if goals, ok := asInt64(lookup(items[1], "score", "goals")); ok {
			away = int(goals)
		}
	}
	return home, away
}

func status(src map[string]any) football.Status {
	state := object(src["state"])
	minute := intAt(state, "minute")
	if minute == nil {
		minute = intAt(src, "minute")
	}
	if minute != nil && *minute == 0 {
		minute = nil
	}
	return football.Status{
		Name:   firstString(stringAt(state, "state"), stringAt(state, "name")),
		Short:  stringAt(state, "short_name"),
		Minute: minute,
	}
}
