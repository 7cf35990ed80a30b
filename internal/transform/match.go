package transform

import "github.com/riskibarqy/sportmonks-middleware/internal/domain/football"

// MatchDetail maps one fixture with its events and statistics.
func MatchDetail(raw any) *football.MatchDetail {
	src := object(raw)
	if src == nil {
		return nil
	}

	home, away := participants(src)
	scoreHome, scoreAway := scoreFor(src, scoreCurrent, true)
	halfHome, halfAway := scoreFor(src, scoreHalfTime, false)

	league := object(src["league"])
	leagueRef := leagueRef(league)
	leagueRef.Country = stringAt(league, "country", "name")

	homeRef, awayRef := teamRef(home), teamRef(away)
	homeRef.ShortCode, awayRef.ShortCode = nil, nil

	return &football.MatchDetail{
		ID:       int64At(src, "id"),
		League:   leagueRef,
		HomeTeam: homeRef,
		AwayTeam: awayRef,
		Score: football.MatchScore{
			Home:     scoreHome,
			Away:     scoreAway,
			HalfTime: football.Score{Home: halfHome, Away: halfAway},
		},
		Status:    status(src),
		StartTime: stringAt(src, "starting_at"),
		Venue: football.MatchVenue{
			Name: stringAt(src, "venue", "name"),
			City: firstString(stringAt(src, "venue", "city", "name"), stringAt(src, "venue", "city_name")),
		},
		Referee:    referee(src),
		Events:     events(src, home, away),
		Statistics: statistics(src, home, away),
	}
}

func referee(src map[string]any) *string {
	if name := firstString(stringAt(src, "referee", "common_name"), stringAt(src, "referee", "name")); name != nil {
		return name
	}
	for _, item := range objects(src["referees"]) {
		if name := firstString(stringAt(item, "referee", "common_name"), stringAt(item, "referee", "name")); name != nil {
			return name
		}
	}
	return nil
}

func events(src map[string]any, home, away map[string]any) []football.MatchEvent {
	items := objects(src["events"])
	out := make([]football.MatchEvent, 0, len(items))
	for _, item := range items {
		out = append(out, football.MatchEvent{
			Type:   firstString(stringAt(item, "type", "name"), stringAt(item, "type", "developer_name")),
			Minute: intAt(item, "minute"),
			Player: firstString(stringAt(item, "player", "display_name"), stringAt(item, "player_name")),
			Team:   participantName(item, home, away),
		})
	}
	return out
}

func statistics(src map[string]any, home, away map[string]any) []football.MatchStatistic {
	items := objects(src["statistics"])
	out := make([]football.MatchStatistic, 0, len(items))
	for _, item := range items {
		value := lookup(item, "data", "value")
		if value == nil {
			value = item["value"]
		}
		out = append(out, football.MatchStatistic{
			Type:  firstString(stringAt(item, "type", "name"), stringAt(item, "type", "developer_name")),
			Team:  participantName(item, home, away),
			Value: value,
		})
	}
	return out
}

// participantName prefers the included participant and otherwise matches
// participant_id against the fixture's two sides.
func participantName(item, home, away map[string]any) *string {
	if name := stringAt(item, "participant", "name"); name != nil {
		return name
	}
	id := int64At(item, "participant_id")
	if id == nil {
		return nil
	}
	for _, side := range []map[string]any{home, away} {
		if sideID := int64At(side, "id"); sideID != nil && *sideID == *id {
			return stringAt(side, "name")
		}
	}
	return nil
}
