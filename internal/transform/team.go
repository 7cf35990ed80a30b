package transform

import "github.com/riskibarqy/sportmonks-middleware/internal/domain/football"

// Team maps a team profile; a non-object payload yields nil.
func Team(raw any) *football.Team {
	src := object(raw)
	if src == nil {
		return nil
	}

	country := object(src["country"])
	venue := object(src["venue"])
	founded := intAt(src, "founded")
	if founded != nil && *founded == 0 {
		founded = nil
	}

	return &football.Team{
		ID:        int64At(src, "id"),
		Name:      stringAt(src, "name"),
		ShortCode: stringAt(src, "short_code"),
		Logo:      stringAt(src, "image_path"),
		Country: football.Country{
			ID:   int64At(country, "id"),
			Name: stringAt(country, "name"),
		},
		Venue: football.Venue{
			ID:       int64At(venue, "id"),
			Name:     stringAt(venue, "name"),
			City:     firstString(stringAt(venue, "city", "name"), stringAt(venue, "city_name")),
			Capacity: intAt(venue, "capacity"),
		},
		Founded: founded,
	}
}

// CurrentSeasonID reads league.currentseason.id and returns 0 when the league
// has no current season.
func CurrentSeasonID(raw any) int64 {
	league := object(raw)
	if league == nil {
		return 0
	}
	for _, key := range []string{"currentseason", "currentSeason", "current_season"} {
		if id := int64At(league, key, "id"); id != nil && *id > 0 {
			return *id
		}
	}
	return 0
}
