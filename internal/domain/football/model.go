package football

// Output models served to API consumers. Every field sourced from the
// provider is nullable so a sparse upstream payload never fails a response.

type LeagueRef struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Logo    *string `json:"logo"`
	Country *string `json:"country,omitempty"`
}

type TeamRef struct {
	ID        *int64  `json:"id"`
	Name      *string `json:"name"`
	ShortCode *string `json:"short_code,omitempty"`
	Logo      *string `json:"logo"`
}

type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Status struct {
	Name   *string `json:"name"`
	Short  *string `json:"short"`
	Minute *int    `json:"minute"`
}

// Fixture is used for live scores and scheduled fixtures alike; Round is
// null for live scores.
type Fixture struct {
	ID        *int64    `json:"id"`
	League    LeagueRef `json:"league"`
	HomeTeam  TeamRef   `json:"homeTeam"`
	AwayTeam  TeamRef   `json:"awayTeam"`
	Score     Score     `json:"score"`
	Status    Status    `json:"status"`
	StartTime *string   `json:"startTime"`
	Venue     *string   `json:"venue"`
	Round     *string   `json:"round"`
}

// LeagueFixtures is one bucket of the fixtures-by-date grouping.
type LeagueFixtures struct {
	League   LeagueRef `json:"league"`
	Fixtures []Fixture `json:"fixtures"`
}

type StandingStats struct {
	Played         int `json:"played"`
	Won            int `json:"won"`
	Draw           int `json:"draw"`
	Lost           int `json:"lost"`
	GoalsFor       int `json:"goalsFor"`
	GoalsAgainst   int `json:"goalsAgainst"`
	GoalDifference int `json:"goalDifference"`
	Points         int `json:"points"`
}

type Standing struct {
	Position *int          `json:"position"`
	Team     TeamRef       `json:"team"`
	Stats    StandingStats `json:"stats"`
	Form     *string       `json:"form"`
}

type Country struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type Venue struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
}

type Team struct {
	ID        *int64  `json:"id"`
	Name      *string `json:"name"`
	ShortCode *string `json:"short_code"`
	Logo      *string `json:"logo"`
	Country   Country `json:"country"`
	Venue     Venue   `json:"venue"`
	Founded   *int    `json:"founded"`
}

type MatchScore struct {
	Home     int   `json:"home"`
	Away     int   `json:"away"`
	HalfTime Score `json:"halfTime"`
}

type MatchVenue struct {
	Name *string `json:"name"`
	City *string `json:"city"`
}

type MatchEvent struct {
	Type   *string `json:"type"`
	Minute *int    `json:"minute"`
	Player *string `json:"player"`
	Team   *string `json:"team"`
}

type MatchStatistic struct {
	Type  *string `json:"type"`
	Team  *string `json:"team"`
	Value any     `json:"value"`
}

type MatchDetail struct {
	ID         *int64           `json:"id"`
	League     LeagueRef        `json:"league"`
	HomeTeam   TeamRef          `json:"homeTeam"`
	AwayTeam   TeamRef          `json:"awayTeam"`
	Score      MatchScore       `json:"score"`
	Status     Status           `json:"status"`
	StartTime  *string          `json:"startTime"`
	Venue      MatchVenue       `json:"venue"`
	Referee    *string          `json:"referee"`
	Events     []MatchEvent     `json:"events"`
	Statistics []MatchStatistic `json:"statistics"`
}

type ScheduleRound struct {
	ID         *int64    `json:"id"`
	Name       *string   `json:"name"`
	StartingAt *string   `json:"startingAt"`
	EndingAt   *string   `json:"endingAt"`
	Finished   *bool     `json:"finished"`
	IsCurrent  *bool     `json:"isCurrent"`
	Fixtures   []Fixture `json:"fixtures"`
}

type ScheduleStage struct {
	ID       *int64          `json:"id"`
	Name     *string         `json:"name"`
	SeasonID *int64          `json:"seasonId"`
	Rounds   []ScheduleRound `json:"rounds"`
	Fixtures []Fixture       `json:"fixtures"`
}
