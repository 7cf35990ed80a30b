package usecase

import (
	"sort"
	"time"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
)

// GroupFixturesByLeague buckets fixtures per league. Inside a bucket
// fixtures run by start time ascending with unknown times last; buckets run
// by size descending, ties broken by league id. Fixtures without a league
// share one bucket with a null league.
func GroupFixturesByLeague(fixtures []football.Fixture) []football.LeagueFixtures {
	type bucketKey struct {
		id    int64
		known bool
	}

	order := make([]bucketKey, 0)
	buckets := make(map[bucketKey]*football.LeagueFixtures)
	for _, fixture := range fixtures {
		key := bucketKey{}
		if fixture.League.ID != nil {
			key = bucketKey{id: *fixture.League.ID, known: true}
		}

		bucket, ok := buckets[key]
		if !ok {
			league := fixture.League
			if !key.known {
				league = football.LeagueRef{}
			}
			bucket = &football.LeagueFixtures{League: league}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.Fixtures = append(bucket.Fixtures, fixture)
	}

	out := make([]football.LeagueFixtures, 0, len(order))
	for _, key := range order {
		bucket := buckets[key]
		sortByStartTime(bucket.Fixtures)
		out = append(out, *bucket)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Fixtures) != len(out[j].Fixtures) {
			return len(out[i].Fixtures) > len(out[j].Fixtures)
		}
		return leagueOrder(out[i].League) < leagueOrder(out[j].League)
	})
	return out
}

func sortByStartTime(fixtures []football.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		left, leftOK := startTime(fixtures[i])
		right, rightOK := startTime(fixtures[j])
		switch {
		case leftOK && rightOK && !left.Equal(right):
			return left.Before(right)
		case leftOK != rightOK:
			return leftOK
		default:
			return fixtureOrder(fixtures[i]) < fixtureOrder(fixtures[j])
		}
	})
}

func startTime(fixture football.Fixture) (time.Time, bool) {
	if fixture.StartTime == nil {
		return time.Time{}, false
	}
	return transform.ParseStartTime(*fixture.StartTime)
}

func fixtureOrder(fixture football.Fixture) int64 {
	if fixture.ID == nil {
		return 1<<63 - 1
	}
	return *fixture.ID
}

// leagueOrder sorts the null-league bucket after every real league.
func leagueOrder(league football.LeagueRef) int64 {
	if league.ID == nil {
		return 1<<63 - 1
	}
	return *league.ID
}
