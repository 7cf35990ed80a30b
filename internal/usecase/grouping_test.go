package usecase

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
)

func ptr[T any](v T) *T {
	return &v
}

func TestGroupFixturesByLeague_PreservesEveryFixture(t *testing.T) {
	t.Parallel()

	fixtures := []football.Fixture{
		{ID: ptr(int64(10)), League: football.LeagueRef{ID: ptr(int64(564))}, StartTime: ptr("2026-10-18 20:00:00")},
		{ID: ptr(int64(11)), StartTime: ptr("2026-10-18 12:00:00")},
		{ID: ptr(int64(12)), League: football.LeagueRef{ID: ptr(int64(8))}, StartTime: ptr("2026-10-18 15:00:00")},
		{ID: ptr(int64(13)), League: football.LeagueRef{ID: ptr(int64(564))}, StartTime: ptr("2026-10-18 18:00:00")},
	}

	groups := GroupFixturesByLeague(fixtures)

	total := 0
	for _, group := range groups {
		total += len(group.Fixtures)
	}
	if total != len(fixtures) {
		t.Fatalf("grouping lost fixtures: got=%d want=%d", total, len(fixtures))
	}
	if len(groups) != 3 {
		t.Fatalf("unexpected bucket count: %d", len(groups))
	}
	if *groups[0].League.ID != 564 || *groups[0].Fixtures[0].ID != 13 {
		t.Fatalf("expected la liga bucket first ordered by kick-off, got %+v", groups[0])
	}
	if *groups[1].League.ID != 8 {
		t.Fatalf("expected single-fixture league before the null bucket, got %+v", groups[1].League)
	}
	if groups[2].League.ID != nil || *groups[2].Fixtures[0].ID != 11 {
		t.Fatalf("expected null league bucket last, got %+v", groups[2])
	}
}

func TestGroupFixturesByLeague_Empty(t *testing.T) {
	t.Parallel()

	groups := GroupFixturesByLeague(nil)
	if groups == nil || len(groups) != 0 {
		t.Fatalf("expected empty non-nil groups, got %v", groups)
	}
}

func TestGroupFixturesByLeague_Ordering(t *testing.T) {
	t.Parallel()

	leagues := []*int64{ptr(int64(8)), ptr(int64(564)), ptr(int64(384)), nil}
	kickoffs := []*string{
		ptr("2026-10-18 12:00:00"),
		ptr("2026-10-18 15:00:00"),
		ptr("2026-10-18 15:00:00"),
		ptr("2026-10-18 20:00:00"),
		ptr("not a time"),
		nil,
	}

	for seed := uint64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed*7))
			fixtures := make([]football.Fixture, 0, 40)
			for i := range rng.IntN(40) {
				fixtures = append(fixtures, football.Fixture{
					ID:        ptr(int64(i + 1)),
					League:    football.LeagueRef{ID: leagues[rng.IntN(len(leagues))]},
					StartTime: kickoffs[rng.IntN(len(kickoffs))],
				})
			}

			groups := GroupFixturesByLeague(fixtures)

			total := 0
			for i, group := range groups {
				total += len(group.Fixtures)
				if i > 0 {
					assertBucketOrder(t, groups[i-1], group)
				}
				assertKickoffOrder(t, group)
			}
			if total != len(fixtures) {
				t.Fatalf("grouping lost fixtures: got=%d want=%d", total, len(fixtures))
			}
		})
	}
}

func assertBucketOrder(t *testing.T, prev, next football.LeagueFixtures) {
	t.Helper()
	if len(prev.Fixtures) < len(next.Fixtures) {
		t.Fatalf("bucket sizes must not increase: %d then %d", len(prev.Fixtures), len(next.Fixtures))
	}
	if len(prev.Fixtures) > len(next.Fixtures) {
		return
	}
	if prev.League.ID == nil {
		t.Fatalf("null league bucket must come after equal-size leagues")
	}
	if next.League.ID != nil && *prev.League.ID >= *next.League.ID {
		t.Fatalf("equal-size buckets must run by league id: %d then %d", *prev.League.ID, *next.League.ID)
	}
}

func assertKickoffOrder(t *testing.T, group football.LeagueFixtures) {
	t.Helper()
	unknownSeen := false
	var last, lastID int64
	for _, fixture := range group.Fixtures {
		if (fixture.League.ID == nil) != (group.League.ID == nil) ||
			(fixture.League.ID != nil && *fixture.League.ID != *group.League.ID) {
			t.Fatalf("fixture %d landed in the wrong bucket", *fixture.ID)
		}

		var kickoff int64
		known := false
		if fixture.StartTime != nil {
			if parsed, ok := transform.ParseStartTime(*fixture.StartTime); ok {
				kickoff, known = parsed.Unix(), true
			}
		}
		if !known {
			unknownSeen = true
			continue
		}
		if unknownSeen {
			t.Fatalf("fixture %d with a kick-off follows one without", *fixture.ID)
		}
		if kickoff < last {
			t.Fatalf("fixture %d kicks off before its predecessor", *fixture.ID)
		}
		if kickoff == last && *fixture.ID < lastID {
			t.Fatalf("fixtures sharing a kick-off must run by id: %d after %d", *fixture.ID, lastID)
		}
		last, lastID = kickoff, *fixture.ID
	}
}
