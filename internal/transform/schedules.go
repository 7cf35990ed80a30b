package transform

import "github.com/riskibarqy/sportmonks-middleware/internal/domain/football"

// Schedules maps the season schedule tree (stage, round, fixtures). Bare
// fixtures found at the top level are collected into one stage whose id and
// name are null.
func Schedules(raw any) []football.ScheduleStage {
	items := list(raw)
	out := make([]football.ScheduleStage, 0, len(items))

	var loose []football.Fixture
	for _, item := range items {
		src := object(item)
		if src == nil {
			continue
		}
		if isFixture(src) {
			loose = append(loose, mapFixture(src))
			continue
		}
		out = append(out, mapStage(src))
	}

	if len(loose) > 0 {
		out = append(out, football.ScheduleStage{
			Rounds:   []football.ScheduleRound{},
			Fixtures: loose,
		})
	}
	return out
}

func mapStage(src map[string]any) football.ScheduleStage {
	rounds := objects(src["rounds"])
	stage := football.ScheduleStage{
		ID:       int64At(src, "id"),
		Name:     stringAt(src, "name"),
		SeasonID: int64At(src, "season_id"),
		Rounds:   make([]football.ScheduleRound, 0, len(rounds)),
		Fixtures: Fixtures(src["fixtures"]),
	}
	for _, round := range rounds {
		stage.Rounds = append(stage.Rounds, football.ScheduleRound{
			ID:         int64At(round, "id"),
			Name:       stringAt(round, "name"),
			StartingAt: stringAt(round, "starting_at"),
			EndingAt:   stringAt(round, "ending_at"),
			Finished:   boolAt(round, "finished"),
			IsCurrent:  boolAt(round, "is_current"),
			Fixtures:   Fixtures(round["fixtures"]),
		})
	}
	return stage
}

func isFixture(src map[string]any) bool {
	if _, ok := src["rounds"]; ok {
		return false
	}
	_, hasStart := src["starting_at"]
	_, hasParticipants := src["participants"]
	_, hasStage := src["stage_id"]
	return hasStart && (hasParticipants || hasStage)
}
