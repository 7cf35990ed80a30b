package transform

import (
	"strings"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
)

const (
	metricPlayed         = "played"
	metricWon            = "won"
	metricDraw           = "draw"
	metricLost           = "lost"
	metricGoalsFor       = "goals_for"
	metricGoalsAgainst   = "goals_against"
	metricGoalDifference = "goal_difference"
	metricPoints         = "points"
)

// positionalMetrics is the legacy detail order, used only for details that
// carry no type information at all.
var positionalMetrics = []string{
	metricPlayed,
	metricWon,
	metricDraw,
	metricLost,
	metricGoalsFor,
	metricGoalsAgainst,
	metricGoalDifference,
}

type metricType struct {
	metric   string
	priority int
}

// Overall totals outrank the home and away splits.
var standingMetricTypeByID = map[int64]metricType{
	117: {metricGoalsFor, 1},
	118: {metricGoalsAgainst, 1},
	119: {metricPlayed, 1},
	120: {metricPlayed, 1},
	121: {metricWon, 1},
	122: {metricWon, 1},
	123: {metricDraw, 1},
	124: {metricDraw, 1},
	125: {metricLost, 1},
	126: {metricLost, 1},
	127: {metricPoints, 1},
	128: {metricPoints, 1},
	129: {metricPlayed, 2},
	130: {metricWon, 2},
	131: {metricDraw, 2},
	132: {metricLost, 2},
	133: {metricGoalsFor, 2},
	134: {metricGoalsAgainst, 2},
	179: {metricGoalDifference, 2},
	187: {metricPoints, 2},
}

var standingMetricByName = map[string]string{
	"matches":         metricPlayed,
	"played":          metricPlayed,
	"matches played":  metricPlayed,
	"games played":    metricPlayed,
	"wins":            metricWon,
	"won":             metricWon,
	"win":             metricWon,
	"matches won":     metricWon,
	"draws":           metricDraw,
	"draw":            metricDraw,
	"drawn":           metricDraw,
	"matches drawn":   metricDraw,
	"lost":            metricLost,
	"losses":          metricLost,
	"loss":            metricLost,
	"defeats":         metricLost,
	"matches lost":    metricLost,
	"scored":          metricGoalsFor,
	"goals":           metricGoalsFor,
	"goals for":       metricGoalsFor,
	"goals scored":    metricGoalsFor,
	"conceded":        metricGoalsAgainst,
	"goals against":   metricGoalsAgainst,
	"goals conceded":  metricGoalsAgainst,
	"goal difference": metricGoalDifference,
	"goaldifference":  metricGoalDifference,
	"difference":      metricGoalDifference,
	"points":          metricPoints,
	"point":           metricPoints,
}

// Standings maps table rows. Stats come from a named lookup on each
// detail's type; missing values stay 0.
func Standings(raw any) []football.Standing {
	items := list(raw)
	out := make([]football.Standing, 0, len(items))
	for _, item := range items {
		row := object(item)
		if row == nil {
			continue
		}
		out = append(out, mapStanding(row))
	}
	return out
}

func mapStanding(src map[string]any) football.Standing {
	stats := standingStats(src)

	var form *string
	if parsed := parseForm(src["form"]); parsed != "" {
		form = &parsed
	}

	participant := object(src["participant"])
	return football.Standing{
		Position: intAt(src, "position"),
		Team: football.TeamRef{
			ID:   int64At(participant, "id"),
			Name: stringAt(participant, "name"),
			Logo: stringAt(participant, "image_path"),
		},
		Stats: stats,
		Form:  form,
	}
}

func standingStats(src map[string]any) football.StandingStats {
	values := make(map[string]int, len(positionalMetrics)+1)
	priorities := make(map[string]int, len(positionalMetrics)+1)

	// Positions count every array slot, so a null entry does not shift the
	// untyped details that follow it.
	for idx, item := range list(src["details"]) {
		detail := object(item)
		if detail == nil {
			continue
		}
		value := metricValue(detail["value"])

		metric, priority, typed := detailMetric(detail)
		if !typed {
			if idx >= len(positionalMetrics) {
				continue
			}
			metric, priority = positionalMetrics[idx], 0
		}
		if metric == "" {
			continue
		}
		if current, seen := priorities[metric]; seen && current >= priority {
			continue
		}
		values[metric] = value
		priorities[metric] = priority
	}

	stats := football.StandingStats{
		Played:         values[metricPlayed],
		Won:            values[metricWon],
		Draw:           values[metricDraw],
		Lost:           values[metricLost],
		GoalsFor:       values[metricGoalsFor],
		GoalsAgainst:   values[metricGoalsAgainst],
		GoalDifference: values[metricGoalDifference],
		Points:         values[metricPoints],
	}

	_, hasDiff := priorities[metricGoalDifference]
	forPriority, hasFor := priorities[metricGoalsFor]
	againstPriority, hasAgainst := priorities[metricGoalsAgainst]
	if !hasDiff && hasFor && hasAgainst && forPriority > 0 && againstPriority > 0 {
		stats.GoalDifference = stats.GoalsFor - stats.GoalsAgainst
	}

	// Row-level points win unless the row reports 0 while the details carry
	// a total.
	if points, ok := asInt64(src["points"]); ok && (points != 0 || stats.Points == 0) {
		stats.Points = int(points)
	}
	return stats
}

// detailMetric reports typed=false only when the detail has neither a
// type_id nor a type relation.
func detailMetric(detail map[string]any) (metric string, priority int, typed bool) {
	typeID, hasTypeID := asInt64(detail["type_id"])
	typeInfo := object(detail["type"])
	if !hasTypeID && typeInfo == nil {
		return "", 0, false
	}

	if hasTypeID {
		if known, ok := standingMetricTypeByID[typeID]; ok {
			return known.metric, known.priority, true
		}
	}
	if known, ok := standingMetricTypeByID[derefInt64(int64At(typeInfo, "id"))]; ok {
		return known.metric, known.priority, true
	}

	for _, candidate := range []*string{
		stringAt(typeInfo, "developer_name"),
		stringAt(typeInfo, "code"),
		stringAt(typeInfo, "name"),
	} {
		if metric, priority, ok := metricFromName(lower(candidate)); ok {
			return metric, priority, true
		}
	}
	return "", 0, true
}

func metricFromName(candidate string) (string, int, bool) {
	candidate = strings.Join(strings.FieldsFunc(candidate, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), " ")
	if candidate == "" {
		return "", 0, false
	}

	priority := 2
	for _, prefix := range []string{"overall ", "total "} {
		candidate = strings.TrimPrefix(candidate, prefix)
	}
	for _, prefix := range []string{"home ", "away "} {
		if strings.HasPrefix(candidate, prefix) {
			candidate = strings.TrimPrefix(candidate, prefix)
			priority = 1
		}
	}

	metric, ok := standingMetricByName[candidate]
	return metric, priority, ok
}

// metricValue accepts plain numbers as well as split objects such as
// {"total": 5} or {"home": 2, "away": 3}.
func metricValue(value any) int {
	switch typed := value.(type) {
	case map[string]any:
		for _, key := range []string{"total", "all", "overall", "value"} {
			if v, ok := asInt64(typed[key]); ok {
				return int(v)
			}
		}
		home, _ := asInt64(typed["home"])
		away, _ := asInt64(typed["away"])
		return int(home + away)
	default:
		v, _ := asInt64(value)
		return int(v)
	}
}

func parseForm(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.ToUpper(strings.TrimSpace(typed))
	case map[string]any:
		if nested, ok := typed["data"]; ok {
			return parseForm(nested)
		}
		return formLetter(typed)
	case []any:
		var b strings.Builder
		for _, raw := range typed {
			row, ok := raw.(map[string]any)
			if !ok {
				if s, ok := raw.(string); ok {
					b.WriteString(strings.ToUpper(strings.TrimSpace(s)))
				}
				continue
			}
			b.WriteString(formLetter(row))
		}
		return b.String()
	default:
		return ""
	}
}

func formLetter(row map[string]any) string {
	letter := firstString(stringAt(row, "form"), stringAt(row, "result"), stringAt(row, "value"))
	if letter == nil {
		return ""
	}
	return strings.ToUpper(*letter)
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
