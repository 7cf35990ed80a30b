package transform

import (
	"strconv"
	"strings"
	"time"
)

// object unwraps a provider relation. Includes arrive either inline or
// wrapped as {"data": {...}} depending on the endpoint version; a map with
// other members besides data is returned as is.
func object(raw any) map[string]any {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := obj["data"].(map[string]any); ok && len(obj) == 1 {
		return data
	}
	return obj
}

// list unwraps an array relation; anything else yields nil.
func list(raw any) []any {
	switch typed := raw.(type) {
	case []any:
		return typed
	case map[string]any:
		if data, ok := typed["data"].([]any); ok && len(typed) == 1 {
			return data
		}
	}
	return nil
}

// objects keeps only the object members of an array relation.
func objects(raw any) []map[string]any {
	items := list(raw)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj := object(item); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

func lookup(src map[string]any, path ...string) any {
	var current any = src
	for _, key := range path {
		obj := object(current)
		if obj == nil {
			return nil
		}
		current = obj[key]
	}
	return current
}

func stringAt(src map[string]any, path ...string) *string {
	switch typed := lookup(src, path...).(type) {
	case string:
		value := strings.TrimSpace(typed)
		return &value
	case float64:
		value := strconv.FormatFloat(typed, 'f', -1, 64)
		return &value
	default:
		return nil
	}
}

func int64At(src map[string]any, path ...string) *int64 {
	value, ok := asInt64(lookup(src, path...))
	if !ok {
		return nil
	}
	return &value
}

func intAt(src map[string]any, path ...string) *int {
	value, ok := asInt64(lookup(src, path...))
	if !ok {
		return nil
	}
	v := int(value)
	return &v
}

func boolAt(src map[string]any, path ...string) *bool {
	value, ok := lookup(src, path...).(bool)
	if !ok {
		return nil
	}
	return &value
}

func asInt64(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case float64:
		return int64(typed), true
	case float32:
		return int64(typed), true
	case int:
		return int64(typed), true
	case int64:
		return typed, true
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// firstString returns the first non-empty candidate.
func firstString(values ...*string) *string {
	for _, value := range values {
		if value != nil && *value != "" {
			return value
		}
	}
	return nil
}

func lower(value *string) string {
	if value == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*value))
}

// ParseStartTime reads the provider's "2006-01-02 15:04:05" timestamps as
// well as RFC3339.
func ParseStartTime(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
