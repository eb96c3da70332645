package dtos

import "strconv"

// RawEventRecord is a single event payload as received from an upstream
// source. Field names vary per source (date+start_time, start_date, start,
// ...) and value types are not guaranteed, so the record stays schemaless
// and is read through ordered fallback lookups.
type RawEventRecord map[string]any

// Field returns the first non-empty string value among the given keys.
func (r RawEventRecord) Field(keys ...string) (string, bool) {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}

		s, ok := stringify(v)
		if !ok || s == "" {
			continue
		}

		return s, true
	}

	return "", false
}

// FieldOr is Field with a default for the missing case.
func (r RawEventRecord) FieldOr(fallback string, keys ...string) string {
	if s, ok := r.Field(keys...); ok {
		return s
	}
	return fallback
}

func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		// JSON numbers decode as float64; ids like 1 should read as "1".
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	default:
		return "", false
	}
}
