package models

import "strconv"

// RawEvent is a loosely-typed upstream event record (DONKI flare, CME,
// storm, radiation belt, NEO). The feeds share no schema, so fields are
// accessed defensively with zero-value defaults.
type RawEvent map[string]interface{}

// String returns the field as a string, or "" when absent or non-string.
func (e RawEvent) String(key string) string {
	if v, ok := e[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the field as a float64. Numeric strings are parsed;
// anything else yields 0.
func (e RawEvent) Float(key string) float64 {
	switch v := e[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// Has reports whether the field is present and non-nil.
func (e RawEvent) Has(key string) bool {
	v, ok := e[key]
	return ok && v != nil
}

// List returns the field as a list of nested records. Non-map elements
// are skipped.
func (e RawEvent) List(key string) []RawEvent {
	raw, ok := e[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]RawEvent, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, RawEvent(m))
		}
	}
	return out
}
