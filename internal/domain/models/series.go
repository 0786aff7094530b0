package models

import "strconv"

// SeriesRow is one positional time-series sample from a SWPC product:
// [timestamp, v1, v2, ...]. Solar wind rows carry 6 fields (time, bx, by,
// bz, speed, density), Kp rows carry 2 (time, kp).
type SeriesRow []interface{}

// StringAt returns the column as a string, or "" when out of range.
func (r SeriesRow) StringAt(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	if s, ok := r[i].(string); ok {
		return s
	}
	return ""
}

// FloatAt returns the column as a float64. SWPC encodes numbers as
// strings, so both forms are accepted; missing or malformed yields 0.
func (r SeriesRow) FloatAt(i int) float64 {
	if i < 0 || i >= len(r) {
		return 0
	}
	switch v := r[i].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// Series is an ordered list of samples, oldest first.
type Series []SeriesRow

// Tail returns the last n rows (all rows when fewer exist).
func (s Series) Tail(n int) Series {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
