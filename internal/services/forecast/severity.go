package forecast

import "strings"

// Severity tiers shared by the alerting and prediction paths.
const (
	SeverityUnknown  = "unknown"
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeverityExtreme  = "extreme"
)

// ClassifyFlareSeverity maps a flare class string (X9.3, M5.5, C1.0, ...)
// to a severity tier by its first character. Empty input is "unknown",
// which callers must treat as distinct from "low".
func ClassifyFlareSeverity(classType string) string {
	if classType == "" {
		return SeverityUnknown
	}

	switch strings.ToUpper(classType[:1]) {
	case "X":
		return SeverityExtreme
	case "M":
		return SeverityHigh
	case "C":
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// ClassifyCMESeverity maps a CME speed in km/s to a severity tier.
func ClassifyCMESeverity(speed float64) string {
	switch {
	case speed >= 2000:
		return SeverityExtreme
	case speed >= 1000:
		return SeverityHigh
	case speed >= 500:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
