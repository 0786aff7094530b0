package forecast

import (
	"math"
	"strconv"
	"strings"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FloatText renders v in its shortest decimal form, always keeping a
// fractional part ("1500.0", "8.5"). Alert titles and CME speeds quote
// upstream readings this way.
func FloatText(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
