package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFlareSeverity(t *testing.T) {
	tests := []struct {
		classType string
		want      string
	}{
		{"X9.3", SeverityExtreme},
		{"x1.0", SeverityExtreme},
		{"M5.5", SeverityHigh},
		{"C1.0", SeverityModerate},
		{"B7.2", SeverityLow},
		{"A2.0", SeverityLow},
		{"", SeverityUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFlareSeverity(tt.classType), "classType=%q", tt.classType)
	}
}

func TestClassifyFlareSeverity_UnknownIsNotLow(t *testing.T) {
	assert.NotEqual(t, ClassifyFlareSeverity(""), ClassifyFlareSeverity("B1.0"))
}

func TestClassifyCMESeverity(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{2500, SeverityExtreme},
		{2000, SeverityExtreme},
		{1999, SeverityHigh},
		{1000, SeverityHigh},
		{999, SeverityModerate},
		{500, SeverityModerate},
		{499, SeverityLow},
		{0, SeverityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCMESeverity(tt.speed), "speed=%v", tt.speed)
	}
}
