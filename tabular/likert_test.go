package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		cell   string
		want   float64
		wantOK bool
	}{
		{"Strongly Agree (4)", 4, true},
		{"Disagree (2)", 2, true},
		{"3", 3, true},
		{"3.5", 3.5, true},
		{" 4 ", 4, true},
		{"Agree", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseResponse(tt.cell)
		assert.Equal(t, tt.wantOK, ok, "cell %q", tt.cell)
		assert.Equal(t, tt.want, got, "cell %q", tt.cell)
	}
}

func TestParseResponseFirstDigitRun(t *testing.T) {
	// Only the first run of digits counts for free-text cells.
	got, ok := ParseResponse("4 out of 5")
	assert.True(t, ok)
	assert.Equal(t, 4.0, got)
}

func TestParseScore(t *testing.T) {
	s := ParseScore("85.5")
	assert.True(t, s.Valid)
	assert.Equal(t, 85.5, s.Value)

	s = ParseScore(" 42 ")
	assert.True(t, s.Valid)
	assert.Equal(t, 42.0, s.Value)

	s = ParseScore("120")
	assert.True(t, s.Valid)
	assert.Equal(t, 100.0, s.Value, "scores clamp into [0,100]")

	s = ParseScore("-5")
	assert.True(t, s.Valid)
	assert.Equal(t, 0.0, s.Value)

	for _, cell := range []string{"", "absent", "NaN"} {
		s = ParseScore(cell)
		assert.False(t, s.Valid, "cell %q", cell)
	}
}
