package tabular

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SE PLO 01", "seplo01"},
		{"seplo01", "seplo01"},
		{"SePlo1.", "seplo1"},
		{"  PLO-3 ", "plo3"},
		{"Year of Graduation", "yearofgraduation"},
		{"", ""},
		{"***", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalizeHeader(tt.in), "input %q", tt.in)
	}
}

func TestOutcomeIndex(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"SEPLO1", 1},
		{"seplo01", 1},
		{"SE PLO 01", 1},
		{"PLO 7", 7},
		{"plo07", 7},
		{"SEPLO12", 12},
		{"SE PLO 13", 0}, // out of range never matches
		{"PLO 0", 0},
		{"Name", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutcomeIndex(tt.label, OutcomeCount), "label %q", tt.label)
	}
}

func TestOutcomeIndexAmbiguousDigits(t *testing.T) {
	// seplo1 and seplo12 are distinct canonical spellings; exact equality
	// keeps "SEPLO12" from matching slot 1.
	assert.Equal(t, 12, OutcomeIndex("SEPLO12", OutcomeCount))
	assert.Equal(t, 1, OutcomeIndex("SEPLO1", OutcomeCount))
}

func TestOutcomeColumnsFirstMatchWins(t *testing.T) {
	sheet := &Sheet{
		Headers: []string{"Name", "SEPLO1", "PLO 1", "seplo02"},
	}

	columns := sheet.OutcomeColumns(OutcomeCount)

	assert.Equal(t, "SEPLO1", columns[1], "first matching header keeps the slot")
	assert.Equal(t, "seplo02", columns[2])
	_, ok := columns[3]
	assert.False(t, ok, "unmatched slots are absent")
}

func TestOutcomeColumnsAllSlots(t *testing.T) {
	headers := []string{"Batch", "Name"}
	for i := 1; i <= OutcomeCount; i++ {
		headers = append(headers, fmt.Sprintf("SEPLO%d", i))
	}
	sheet := &Sheet{Headers: headers}

	columns := sheet.OutcomeColumns(OutcomeCount)

	assert.Len(t, columns, OutcomeCount)
}

func TestHasOutcomeColumn(t *testing.T) {
	assert.True(t, HasOutcomeColumn([]string{"Reg No", "Name", "PLO 1"}))
	assert.True(t, HasOutcomeColumn([]string{"SE PLO 04"}))
	assert.False(t, HasOutcomeColumn([]string{"Reg No", "Name", "Semester"}))
	assert.False(t, HasOutcomeColumn(nil))
}
