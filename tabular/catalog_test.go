package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchQuestionColumnsExactLabel(t *testing.T) {
	sheet := &Sheet{Headers: []string{
		"Batch",
		"I am confident to apply engineering knowledge in the field",
	}}

	columns := MatchQuestionColumns(sheet)

	assert.Equal(t, "I am confident to apply engineering knowledge in the field", columns[1])
}

func TestMatchQuestionColumnsPattern(t *testing.T) {
	// A reworded question still matches through the regex pattern.
	header := "Q1. I feel confident to apply engineering knowledge at work"
	sheet := &Sheet{Headers: []string{header}}

	columns := MatchQuestionColumns(sheet)

	assert.Equal(t, header, columns[1])
}

func TestMatchQuestionColumnsStemmedKeywords(t *testing.T) {
	// Neither the exact label nor the pattern fits, but the stemmed
	// keywords (identify, analyze, problems) all appear.
	header := "Identifying and analyzing engineering problems comes naturally to me"
	sheet := &Sheet{Headers: []string{header}}

	columns := MatchQuestionColumns(sheet)

	assert.Equal(t, header, columns[2])
}

func TestMatchQuestionColumnsMissing(t *testing.T) {
	sheet := &Sheet{Headers: []string{"Batch", "Name", "Timestamp"}}

	columns := MatchQuestionColumns(sheet)

	assert.Empty(t, columns, "unrelated headers match no catalog entry")
}

func TestMatchQuestionColumnsFullCatalog(t *testing.T) {
	headers := []string{"Program (Department/Institute)", "Batch", "Year of Graduation"}
	for _, entry := range OutcomeCatalog {
		headers = append(headers, entry.Label)
	}
	sheet := &Sheet{Headers: headers}

	columns := MatchQuestionColumns(sheet)

	assert.Len(t, columns, OutcomeCount)
	for _, entry := range OutcomeCatalog {
		assert.Equal(t, entry.Label, columns[entry.Outcome])
	}
}

func TestGradeValue(t *testing.T) {
	tests := []struct {
		grade string
		want  int
	}{
		{"A", 3},
		{"a", 3},
		{" B ", 2},
		{"C", 1},
		{"D", 0},
		{"F", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeValue(tt.grade), "grade %q", tt.grade)
	}
}
