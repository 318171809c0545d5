package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractCohortInfo(t *testing.T) {
	sheet := &Sheet{
		Headers: []string{"Program (Department/Institute)", "Batch", "Year of Graduation"},
		Rows: []Row{
			{"Program (Department/Institute)": "Software Engineering", "Batch": "20SW", "Year of Graduation": "2024"},
		},
	}

	info := ExtractCohortInfo(sheet)

	assert.Equal(t, "Software Engineering", info.Program)
	assert.Equal(t, "20SW", info.Batch)
	assert.Equal(t, 2024, info.YearOfGraduation)
}

func TestExtractCohortInfoFallbacks(t *testing.T) {
	sheet := &Sheet{
		Headers: []string{"Q1"},
		Rows:    []Row{{"Q1": "4"}},
	}

	info := ExtractCohortInfo(sheet)

	assert.Equal(t, UnknownProgram, info.Program)
	assert.Equal(t, UnknownBatch, info.Batch)
	assert.Equal(t, time.Now().Year(), info.YearOfGraduation)
}

func TestExtractCohortInfoEmptySheet(t *testing.T) {
	info := ExtractCohortInfo(&Sheet{Headers: []string{"Batch"}})

	assert.Equal(t, UnknownBatch, info.Batch)
}

func TestExtractCohortInfoBadYear(t *testing.T) {
	sheet := &Sheet{
		Headers: []string{"Batch", "Year of Graduation"},
		Rows:    []Row{{"Batch": "21SW", "Year of Graduation": "next year"}},
	}

	info := ExtractCohortInfo(sheet)

	assert.Equal(t, "21SW", info.Batch)
	assert.Equal(t, time.Now().Year(), info.YearOfGraduation)
}

func TestGetCanonical(t *testing.T) {
	sheet := &Sheet{Headers: []string{"  Batch ", "Name"}}
	row := Row{"  Batch ": " 20SW01 ", "Name": "Ali"}

	v, ok := sheet.GetCanonical(row, "batch")
	assert.True(t, ok)
	assert.Equal(t, "20SW01", v, "cell values are trimmed")

	_, ok = sheet.GetCanonical(row, "semester")
	assert.False(t, ok)
}
