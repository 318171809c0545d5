package tabular

import (
	"strconv"
	"time"
)

// Sentinel values reported when a survey sheet does not carry cohort
// metadata. Display-only: they are never used as join keys.
const (
	UnknownProgram = "Unknown Program"
	UnknownBatch   = "Unknown Batch"
)

// CohortInfo is the cohort metadata read from the first row of an indirect
// survey sheet.
type CohortInfo struct {
	Program          string `json:"program"`
	Batch            string `json:"batch"`
	YearOfGraduation int    `json:"year_of_graduation"`
}

// ExtractCohortInfo reads program, batch and graduation year from the first
// row, falling back to the sentinels / current year when absent.
func ExtractCohortInfo(sheet *Sheet) CohortInfo {
	info := CohortInfo{
		Program:          UnknownProgram,
		Batch:            UnknownBatch,
		YearOfGraduation: time.Now().Year(),
	}
	if len(sheet.Rows) == 0 {
		return info
	}
	first := sheet.Rows[0]
	if v, ok := sheet.GetCanonical(first, "programdepartmentinstitute", "program"); ok && v != "" {
		info.Program = v
	}
	if v, ok := sheet.GetCanonical(first, "batch"); ok && v != "" {
		info.Batch = v
	}
	if v, ok := sheet.GetCanonical(first, "yearofgraduation"); ok && v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			info.YearOfGraduation = year
		}
	}
	return info
}
