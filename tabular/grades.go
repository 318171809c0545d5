package tabular

import "strings"

// ObjectivePositiveThreshold is the grade value from which a survey
// response counts as positive for objective (PEO) tallies: any of A/B/C.
// Deliberately coarser than the outcome certainty thresholds in tally.go.
const ObjectivePositiveThreshold = 1

// GradeValue maps a letter grade to its numeric value: A=3, B=2, C=1,
// anything else (including blank) = 0.
func GradeValue(cell string) int {
	switch strings.ToUpper(strings.TrimSpace(cell)) {
	case "A":
		return 3
	case "B":
		return 2
	case "C":
		return 1
	default:
		return 0
	}
}
