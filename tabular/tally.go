package tabular

import "math"

// Two different certainty thresholds coexist for indirect outcome tallies.
// The original assessments were produced by two parallel pipelines that
// never agreed on one; both are kept as explicit constants so the choice is
// visible per report type instead of being unified silently.
const (
	// CertaintyThresholdExact is used by the exact-label survey path:
	// responses >= 3 count, against all rows of the sheet.
	CertaintyThresholdExact = 3

	// CertaintyThresholdPattern is used by the pattern-matching survey
	// path: responses >= 4 count, against parsed responses only.
	CertaintyThresholdPattern = 4
)

// TallyPolicy selects the certainty threshold and the denominator rule for
// a survey tally.
type TallyPolicy struct {
	Threshold float64
	// AllRowsDenominator counts every sheet row in the denominator, even
	// rows whose cell did not parse to a response.
	AllRowsDenominator bool
}

// ExactPolicy is the tally policy of the exact-label survey path.
var ExactPolicy = TallyPolicy{Threshold: CertaintyThresholdExact, AllRowsDenominator: true}

// PatternPolicy is the tally policy of the pattern-matching survey path.
// Preferred for uploads: pattern matching survives minor question rewording.
var PatternPolicy = TallyPolicy{Threshold: CertaintyThresholdPattern}

// Tally is the per-outcome result of counting survey responses.
type Tally struct {
	CountPositive  int     `json:"count_positive"`
	TotalResponses int     `json:"total_responses"`
	QuestionCount  int     `json:"question_count"`
	Percentage     float64 `json:"percentage"`
}

// percentage computes 100*positive/total rounded to 2 decimals, 0 when the
// denominator is empty (never NaN).
func percentage(positive, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(100 * float64(positive) / float64(total))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TallyColumn counts the responses of one survey column under a policy.
func TallyColumn(rows []Row, column string, policy TallyPolicy) Tally {
	positive := 0
	parsed := 0
	for _, row := range rows {
		v, ok := ParseResponse(row.Get(column))
		if !ok {
			continue
		}
		parsed++
		if v >= policy.Threshold {
			positive++
		}
	}
	total := parsed
	if policy.AllRowsDenominator {
		total = len(rows)
	}
	return Tally{
		CountPositive:  positive,
		TotalResponses: total,
		QuestionCount:  1,
		Percentage:     percentage(positive, total),
	}
}

// SurveyTally tallies every outcome slot of a survey sheet. Outcomes whose
// question column was not found get a zero tally rather than failing the
// upload; the caller may log the gap.
func SurveyTally(sheet *Sheet, columns map[int]string, policy TallyPolicy) (map[int]Tally, error) {
	if len(sheet.Rows) == 0 {
		return nil, ErrEmptyInput
	}
	results := make(map[int]Tally, OutcomeCount)
	for i := 1; i <= OutcomeCount; i++ {
		column, ok := columns[i]
		if !ok {
			results[i] = Tally{QuestionCount: 1}
			continue
		}
		results[i] = TallyColumn(sheet.Rows, column, policy)
	}
	return results, nil
}
