package repositories

import (
	"time"

	"obeserver/scoring"
	"obeserver/tabular"
)

// Assessment is the persisted result of one cohort-level PLO assessment
// cycle (indirect survey blended with direct performance data). Immutable
// once created; deleted only by explicit user action.
type Assessment struct {
	ID               string                 `json:"id"`
	Program          string                 `json:"program"`
	Batch            string                 `json:"batch"`
	YearOfGraduation int                    `json:"year_of_graduation"`
	IndirectResults  map[int]tabular.Tally  `json:"indirect_results"`
	DirectScores     map[int]float64        `json:"direct_scores"`
	Composites       map[int]scoring.Composite `json:"composites"`
	CreatedAt        time.Time              `json:"created_at"`
}

// PEOAnalysis is the persisted result of one objective-level analysis over
// alumni and employer surveys.
type PEOAnalysis struct {
	ID       string          `json:"id"`
	Batch    string          `json:"batch"`
	Alumni   map[int]float64 `json:"alumni_percentages"`
	Employer map[int]float64 `json:"employer_percentages"`
	Averages map[int]float64 `json:"averages"`
	CreatedAt time.Time      `json:"created_at"`
}

// StudentRecord is one merged per-student record of a final-result
// analysis. Outcomes holds only the slots a source file actually supplied;
// a missing slot means "no data", not zero.
type StudentRecord struct {
	// Key is the trimmed registration/batch code as it appeared in the
	// source, preserved for display. Comparisons always go through
	// finalresult.NormalizeKey, never raw equality.
	Key       string                `json:"key"`
	Name      string                `json:"name,omitempty"`
	NameKnown bool                  `json:"name_known"`
	Outcomes  map[int]tabular.Score `json:"outcomes"`

	// Source flags record which uploaded files mentioned the student.
	FromFailureList bool `json:"from_failure_list"`
	FromScoreList   bool `json:"from_score_list"`
}

// FinalResultAnalysis is the persisted result of a completed two-file merge.
// Students preserves the merge insertion order.
type FinalResultAnalysis struct {
	ID        string          `json:"id"`
	Batch     string          `json:"batch"`
	FileNames []string        `json:"file_names"`
	Students  []StudentRecord `json:"students"`
	CreatedAt time.Time       `json:"created_at"`
}

// FinalResultSummary is the listing projection of a final-result analysis.
type FinalResultSummary struct {
	ID        string    `json:"id"`
	Batch     string    `json:"batch"`
	FileNames []string  `json:"file_names"`
	CreatedAt time.Time `json:"created_at"`
}

// StagingSession holds the partial datasets of a two-phase final-result
// upload between requests. Sessions are transient: they expire after the
// staging retention window and are deleted on successful finalize.
type StagingSession struct {
	SessionID       string
	Batch           string
	FailureSheet    *tabular.Sheet
	ScoreSheet      *tabular.Sheet
	FailureFileName string
	ScoreFileName   string
	CreatedAt       time.Time
}
