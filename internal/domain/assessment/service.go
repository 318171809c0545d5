package assessment

import (
	"context"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

// IndirectResult is the outcome of processing one indirect survey sheet.
// Not yet persisted: the caller pairs it with a direct file to complete
// the assessment.
type IndirectResult struct {
	tabular.CohortInfo
	Tallies map[int]tabular.Tally `json:"indirect_results"`
}

// CompleteRequest combines a processed indirect result with direct scores
// into a persisted assessment.
type CompleteRequest struct {
	Program          string                `json:"program"`
	Batch            string                `json:"batch"`
	YearOfGraduation int                   `json:"year_of_graduation"`
	Tallies          map[int]tabular.Tally `json:"indirect_results"`
	DirectScores     map[int]float64       `json:"direct_scores"`
}

// Service is the business logic of cohort-level PLO assessment.
type Service interface {
	// ProcessIndirect tallies an indirect survey sheet against the question
	// catalog (pattern policy) and extracts cohort metadata.
	ProcessIndirect(ctx context.Context, sheet *tabular.Sheet) (*IndirectResult, error)

	// ProcessDirect reads per-outcome direct percentages from a direct
	// assessment sheet. Outcomes absent from the sheet contribute 0.
	ProcessDirect(ctx context.Context, sheet *tabular.Sheet) (map[int]float64, error)

	// Complete blends indirect and direct percentages into composites and
	// persists the assessment.
	Complete(ctx context.Context, req CompleteRequest) (*repositories.Assessment, error)

	// Save persists a client-computed assessment as-is after validation.
	Save(ctx context.Context, a *repositories.Assessment) (*repositories.Assessment, error)

	Get(ctx context.Context, id string) (*repositories.Assessment, error)
	List(ctx context.Context) ([]*repositories.Assessment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
