package peo

import (
	"context"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

// SurveyResult is the per-objective outcome of processing one graded
// survey sheet (alumni or employer).
type SurveyResult struct {
	Percentages    map[int]float64 `json:"percentages"`
	TotalResponses int             `json:"total_responses"`
}

// Service is the business logic of Program Educational Objective analysis.
type Service interface {
	// ProcessSurvey tallies letter-graded responses per objective. A
	// response is positive for any of A/B/C; the percentage denominator is
	// rows x questions for that objective.
	ProcessSurvey(ctx context.Context, sheet *tabular.Sheet) (*SurveyResult, error)

	// Analyze processes the alumni and employer sheets, averages their
	// per-objective percentages and persists the analysis.
	Analyze(ctx context.Context, batch string, alumni, employer *tabular.Sheet) (*repositories.PEOAnalysis, error)

	Get(ctx context.Context, id string) (*repositories.PEOAnalysis, error)
	List(ctx context.Context) ([]*repositories.PEOAnalysis, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
