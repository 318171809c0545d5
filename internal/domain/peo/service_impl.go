package peo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

type serviceImpl struct {
	repo repositories.PEORepository
}

// NewService creates the PEO domain service.
func NewService(repo repositories.PEORepository) Service {
	return &serviceImpl{repo: repo}
}

// objectiveColumns groups survey columns per objective by the "peo-N"
// marker in the column label. One objective usually spans several
// questions.
func objectiveColumns(sheet *tabular.Sheet) map[int][]string {
	groups := make(map[int][]string, tabular.ObjectiveCount)
	for _, h := range sheet.Headers {
		lower := strings.ToLower(h)
		for i := 1; i <= tabular.ObjectiveCount; i++ {
			if strings.Contains(lower, fmt.Sprintf("peo-%d", i)) {
				groups[i] = append(groups[i], h)
			}
		}
	}
	return groups
}

func (s *serviceImpl) ProcessSurvey(ctx context.Context, sheet *tabular.Sheet) (*SurveyResult, error) {
	if len(sheet.Rows) == 0 {
		return nil, tabular.ErrEmptyInput
	}
	groups := objectiveColumns(sheet)
	totalRows := len(sheet.Rows)

	percentages := make(map[int]float64, tabular.ObjectiveCount)
	for i := 1; i <= tabular.ObjectiveCount; i++ {
		questions := groups[i]
		positive := 0
		for _, row := range sheet.Rows {
			for _, q := range questions {
				if tabular.GradeValue(row.Get(q)) >= tabular.ObjectivePositiveThreshold {
					positive++
				}
			}
		}
		denominator := totalRows * len(questions)
		if denominator == 0 {
			percentages[i] = 0
			continue
		}
		percentages[i] = round3(100 * float64(positive) / float64(denominator))
	}
	return &SurveyResult{Percentages: percentages, TotalResponses: totalRows}, nil
}

func (s *serviceImpl) Analyze(ctx context.Context, batch string, alumni, employer *tabular.Sheet) (*repositories.PEOAnalysis, error) {
	if batch == "" {
		batch = "Unknown"
	}
	alumniResult, err := s.ProcessSurvey(ctx, alumni)
	if err != nil {
		return nil, fmt.Errorf("failed to process alumni survey: %w", err)
	}
	employerResult, err := s.ProcessSurvey(ctx, employer)
	if err != nil {
		return nil, fmt.Errorf("failed to process employer survey: %w", err)
	}

	averages := make(map[int]float64, tabular.ObjectiveCount)
	for i := 1; i <= tabular.ObjectiveCount; i++ {
		averages[i] = round3((alumniResult.Percentages[i] + employerResult.Percentages[i]) / 2)
	}

	analysis := &repositories.PEOAnalysis{
		ID:        uuid.New().String(),
		Batch:     batch,
		Alumni:    alumniResult.Percentages,
		Employer:  employerResult.Percentages,
		Averages:  averages,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to save PEO analysis: %w", err)
	}

	slog.Info("PEO analysis completed",
		"analysis_id", analysis.ID,
		"batch", batch,
		"alumni_responses", alumniResult.TotalResponses,
		"employer_responses", employerResult.TotalResponses,
	)
	return analysis, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (*repositories.PEOAnalysis, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load PEO analysis: %w", err)
	}
	return record, nil
}

func (s *serviceImpl) List(ctx context.Context) ([]*repositories.PEOAnalysis, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list PEO analyses: %w", err)
	}
	return records, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete PEO analysis: %w", err)
	}
	return nil
}

func (s *serviceImpl) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// round3 keeps the 3-decimal precision of the historical PEO reports.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
