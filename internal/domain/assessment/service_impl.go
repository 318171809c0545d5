package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"obeserver/internal/domain/repositories"
	"obeserver/scoring"
	"obeserver/tabular"
)

var ploCellPattern = regexp.MustCompile(`(?i)PLO\s*(\d+)`)

type serviceImpl struct {
	repo repositories.AssessmentRepository
}

// NewService creates the assessment domain service.
func NewService(repo repositories.AssessmentRepository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) ProcessIndirect(ctx context.Context, sheet *tabular.Sheet) (*IndirectResult, error) {
	columns := tabular.MatchQuestionColumns(sheet)
	if len(columns) < tabular.OutcomeCount {
		slog.Warn("survey sheet is missing catalog questions",
			"found", len(columns),
			"expected", tabular.OutcomeCount,
		)
	}
	tallies, err := tabular.SurveyTally(sheet, columns, tabular.PatternPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to tally survey: %w", err)
	}
	return &IndirectResult{
		CohortInfo: tabular.ExtractCohortInfo(sheet),
		Tallies:    tallies,
	}, nil
}

// ProcessDirect reads rows shaped like {"PLOs": "PLO 3", "PLO Direct
// Assessment (%)": 85.5}. Rows whose label cell does not name an outcome in
// range are skipped; outcomes never mentioned default to 0.
func (s *serviceImpl) ProcessDirect(ctx context.Context, sheet *tabular.Sheet) (map[int]float64, error) {
	if len(sheet.Rows) == 0 {
		return nil, tabular.ErrEmptyInput
	}
	labelCol, okLabel := sheet.ColumnByCanonical("plos", "plo")
	valueCol, okValue := sheet.ColumnByCanonical("plodirectassessment", "directassessment")
	if !okLabel || !okValue {
		return nil, ErrNoDirectColumns
	}

	scores := make(map[int]float64, tabular.OutcomeCount)
	for _, row := range sheet.Rows {
		label := row.Get(labelCol)
		raw := row.Get(valueCol)
		if label == "" || raw == "" {
			continue
		}
		m := ploCellPattern.FindStringSubmatch(label)
		if m == nil {
			continue
		}
		i, err := strconv.Atoi(m[1])
		if err != nil || i < 1 || i > tabular.OutcomeCount {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		scores[i] = tabular.ClampPercent(v)
	}
	for i := 1; i <= tabular.OutcomeCount; i++ {
		if _, ok := scores[i]; !ok {
			scores[i] = 0
		}
	}
	return scores, nil
}

func (s *serviceImpl) Complete(ctx context.Context, req CompleteRequest) (*repositories.Assessment, error) {
	if req.Program == "" || req.Batch == "" || req.YearOfGraduation == 0 || req.Tallies == nil || req.DirectScores == nil {
		return nil, ErrMissingFields
	}

	composites := make(map[int]scoring.Composite, tabular.OutcomeCount)
	for i := 1; i <= tabular.OutcomeCount; i++ {
		// Absent values contribute 0 at the cohort level: a missing
		// percentage is a 0-contribution here, unlike the per-student merge
		// where absent stays absent.
		indirect := req.Tallies[i].Percentage
		direct := req.DirectScores[i]
		composites[i] = scoring.Combine(indirect, direct)
	}

	assessment := &repositories.Assessment{
		ID:               uuid.New().String(),
		Program:          req.Program,
		Batch:            req.Batch,
		YearOfGraduation: req.YearOfGraduation,
		IndirectResults:  req.Tallies,
		DirectScores:     req.DirectScores,
		Composites:       composites,
		CreatedAt:        time.Now(),
	}
	if err := s.repo.Insert(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	slog.Info("assessment completed",
		"assessment_id", assessment.ID,
		"program", assessment.Program,
		"batch", assessment.Batch,
	)
	return assessment, nil
}

func (s *serviceImpl) Save(ctx context.Context, a *repositories.Assessment) (*repositories.Assessment, error) {
	if a.Program == "" || a.Batch == "" || a.YearOfGraduation == 0 ||
		a.IndirectResults == nil || a.DirectScores == nil || a.Composites == nil {
		return nil, ErrMissingFields
	}
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	return a, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (*repositories.Assessment, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	return record, nil
}

func (s *serviceImpl) List(ctx context.Context) ([]*repositories.Assessment, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return records, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	return nil
}

func (s *serviceImpl) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
