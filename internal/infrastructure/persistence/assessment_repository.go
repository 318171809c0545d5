// Package persistence implements the repository interfaces on SQLite.
// Structured fields (tallies, scores, student records) are stored as JSON
// text columns; relational columns carry only what listing and filtering
// need.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"obeserver/internal/domain/repositories"
)

// AssessmentRepository persists cohort assessments in the assessments table.
type AssessmentRepository struct {
	db *sql.DB
}

func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Insert(ctx context.Context, a *repositories.Assessment) error {
	indirect, err := json.Marshal(a.IndirectResults)
	if err != nil {
		return fmt.Errorf("failed to marshal indirect results: %w", err)
	}
	direct, err := json.Marshal(a.DirectScores)
	if err != nil {
		return fmt.Errorf("failed to marshal direct scores: %w", err)
	}
	composites, err := json.Marshal(a.Composites)
	if err != nil {
		return fmt.Errorf("failed to marshal composites: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO assessments (id, program, batch, year_of_graduation, indirect_results, direct_scores, composites, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Program, a.Batch, a.YearOfGraduation,
		string(indirect), string(direct), string(composites),
		a.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) GetByID(ctx context.Context, id string) (*repositories.Assessment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, program, batch, year_of_graduation, indirect_results, direct_scores, composites, created_at
		FROM assessments WHERE id = ?`, id)

	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return a, nil
}

func (r *AssessmentRepository) List(ctx context.Context) ([]*repositories.Assessment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, program, batch, year_of_graduation, indirect_results, direct_scores, composites, created_at
		FROM assessments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var result []*repositories.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *AssessmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *AssessmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assessments: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*repositories.Assessment, error) {
	var (
		a                       repositories.Assessment
		indirect, direct, comps string
		createdAt               string
	)
	if err := row.Scan(&a.ID, &a.Program, &a.Batch, &a.YearOfGraduation, &indirect, &direct, &comps, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(indirect), &a.IndirectResults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal indirect results: %w", err)
	}
	if err := json.Unmarshal([]byte(direct), &a.DirectScores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal direct scores: %w", err)
	}
	if err := json.Unmarshal([]byte(comps), &a.Composites); err != nil {
		return nil, fmt.Errorf("failed to unmarshal composites: %w", err)
	}
	a.CreatedAt = parseTimestamp(createdAt)
	return &a, nil
}

// parseTimestamp tolerates both RFC3339 values written by the repositories
// and SQLite's CURRENT_TIMESTAMP default format.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
