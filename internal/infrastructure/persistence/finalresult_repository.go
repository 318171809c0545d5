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

// FinalResultRepository persists merged student analyses in the
// final_results table. The student set can be large, so List projects
// summary columns only.
type FinalResultRepository struct {
	db *sql.DB
}

func NewFinalResultRepository(db *sql.DB) *FinalResultRepository {
	return &FinalResultRepository{db: db}
}

func (r *FinalResultRepository) Insert(ctx context.Context, a *repositories.FinalResultAnalysis) error {
	fileNames, err := json.Marshal(a.FileNames)
	if err != nil {
		return fmt.Errorf("failed to marshal file names: %w", err)
	}
	students, err := json.Marshal(a.Students)
	if err != nil {
		return fmt.Errorf("failed to marshal students: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO final_results (id, batch, file_names, students, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Batch, string(fileNames), string(students),
		a.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert final result: %w", err)
	}
	return nil
}

func (r *FinalResultRepository) GetByID(ctx context.Context, id string) (*repositories.FinalResultAnalysis, error) {
	var (
		a                   repositories.FinalResultAnalysis
		fileNames, students string
		createdAt           string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, batch, file_names, students, created_at
		FROM final_results WHERE id = ?`, id).
		Scan(&a.ID, &a.Batch, &fileNames, &students, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get final result: %w", err)
	}

	if err := json.Unmarshal([]byte(fileNames), &a.FileNames); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file names: %w", err)
	}
	if err := json.Unmarshal([]byte(students), &a.Students); err != nil {
		return nil, fmt.Errorf("failed to unmarshal students: %w", err)
	}
	a.CreatedAt = parseTimestamp(createdAt)
	return &a, nil
}

func (r *FinalResultRepository) List(ctx context.Context) ([]repositories.FinalResultSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, batch, file_names, created_at
		FROM final_results ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list final results: %w", err)
	}
	defer rows.Close()

	var result []repositories.FinalResultSummary
	for rows.Next() {
		var (
			s         repositories.FinalResultSummary
			fileNames string
			createdAt string
		)
		if err := rows.Scan(&s.ID, &s.Batch, &fileNames, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan final result summary: %w", err)
		}
		if err := json.Unmarshal([]byte(fileNames), &s.FileNames); err != nil {
			return nil, fmt.Errorf("failed to unmarshal file names: %w", err)
		}
		s.CreatedAt = parseTimestamp(createdAt)
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *FinalResultRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM final_results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete final result: %w", err)
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

func (r *FinalResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM final_results`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count final results: %w", err)
	}
	return count, nil
}
