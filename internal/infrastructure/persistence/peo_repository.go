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

// PEORepository persists objective-survey analyses in the peo_analyses table.
type PEORepository struct {
	db *sql.DB
}

func NewPEORepository(db *sql.DB) *PEORepository {
	return &PEORepository{db: db}
}

func (r *PEORepository) Insert(ctx context.Context, a *repositories.PEOAnalysis) error {
	alumni, err := json.Marshal(a.Alumni)
	if err != nil {
		return fmt.Errorf("failed to marshal alumni percentages: %w", err)
	}
	employer, err := json.Marshal(a.Employer)
	if err != nil {
		return fmt.Errorf("failed to marshal employer percentages: %w", err)
	}
	averages, err := json.Marshal(a.Averages)
	if err != nil {
		return fmt.Errorf("failed to marshal averages: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO peo_analyses (id, batch, alumni, employer, averages, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Batch, string(alumni), string(employer), string(averages),
		a.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert peo analysis: %w", err)
	}
	return nil
}

func (r *PEORepository) GetByID(ctx context.Context, id string) (*repositories.PEOAnalysis, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, batch, alumni, employer, averages, created_at
		FROM peo_analyses WHERE id = ?`, id)

	a, err := scanPEOAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get peo analysis: %w", err)
	}
	return a, nil
}

func (r *PEORepository) List(ctx context.Context) ([]*repositories.PEOAnalysis, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, batch, alumni, employer, averages, created_at
		FROM peo_analyses ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list peo analyses: %w", err)
	}
	defer rows.Close()

	var result []*repositories.PEOAnalysis
	for rows.Next() {
		a, err := scanPEOAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan peo analysis: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *PEORepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM peo_analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete peo analysis: %w", err)
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

func (r *PEORepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM peo_analyses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count peo analyses: %w", err)
	}
	return count, nil
}

func scanPEOAnalysis(row rowScanner) (*repositories.PEOAnalysis, error) {
	var (
		a                          repositories.PEOAnalysis
		alumni, employer, averages string
		createdAt                  string
	)
	if err := row.Scan(&a.ID, &a.Batch, &alumni, &employer, &averages, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(alumni), &a.Alumni); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alumni percentages: %w", err)
	}
	if err := json.Unmarshal([]byte(employer), &a.Employer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal employer percentages: %w", err)
	}
	if err := json.Unmarshal([]byte(averages), &a.Averages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal averages: %w", err)
	}
	a.CreatedAt = parseTimestamp(createdAt)
	return &a, nil
}
