// Package repositories defines the persistence interfaces and persisted
// models shared by the domain services. Implementations live in
// internal/infrastructure/persistence.
package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no record matches the id.
// Domain services translate it into their own not-found errors.
var ErrNotFound = errors.New("record not found")

// AssessmentRepository stores cohort-level PLO assessments.
type AssessmentRepository interface {
	Insert(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id string) (*Assessment, error)
	List(ctx context.Context) ([]*Assessment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// PEORepository stores objective-level analyses.
type PEORepository interface {
	Insert(ctx context.Context, a *PEOAnalysis) error
	GetByID(ctx context.Context, id string) (*PEOAnalysis, error)
	List(ctx context.Context) ([]*PEOAnalysis, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// FinalResultRepository stores completed merge analyses. Listing returns
// summaries only; the full student set is loaded per record.
type FinalResultRepository interface {
	Insert(ctx context.Context, a *FinalResultAnalysis) error
	GetByID(ctx context.Context, id string) (*FinalResultAnalysis, error)
	List(ctx context.Context) ([]FinalResultSummary, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
