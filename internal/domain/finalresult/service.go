package finalresult

import (
	"context"
	"time"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

// StagingRetention is how long partially-uploaded datasets are kept before
// a session becomes unreachable. A safety net against abandoned sessions,
// not a correctness guarantee.
const StagingRetention = time.Hour

// SessionStore is the transient keyed store for two-phase uploads. The
// staging implementation enforces StagingRetention: an expired session is
// indistinguishable from a missing one.
type SessionStore interface {
	Get(sessionID string) (*repositories.StagingSession, bool)
	Put(session *repositories.StagingSession)
	// Delete removes the session and reports whether it was present, so a
	// concurrent second finalize observes the session as already gone.
	Delete(sessionID string) bool
}

// Detail is the full view of a completed analysis: the population plus
// both derived partitions.
type Detail struct {
	ID        string     `json:"id"`
	Batch     string     `json:"batch"`
	FileNames []string   `json:"file_names"`
	Partitions
	CreatedAt time.Time `json:"created_at"`
}

// Service is the business logic of the two-phase final-result flow.
type Service interface {
	// StageFailureFile stores the failure list under the session, creating
	// the session if needed. Returns the batch detected from the first row.
	StageFailureFile(ctx context.Context, sessionID string, sheet *tabular.Sheet, fileName string) (string, error)

	// StageScoreFile stores the full score list. The session must already
	// hold a failure list. Returns the number of staged rows.
	StageScoreFile(ctx context.Context, sessionID string, sheet *tabular.Sheet, fileName string) (int, error)

	// Finalize merges the staged datasets, persists the analysis and
	// deletes the session. Returns the new record id.
	Finalize(ctx context.Context, sessionID string) (string, error)

	Get(ctx context.Context, id string) (*Detail, error)
	List(ctx context.Context) ([]repositories.FinalResultSummary, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
