package finalresult

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

// serviceImpl implements Service on top of a session store and the
// final-result repository.
type serviceImpl struct {
	sessions SessionStore
	repo     repositories.FinalResultRepository
}

// NewService creates the final-result domain service.
func NewService(sessions SessionStore, repo repositories.FinalResultRepository) Service {
	return &serviceImpl{sessions: sessions, repo: repo}
}

func (s *serviceImpl) StageFailureFile(ctx context.Context, sessionID string, sheet *tabular.Sheet, fileName string) (string, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		session = &repositories.StagingSession{
			SessionID: sessionID,
			CreatedAt: time.Now(),
		}
	}
	session.FailureSheet = sheet
	session.FailureFileName = fileName
	session.Batch = detectBatch(sheet)
	s.sessions.Put(session)

	slog.Info("staged failure list",
		"session_id", sessionID,
		"file", fileName,
		"rows", len(sheet.Rows),
		"batch", session.Batch,
	)
	return session.Batch, nil
}

func (s *serviceImpl) StageScoreFile(ctx context.Context, sessionID string, sheet *tabular.Sheet, fileName string) (int, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return 0, fmt.Errorf("stage score list: %w", ErrSessionNotFound)
	}
	session.ScoreSheet = sheet
	session.ScoreFileName = fileName
	s.sessions.Put(session)

	slog.Info("staged score list",
		"session_id", sessionID,
		"file", fileName,
		"rows", len(sheet.Rows),
	)
	return len(sheet.Rows), nil
}

func (s *serviceImpl) Finalize(ctx context.Context, sessionID string) (string, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", fmt.Errorf("finalize: %w", ErrSessionNotFound)
	}
	if !stagedComplete(session) {
		return "", fmt.Errorf("finalize session %s: %w", sessionID, ErrIncompleteUpload)
	}

	students := MergeSheets(session.FailureSheet, session.ScoreSheet)
	analysis := &repositories.FinalResultAnalysis{
		ID:        uuid.New().String(),
		Batch:     session.Batch,
		FileNames: stagedFileNames(session),
		Students:  students,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, analysis); err != nil {
		return "", fmt.Errorf("failed to save final result: %w", err)
	}

	// Delete the session only after the analysis is durable. A concurrent
	// finalize that lost the race finds the session gone and fails with
	// SessionNotFound instead of silently re-running.
	s.sessions.Delete(sessionID)

	slog.Info("final result calculated",
		"session_id", sessionID,
		"analysis_id", analysis.ID,
		"students", len(students),
	)
	return analysis.ID, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (*Detail, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load final result: %w", err)
	}
	return &Detail{
		ID:         record.ID,
		Batch:      record.Batch,
		FileNames:  record.FileNames,
		Partitions: Partition(record.Students),
		CreatedAt:  record.CreatedAt,
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) ([]repositories.FinalResultSummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list final results: %w", err)
	}
	return summaries, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete final result: %w", err)
	}
	return nil
}

func (s *serviceImpl) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func stagedComplete(session *repositories.StagingSession) bool {
	return session.FailureSheet != nil && len(session.FailureSheet.Rows) > 0 &&
		session.ScoreSheet != nil && len(session.ScoreSheet.Rows) > 0
}

func stagedFileNames(session *repositories.StagingSession) []string {
	names := make([]string, 0, 2)
	if session.FailureFileName != "" {
		names = append(names, session.FailureFileName)
	}
	if session.ScoreFileName != "" {
		names = append(names, session.ScoreFileName)
	}
	return names
}

// detectBatch reads the cohort label from the first row's batch column.
func detectBatch(sheet *tabular.Sheet) string {
	if len(sheet.Rows) == 0 {
		return ""
	}
	raw, _ := sheet.GetCanonical(sheet.Rows[0], "batch")
	return strings.TrimSpace(raw)
}
