package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obeserver/database"
	"obeserver/internal/domain/repositories"
	"obeserver/scoring"
	"obeserver/tabular"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAssessmentRepositoryRoundTrip(t *testing.T) {
	repo := NewAssessmentRepository(testDB(t))
	ctx := context.Background()

	record := &repositories.Assessment{
		ID:               "a1",
		Program:          "Software Engineering",
		Batch:            "20SW",
		YearOfGraduation: 2024,
		IndirectResults: map[int]tabular.Tally{
			1: {CountPositive: 6, TotalResponses: 10, QuestionCount: 1, Percentage: 60},
		},
		DirectScores: map[int]float64{1: 90},
		Composites:   map[int]scoring.Composite{1: scoring.Combine(60, 90)},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Insert(ctx, record))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "20SW", got.Batch)
	assert.Equal(t, 60.0, got.IndirectResults[1].Percentage)
	assert.Equal(t, 84.0, got.Composites[1].Cumulative)
	assert.False(t, got.CreatedAt.IsZero())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, "a1"))
	_, err = repo.GetByID(ctx, "a1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "a1"), repositories.ErrNotFound)
}

func TestPEORepositoryRoundTrip(t *testing.T) {
	repo := NewPEORepository(testDB(t))
	ctx := context.Background()

	record := &repositories.PEOAnalysis{
		ID:        "p1",
		Batch:     "20SW",
		Alumni:    map[int]float64{1: 100, 2: 50},
		Employer:  map[int]float64{1: 50, 2: 50},
		Averages:  map[int]float64{1: 75, 2: 50},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Insert(ctx, record))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 75.0, got.Averages[1])
	assert.Equal(t, 100.0, got.Alumni[1])

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFinalResultRepositoryRoundTrip(t *testing.T) {
	repo := NewFinalResultRepository(testDB(t))
	ctx := context.Background()

	record := &repositories.FinalResultAnalysis{
		ID:        "f1",
		Batch:     "20SW",
		FileNames: []string{"failures.xlsx", "scores.xlsx"},
		Students: []repositories.StudentRecord{
			{
				Key:             "20SW01",
				Name:            "Ali",
				NameKnown:       true,
				Outcomes:        map[int]tabular.Score{1: tabular.NewScore(85)},
				FromFailureList: true,
				FromScoreList:   true,
			},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Insert(ctx, record))

	got, err := repo.GetByID(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, got.Students, 1)
	assert.Equal(t, tabular.NewScore(85), got.Students[0].Outcomes[1])
	assert.True(t, got.Students[0].FromFailureList)

	// Listing projects the summary only.
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"failures.xlsx", "scores.xlsx"}, list[0].FileNames)

	require.NoError(t, repo.Delete(ctx, "f1"))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
