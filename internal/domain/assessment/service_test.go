package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

type memoryRepo struct {
	records map[string]*repositories.Assessment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]*repositories.Assessment)}
}

func (m *memoryRepo) Insert(_ context.Context, a *repositories.Assessment) error {
	m.records[a.ID] = a
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*repositories.Assessment, error) {
	a, ok := m.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return a, nil
}

func (m *memoryRepo) List(_ context.Context) ([]*repositories.Assessment, error) {
	out := make([]*repositories.Assessment, 0, len(m.records))
	for _, a := range m.records {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memoryRepo) Count(_ context.Context) (int, error) {
	return len(m.records), nil
}

func TestProcessIndirect(t *testing.T) {
	svc := NewService(newMemoryRepo())

	q1 := "I am confident to apply engineering knowledge in the field"
	sheet := &tabular.Sheet{
		Headers: []string{"Program (Department/Institute)", "Batch", "Year of Graduation", q1},
		Rows: []tabular.Row{
			{"Program (Department/Institute)": "Software Engineering", "Batch": "20SW", "Year of Graduation": "2024", q1: "Strongly Agree (4)"},
			{q1: "Agree (3)"},
			{q1: "Strongly Agree (4)"},
		},
	}

	result, err := svc.ProcessIndirect(context.Background(), sheet)
	require.NoError(t, err)

	assert.Equal(t, "Software Engineering", result.Program)
	assert.Equal(t, "20SW", result.Batch)
	assert.Equal(t, 2024, result.YearOfGraduation)

	tally := result.Tallies[1]
	assert.Equal(t, 2, tally.CountPositive)
	assert.Equal(t, 3, tally.TotalResponses)
	assert.InDelta(t, 66.67, tally.Percentage, 0.001)

	// Questions absent from the sheet report zero responses.
	assert.Equal(t, tabular.Tally{QuestionCount: 1}, result.Tallies[2])
}

func TestProcessIndirectEmptySheet(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.ProcessIndirect(context.Background(), &tabular.Sheet{Headers: []string{"Q"}})
	assert.ErrorIs(t, err, tabular.ErrEmptyInput)
}

func TestProcessDirect(t *testing.T) {
	svc := NewService(newMemoryRepo())

	sheet := &tabular.Sheet{
		Headers: []string{"PLOs", "PLO Direct Assessment (%)"},
		Rows: []tabular.Row{
			{"PLOs": "PLO 1", "PLO Direct Assessment (%)": "85.5"},
			{"PLOs": "PLO 3", "PLO Direct Assessment (%)": "120"},
			{"PLOs": "PLO 13", "PLO Direct Assessment (%)": "50"},
			{"PLOs": "not a plo", "PLO Direct Assessment (%)": "50"},
		},
	}

	scores, err := svc.ProcessDirect(context.Background(), sheet)
	require.NoError(t, err)

	assert.Equal(t, 85.5, scores[1])
	assert.Equal(t, 100.0, scores[3], "values clamp into [0,100]")
	assert.Equal(t, 0.0, scores[2], "unmentioned outcomes default to 0")
	assert.Len(t, scores, tabular.OutcomeCount)
}

func TestProcessDirectMissingColumns(t *testing.T) {
	svc := NewService(newMemoryRepo())

	sheet := &tabular.Sheet{
		Headers: []string{"Something", "Else"},
		Rows:    []tabular.Row{{"Something": "x"}},
	}

	_, err := svc.ProcessDirect(context.Background(), sheet)
	assert.ErrorIs(t, err, ErrNoDirectColumns)
}

func TestComplete(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	tallies := map[int]tabular.Tally{
		1: {CountPositive: 6, TotalResponses: 10, QuestionCount: 1, Percentage: 60},
	}
	direct := map[int]float64{1: 90}

	record, err := svc.Complete(context.Background(), CompleteRequest{
		Program:          "Software Engineering",
		Batch:            "20SW",
		YearOfGraduation: 2024,
		Tallies:          tallies,
		DirectScores:     direct,
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)

	c := record.Composites[1]
	assert.Equal(t, 12.0, c.WeightedIndirect)
	assert.Equal(t, 72.0, c.WeightedDirect)
	assert.Equal(t, 84.0, c.Cumulative)

	// Outcomes with no data blend to zero.
	assert.Equal(t, 0.0, record.Composites[2].Cumulative)
	assert.Len(t, record.Composites, tabular.OutcomeCount)

	assert.Contains(t, repo.records, record.ID)
}

func TestCompleteMissingFields(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Complete(context.Background(), CompleteRequest{Program: "SE"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestGetAndDelete(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	record, err := svc.Complete(ctx, CompleteRequest{
		Program:          "SE",
		Batch:            "20SW",
		YearOfGraduation: 2024,
		Tallies:          map[int]tabular.Tally{},
		DirectScores:     map[int]float64{},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, record.ID))
	_, err = svc.Get(ctx, record.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, record.ID), ErrRecordNotFound)
}
