package prediction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obeserver/tabular"
)

func modelServer(t *testing.T, handler func(inputs [][]float64) any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Inputs [][]float64 `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(handler(payload.Inputs)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSanitizeRow(t *testing.T) {
	row := sanitizeRow([]float64{5, 9.6, 120, -4, 50})

	assert.Equal(t, 0.0, row[0], "unexpected gender codes collapse to 0")
	assert.Equal(t, 7.0, row[1], "semester rounds and clamps to the degree range")
	assert.Equal(t, 100.0, row[2])
	assert.Equal(t, 0.0, row[3])
	assert.Equal(t, 50.0, row[4])
	assert.Len(t, row, InputWidth, "short rows are zero-padded")
	assert.Equal(t, 0.0, row[InputWidth-1])
}

func TestSanitizeRowValidGender(t *testing.T) {
	assert.Equal(t, -1.0, sanitizeRow([]float64{-1, 3})[0])
	assert.Equal(t, 1.0, sanitizeRow([]float64{1, 3})[0])
	assert.Equal(t, 1.0, sanitizeRow([]float64{0, 0.4})[1], "semester floor is 1")
}

func TestPredictForwardsSanitizedInputs(t *testing.T) {
	var got [][]float64
	srv := modelServer(t, func(inputs [][]float64) any {
		got = inputs
		return map[string]any{"predictions": [][]float64{{80}}}
	})

	svc := NewService(srv.URL, time.Second, nil)

	raw, err := svc.Predict(context.Background(), [][]float64{{2, 10, 150}})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0][0])
	assert.Equal(t, 7.0, got[0][1])
	assert.Equal(t, 100.0, got[0][2])

	var resp struct {
		Predictions [][]float64 `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, [][]float64{{80}}, resp.Predictions)
}

func TestPredictEmptyInput(t *testing.T) {
	svc := NewService("http://unused.invalid", time.Second, nil)

	_, err := svc.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPredictModelServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	svc := NewService(srv.URL, time.Second, nil)

	_, err := svc.Predict(context.Background(), [][]float64{{0, 6, 50}})
	assert.ErrorIs(t, err, ErrModelServer)
}

func TestPredictBulk(t *testing.T) {
	srv := modelServer(t, func(inputs [][]float64) any {
		// One semester-8 estimate per input row, one value per outcome.
		predictions := make([][]float64, len(inputs))
		for i := range inputs {
			row := make([]float64, tabular.OutcomeCount)
			for p := range row {
				row[p] = 80
			}
			predictions[i] = row
		}
		return map[string]any{"predictions": predictions}
	})

	svc := NewService(srv.URL, time.Second, nil)

	sheet := &tabular.Sheet{
		Headers: []string{"Reg No", "Name", "SEPLO1"},
		Rows: []tabular.Row{
			{"Reg No": "20SW01", "Name": "Ali", "SEPLO1": "40"},
		},
	}

	result, err := svc.PredictBulk(context.Background(), sheet)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	f := result.Results[0]
	assert.Equal(t, "20SW01", f.RegNo)
	assert.Equal(t, "Ali", f.Name)
	assert.Equal(t, 40.0, f.OriginalPLOs[0])
	assert.Equal(t, 80.0, f.PredictedPLOs[0])

	// Linear interpolation from 40 to 80 in steps of 10.
	assert.Equal(t, 50.0, f.BySemester["sem5"][0])
	assert.Equal(t, 60.0, f.BySemester["sem6"][0])
	assert.Equal(t, 70.0, f.BySemester["sem7"][0])
	assert.Equal(t, 80.0, f.BySemester["sem8"][0])

	// Outcomes without a sheet column enter the vector as 0.
	assert.Equal(t, 0.0, f.OriginalPLOs[1])
}

func TestPredictBulkEmptySheet(t *testing.T) {
	svc := NewService("http://unused.invalid", time.Second, nil)

	_, err := svc.PredictBulk(context.Background(), &tabular.Sheet{Headers: []string{"Reg No"}})
	assert.ErrorIs(t, err, tabular.ErrEmptyInput)
}
