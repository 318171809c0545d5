package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"obeserver/tabular"
)

// Defaults for the model client. The semester range matches the degree
// program: predictions extrapolate a semester-6 snapshot to semester 8.
const (
	defaultTimeout  = 20 * time.Second
	currentSemester = 6
	minSemester     = 1
	maxSemester     = 7
)

type serviceImpl struct {
	modelURL string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewService creates the prediction service. The limiter guards the model
// server against bursts of bulk uploads.
func NewService(modelURL string, timeout time.Duration, limiter *rate.Limiter) Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &serviceImpl{
		modelURL: modelURL,
		client:   &http.Client{Timeout: timeout},
		limiter:  limiter,
	}
}

func (s *serviceImpl) Predict(ctx context.Context, inputs [][]float64) (json.RawMessage, error) {
	if len(inputs) == 0 {
		return nil, ErrInvalidInput
	}
	sanitized := make([][]float64, len(inputs))
	for i, row := range inputs {
		sanitized[i] = sanitizeRow(row)
	}
	return s.invoke(ctx, sanitized)
}

func (s *serviceImpl) PredictBulk(ctx context.Context, sheet *tabular.Sheet) (*BulkResult, error) {
	if len(sheet.Rows) == 0 {
		return nil, tabular.ErrEmptyInput
	}
	columns := sheet.OutcomeColumns(tabular.OutcomeCount)

	inputs := make([][]float64, 0, len(sheet.Rows))
	regNos := make([]string, 0, len(sheet.Rows))
	names := make([]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		regNo, _ := sheet.GetCanonical(row, "registrationno", "regno", "registration", "rollno")
		name, _ := sheet.GetCanonical(row, "name")

		vector := make([]float64, 0, InputWidth)
		vector = append(vector, -1, currentSemester) // gender unknown for bulk sheets
		for i := 1; i <= tabular.OutcomeCount; i++ {
			value := 0.0
			if column, ok := columns[i]; ok {
				if score := tabular.ParseScore(row.Get(column)); score.Valid {
					value = score.Value
				}
			}
			vector = append(vector, value)
		}
		inputs = append(inputs, vector)
		regNos = append(regNos, regNo)
		names = append(names, name)
	}

	raw, err := s.invoke(ctx, inputs)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Predictions [][]float64 `json:"predictions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	results := make([]StudentForecast, 0, len(payload.Predictions))
	for i, predicted := range payload.Predictions {
		if i >= len(inputs) {
			break
		}
		original := inputs[i][2:InputWidth]
		results = append(results, buildForecast(regNos[i], names[i], original, predicted))
	}
	return &BulkResult{Count: len(results), Results: results}, nil
}

// buildForecast interpolates the semester-5..7 values linearly between the
// current value and the model's semester-8 estimate, clamped to [0,100].
func buildForecast(regNo, name string, original, predicted []float64) StudentForecast {
	sem8 := make([]float64, tabular.OutcomeCount)
	sem5 := make([]float64, tabular.OutcomeCount)
	sem6 := make([]float64, tabular.OutcomeCount)
	sem7 := make([]float64, tabular.OutcomeCount)
	for p := 0; p < tabular.OutcomeCount; p++ {
		o := original[p]
		e := o
		if p < len(predicted) && !math.IsNaN(predicted[p]) {
			e = predicted[p]
		}
		step := (e - o) / 4
		sem8[p] = e
		sem5[p] = tabular.ClampPercent(o + step)
		sem6[p] = tabular.ClampPercent(o + 2*step)
		sem7[p] = tabular.ClampPercent(o + 3*step)
	}
	return StudentForecast{
		RegNo:        regNo,
		Name:         name,
		OriginalPLOs: original,
		BySemester: map[string][]float64{
			"sem5": sem5,
			"sem6": sem6,
			"sem7": sem7,
			"sem8": sem8,
		},
		PredictedPLOs: sem8,
	}
}

// sanitizeRow forces a raw payload row into model range: gender in
// {-1,0,1}, semester rounded and clamped, outcome values clamped to
// [0,100]. Short rows are zero-padded, long rows truncated.
func sanitizeRow(row []float64) []float64 {
	out := make([]float64, InputWidth)
	copy(out, row)
	if out[0] != -1 && out[0] != 0 && out[0] != 1 {
		out[0] = 0
	}
	sem := math.Round(out[1])
	if math.IsNaN(sem) || sem < minSemester {
		sem = minSemester
	}
	if sem > maxSemester {
		sem = maxSemester
	}
	out[1] = sem
	for i := 2; i < InputWidth; i++ {
		if math.IsNaN(out[i]) {
			out[i] = 0
			continue
		}
		out[i] = tabular.ClampPercent(out[i])
	}
	return out
}

func (s *serviceImpl) invoke(ctx context.Context, inputs [][]float64) (json.RawMessage, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(map[string][][]float64{"inputs": inputs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode model request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.modelURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		slog.Error("model server returned error",
			"status", resp.StatusCode,
			"body_len", len(raw),
		)
		return nil, fmt.Errorf("%w: status %d", ErrModelServer, resp.StatusCode)
	}
	return raw, nil
}
