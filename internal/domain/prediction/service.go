package prediction

import (
	"context"
	"encoding/json"

	"obeserver/tabular"
)

// InputWidth is the model feature vector: gender, semester, then one value
// per outcome.
const InputWidth = 2 + tabular.OutcomeCount

// StudentForecast is the bulk-prediction result for one student: current
// outcome values, the model's semester-8 estimate, and the interpolated
// trajectory for semesters 5..7.
type StudentForecast struct {
	RegNo         string              `json:"reg_no"`
	Name          string              `json:"name"`
	OriginalPLOs  []float64           `json:"original_plos"`
	BySemester    map[string][]float64 `json:"by_semester"`
	PredictedPLOs []float64           `json:"predicted_plos"`
}

// BulkResult is the result of a bulk prediction upload.
type BulkResult struct {
	Count   int               `json:"count"`
	Results []StudentForecast `json:"results"`
}

// Service forwards sanitized feature vectors to the external scoring model.
type Service interface {
	// Predict sanitizes the rows and forwards them to the model server,
	// returning its response verbatim.
	Predict(ctx context.Context, inputs [][]float64) (json.RawMessage, error)

	// PredictBulk builds one feature vector per student row of a detected
	// prediction sheet, queries the model and interpolates the
	// semester-5..7 trajectory between current and predicted values.
	PredictBulk(ctx context.Context, sheet *tabular.Sheet) (*BulkResult, error)
}
