package tabular

import (
	"math"
	"strconv"
	"strings"
)

// Score is a tagged optional outcome value. Absent means "no data", which is
// distinct from zero: a later source file may still fill the value in.
type Score struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// NewScore returns a present score.
func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

// ParseScore coerces a cell into an outcome percentage. Empty or
// non-numeric cells are absent. Percentages are clamped to [0,100].
func ParseScore(cell string) Score {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Score{}
	}
	return NewScore(ClampPercent(v))
}

// ClampPercent clamps a value into the [0,100] percentage range.
func ClampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
