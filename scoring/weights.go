// Package scoring computes the weighted indirect/direct attainment blend
// for one outcome. The arithmetic is a compatibility contract: every step
// is rounded to 2 decimals BEFORE summing, matching the historical reports
// this system replaces. Summing first can differ by up to ±0.01 and would
// break comparison against archived results.
package scoring

import "math"

// Blend weights for the two assessment sources. They must sum to 1.
const (
	WeightIndirect = 0.2
	WeightDirect   = 0.8
)

// Composite is the weighted attainment of one outcome.
type Composite struct {
	IndirectRaw      float64 `json:"indirect_raw"`
	DirectRaw        float64 `json:"direct_raw"`
	WeightedIndirect float64 `json:"weighted_indirect"`
	WeightedDirect   float64 `json:"weighted_direct"`
	Cumulative       float64 `json:"cumulative"`
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Combine blends an indirect and a direct percentage (0-100, absent values
// already defaulted to 0 by the caller) into the composite score.
func Combine(indirect, direct float64) Composite {
	weightedIndirect := Round2(indirect * WeightIndirect)
	weightedDirect := Round2(direct * WeightDirect)
	return Composite{
		IndirectRaw:      indirect,
		DirectRaw:        direct,
		WeightedIndirect: weightedIndirect,
		WeightedDirect:   weightedDirect,
		Cumulative:       Round2(weightedIndirect + weightedDirect),
	}
}
