package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	c := Combine(60, 90)

	assert.Equal(t, 60.0, c.IndirectRaw)
	assert.Equal(t, 90.0, c.DirectRaw)
	assert.Equal(t, 12.0, c.WeightedIndirect)
	assert.Equal(t, 72.0, c.WeightedDirect)
	assert.Equal(t, 84.0, c.Cumulative)
}

func TestCombineZeroInputs(t *testing.T) {
	c := Combine(0, 0)

	assert.Equal(t, 0.0, c.Cumulative)
}

func TestCombineStepwiseRounding(t *testing.T) {
	// Each weighted term is rounded before summing. 33.33*0.2 = 6.666 -> 6.67
	// and 66.67*0.8 = 53.336 -> 53.34, so the cumulative is 60.01, not the
	// 60.00 that rounding once at the end would give.
	c := Combine(33.33, 66.67)

	assert.Equal(t, 6.67, c.WeightedIndirect)
	assert.Equal(t, 53.34, c.WeightedDirect)
	assert.Equal(t, 60.01, c.Cumulative)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(66.666))
	assert.Equal(t, 66.66, Round2(66.664))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.23, Round2(-1.226))
}
