package tabular

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseResponse extracts the numeric rating from a survey cell. A numeric
// cell is used as-is; for free text the first run of digits counts, so
// "Strongly Agree (4)" yields 4. Cells with no usable number ("N/A", blank)
// do not count as a response.
func ParseResponse(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	if m := digitRun.FindString(cell); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
