package tabular

import (
	"fmt"
	"strings"
	"unicode"
)

// OutcomeCount is the number of tracked Program Learning Outcomes.
const OutcomeCount = 12

// ObjectiveCount is the number of tracked Program Educational Objectives.
const ObjectiveCount = 4

// CanonicalizeHeader strips whitespace and punctuation from a column label
// and lowercases it, so "SE PLO 01", "seplo01" and "SePlo1." compare equal
// after alias expansion.
func CanonicalizeHeader(label string) string {
	var b strings.Builder
	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// outcomeAliases returns the accepted canonical spellings for one outcome
// slot, e.g. outcome 3 accepts seplo03, seplo3, plo03 and plo3.
func outcomeAliases(i int) []string {
	padded := fmt.Sprintf("%02d", i)
	return []string{
		"seplo" + padded,
		fmt.Sprintf("seplo%d", i),
		"plo" + padded,
		fmt.Sprintf("plo%d", i),
	}
}

// OutcomeIndex resolves a column label to an outcome slot in [1,max].
// Returns 0 when the label matches no slot; an out-of-range label such as
// "SE PLO 13" never matches. First alias match wins.
func OutcomeIndex(label string, max int) int {
	canon := CanonicalizeHeader(label)
	if canon == "" {
		return 0
	}
	for i := 1; i <= max; i++ {
		for _, alias := range outcomeAliases(i) {
			if canon == alias {
				return i
			}
		}
	}
	return 0
}

// OutcomeColumns maps each outcome slot to the first matching column of the
// sheet. Slots without a matching column are left out of the result.
func (s *Sheet) OutcomeColumns(max int) map[int]string {
	columns := make(map[int]string)
	for _, h := range s.Headers {
		i := OutcomeIndex(h, max)
		if i == 0 {
			continue
		}
		if _, taken := columns[i]; !taken {
			columns[i] = h
		}
	}
	return columns
}

// HasOutcomeColumn reports whether any header of the sheet looks like an
// outcome column. Used by header-row detection for bulk inputs.
func HasOutcomeColumn(labels []string) bool {
	for _, l := range labels {
		canon := CanonicalizeHeader(l)
		if strings.HasPrefix(canon, "seplo") || strings.HasPrefix(canon, "plo") {
			return true
		}
	}
	return false
}
