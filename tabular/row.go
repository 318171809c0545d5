// Package tabular normalizes loosely-structured spreadsheet data into
// canonical per-outcome values: fuzzy header matching, Likert response
// extraction, grade coercion and response tallies.
package tabular

import (
	"errors"
	"strings"
)

// Domain-specific errors for tabular normalization
var (
	ErrEmptyInput = errors.New("sheet contains no data rows")
)

// Row is one data row of a sheet, keyed by the column label exactly as it
// appears in the source. Empty cells are empty strings.
type Row map[string]string

// Sheet is an ordered view of a parsed worksheet. Headers preserves the
// source column order, which matters for first-match-wins policies.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// Get returns the trimmed cell value for a column label.
func (r Row) Get(label string) string {
	return strings.TrimSpace(r[label])
}

// GetCanonical returns the first cell whose canonicalized header equals one
// of the given canonical names, in header order.
func (s *Sheet) GetCanonical(row Row, names ...string) (string, bool) {
	for _, h := range s.Headers {
		canon := CanonicalizeHeader(h)
		for _, name := range names {
			if canon == name {
				return row.Get(h), true
			}
		}
	}
	return "", false
}

// ColumnByCanonical returns the original header whose canonical form equals
// one of the given names.
func (s *Sheet) ColumnByCanonical(names ...string) (string, bool) {
	for _, h := range s.Headers {
		canon := CanonicalizeHeader(h)
		for _, name := range names {
			if canon == name {
				return h, true
			}
		}
	}
	return "", false
}
