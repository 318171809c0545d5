package finalresult

import "strings"

// EntityKey is the normalized join key of a student row: the
// registration/batch code, trimmed and case-folded. The source sheets carry
// it as free text with no uniqueness enforcement, so every comparison in
// this package goes through NormalizeKey rather than ad hoc trimming at
// call sites.
type EntityKey string

// NormalizeKey builds the comparison form of a raw key cell.
func NormalizeKey(raw string) EntityKey {
	return EntityKey(strings.ToLower(strings.TrimSpace(raw)))
}

// IsZero reports whether the key is empty after normalization. Rows with a
// zero key cannot be joined and are skipped by the merger.
func (k EntityKey) IsZero() bool {
	return k == ""
}
