package finalresult

import (
	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

// mergeIndex accumulates student records keyed by normalized key while
// preserving first-sighting order, which is the order views are reported in.
type mergeIndex struct {
	order   []EntityKey
	records map[EntityKey]*repositories.StudentRecord
}

func newMergeIndex() *mergeIndex {
	return &mergeIndex{records: make(map[EntityKey]*repositories.StudentRecord)}
}

func (m *mergeIndex) get(key EntityKey) (*repositories.StudentRecord, bool) {
	rec, ok := m.records[key]
	return rec, ok
}

func (m *mergeIndex) put(key EntityKey, rec *repositories.StudentRecord) {
	if _, exists := m.records[key]; !exists {
		m.order = append(m.order, key)
	}
	m.records[key] = rec
}

func (m *mergeIndex) list() []repositories.StudentRecord {
	out := make([]repositories.StudentRecord, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, *m.records[key])
	}
	return out
}

// MergeSheets folds the failure list and the score list into unified
// per-student records. The failure list MUST be processed first: it seeds
// records with unknown names and no outcome data, and tags them so the
// report partitioner can tell failure students apart without resorting to
// name sentinels. Re-running the merge on the same two sheets yields an
// identical record set.
func MergeSheets(failure, score *tabular.Sheet) []repositories.StudentRecord {
	idx := newMergeIndex()
	seedFailureRows(idx, failure)
	foldScoreRows(idx, score)
	return idx.list()
}

func seedFailureRows(idx *mergeIndex, sheet *tabular.Sheet) {
	for _, row := range sheet.Rows {
		raw, _ := sheet.GetCanonical(row, "batch", "registrationno")
		key := NormalizeKey(raw)
		if key.IsZero() {
			continue
		}
		rec := &repositories.StudentRecord{
			Key:             raw,
			Outcomes:        make(map[int]tabular.Score),
			FromFailureList: true,
		}
		if name, _ := sheet.GetCanonical(row, "name"); name != "" {
			rec.Name = name
			rec.NameKnown = true
		}
		idx.put(key, rec)
	}
}

// foldScoreRows merges the full score list into the seeded index. Matched
// outcome columns overwrite per outcome (last file wins); columns the row
// does not carry leave earlier values untouched. A non-blank name always
// replaces an unknown one, and the last non-blank name wins overall.
func foldScoreRows(idx *mergeIndex, sheet *tabular.Sheet) {
	columns := sheet.OutcomeColumns(tabular.OutcomeCount)
	for _, row := range sheet.Rows {
		raw, _ := sheet.GetCanonical(row, "batch", "registrationno")
		key := NormalizeKey(raw)
		if key.IsZero() {
			continue
		}
		rec, ok := idx.get(key)
		if !ok {
			rec = &repositories.StudentRecord{
				Key:      raw,
				Outcomes: make(map[int]tabular.Score),
			}
		}
		rec.FromScoreList = true
		for i, column := range columns {
			if s := tabular.ParseScore(row.Get(column)); s.Valid {
				rec.Outcomes[i] = s
			}
		}
		if name, _ := sheet.GetCanonical(row, "name"); name != "" {
			rec.Name = name
			rec.NameKnown = true
		}
		idx.put(key, rec)
	}
}
