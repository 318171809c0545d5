package finalresult

import "obeserver/internal/domain/repositories"

// AttainmentThreshold is the outcome percentage below which a passed
// student is reported as "passed but did not attain".
const AttainmentThreshold = 50.0

// Partitions are the three derived views of a merged student population.
// All three preserve the merge insertion order; no sorting is imposed here.
type Partitions struct {
	// Students is the full population, unfiltered.
	Students []repositories.StudentRecord `json:"students"`

	// BelowThreshold holds students not on the failure list that have at
	// least one outcome strictly below the attainment threshold.
	BelowThreshold []repositories.StudentRecord `json:"below_threshold"`

	// FailureList is the comprehensive failure list, with best-effort
	// display names backfilled from the full population.
	FailureList []repositories.StudentRecord `json:"failure_list"`
}

// Partition derives the report views from a merged population.
func Partition(students []repositories.StudentRecord) Partitions {
	p := Partitions{Students: students}
	for _, s := range students {
		if s.FromFailureList {
			p.FailureList = append(p.FailureList, backfillName(s, students))
			continue
		}
		if hasOutcomeBelow(s, AttainmentThreshold) {
			p.BelowThreshold = append(p.BelowThreshold, s)
		}
	}
	return p
}

func hasOutcomeBelow(s repositories.StudentRecord, threshold float64) bool {
	for _, score := range s.Outcomes {
		if score.Valid && score.Value < threshold {
			return true
		}
	}
	return false
}

// backfillName substitutes a display name for a failure-list student whose
// name was never supplied, by searching the population for another record
// with the same normalized key. Display-only: the stored record keeps its
// unknown name.
func backfillName(s repositories.StudentRecord, students []repositories.StudentRecord) repositories.StudentRecord {
	if s.NameKnown {
		return s
	}
	key := NormalizeKey(s.Key)
	for _, other := range students {
		if other.NameKnown && NormalizeKey(other.Key) == key {
			s.Name = other.Name
			s.NameKnown = true
			return s
		}
	}
	return s
}
