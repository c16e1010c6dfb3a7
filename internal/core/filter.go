package core

// sentinels lists, per subject column, the values that mark aggregate or
// statistical rows rather than survey categories. The set is closed: rows are
// never dropped on value heuristics.
var sentinels = map[string]map[string]struct{}{
	KeyProgram: {
		"Toplam":           {},
		"Genel Chi2 Prob.": {},
	},
	KeyCategory: {
		"Toplam":     {},
		"Fikrim yok": {},
	},
}

// Include reports whether a normalized row is a genuine data point.
func Include(row NormalizedRow) bool {
	for key, values := range sentinels {
		v, ok := row[key]
		if !ok {
			continue
		}
		if _, hit := values[v.Raw]; hit {
			return false
		}
	}
	return true
}

// IsSentinel reports whether value under the given canonical subject column is
// in the exclusion set.
func IsSentinel(key, value string) bool {
	_, hit := sentinels[key][value]
	return hit
}

// CountParticipants approximates a section's participant count from its
// surviving rows: rows with a present program value, floored at 1.
//
// This is a row count, not a respondent headcount, and files keyed only by
// category always report 1. Kept as-is for compatibility with published
// datasets; see DESIGN.md.
func CountParticipants(rows []NormalizedRow) int {
	n := 0
	for _, r := range rows {
		if v, ok := r[KeyProgram]; ok && v.Truthy() {
			n++
		}
	}
	return max(n, 1)
}
