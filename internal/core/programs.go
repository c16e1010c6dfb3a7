package core

import (
	"encoding/csv"
	"strings"
)

// ProgramList is the first-column listing of one export.
type ProgramList struct {
	TotalCount  int      `json:"total_count"`
	UniqueCount int      `json:"unique_count"`
	Programs    []string `json:"majors"`
}

// ExtractPrograms lists the first field of every data line in content,
// skipping blanks. Fields honor CSV quoting, so "Foo, Bar" is one name.
// Programs holds the unique names in first-seen order.
func ExtractPrograms(content []byte) ProgramList {
	lines := SplitLines(content)
	list := ProgramList{Programs: []string{}}
	if len(lines) < 2 {
		return list
	}

	seen := make(map[string]bool)
	for _, line := range lines[1:] {
		name := CleanCell(firstField(line))
		if name == "" {
			continue
		}
		list.TotalCount++
		if seen[name] {
			continue
		}
		seen[name] = true
		list.Programs = append(list.Programs, name)
	}
	list.UniqueCount = len(list.Programs)
	return list
}

// firstField returns the first CSV field of line. A line the reader rejects
// falls back to the text before the first delimiter.
func firstField(line string) string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	rec, err := r.Read()
	if err != nil || len(rec) == 0 {
		first, _, _ := strings.Cut(line, Delimiter)
		return first
	}
	return rec[0]
}
