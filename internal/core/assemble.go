package core

import "fmt"

// TotalSurveysPlaceholder is reported as every section's totalSurveys.
// It is a fixed value, not derived from the source file; kept for
// compatibility with published datasets.
const TotalSurveysPlaceholder = 100

// UnknownSubject labels a row that has neither a program nor a category value.
const UnknownSubject = "Bilgi Yok"

// defaultTotal is used when a row carries no usable total.
const defaultTotal = 100

// DescriptionFor builds a section description from its title.
func DescriptionFor(title string) string {
	return fmt.Sprintf("%s ile ilgili anket sonuçları", title)
}

// RowIssue records a data line that was dropped.
type RowIssue struct {
	Line int // 1-based position among the file's non-empty lines
	Err  error
}

// SourceData is one export after parsing, normalization and filtering.
type SourceData struct {
	Headers  []string
	Rows     []NormalizedRow
	Lines    []int // Line number of each entry in Rows
	Issues   []RowIssue
	Filtered int // Rows dropped by the sentinel filter
}

// ParseSource runs the ingestion stage over a whole export. Malformed lines are
// collected as issues rather than failing the file. Returns ErrEmptyFile when
// there is no header plus at least one data line.
func ParseSource(content []byte) (*SourceData, error) {
	lines := SplitLines(content)
	if len(lines) < 2 {
		return nil, ErrEmptyFile
	}

	data := &SourceData{Headers: ParseHeader(lines[0])}
	for i, line := range lines[1:] {
		lineNum := i + 2

		parsed, err := ParseLine(line, data.Headers)
		if err != nil {
			data.Issues = append(data.Issues, RowIssue{Line: lineNum, Err: err})
			continue
		}

		row := NormalizeRow(parsed, data.Headers)
		if !Include(row) {
			data.Filtered++
			continue
		}

		data.Rows = append(data.Rows, row)
		data.Lines = append(data.Lines, lineNum)
	}
	return data, nil
}

// Assemble builds the section for the catalog entry at position from its
// parsed source. Rows that fail conversion, or repeat an earlier named
// subject, are returned as issues and left out; the rest keep file order.
// Rows without a subject are never treated as duplicates.
func Assemble(entry CatalogEntry, position int, data *SourceData) (Section, []RowIssue) {
	var issues []RowIssue
	rows := make([]SurveyRow, 0, len(data.Rows))
	kept := make([]NormalizedRow, 0, len(data.Rows))
	seen := make(map[string]int, len(data.Rows))

	for i, nr := range data.Rows {
		line := 0
		if i < len(data.Lines) {
			line = data.Lines[i]
		}

		row, err := ToSurveyRow(nr)
		if err != nil {
			issues = append(issues, RowIssue{Line: line, Err: err})
			continue
		}
		if row.Program == UnknownSubject {
			rows = append(rows, row)
			kept = append(kept, nr)
			continue
		}
		if first, dup := seen[row.Program]; dup {
			issues = append(issues, RowIssue{
				Line: line,
				Err:  fmt.Errorf("%w: %q first seen on line %d", ErrDuplicateSubject, row.Program, first),
			})
			continue
		}
		seen[row.Program] = line

		rows = append(rows, row)
		kept = append(kept, nr)
	}

	return Section{
		ID:               SectionID(position),
		Title:            entry.Title,
		Description:      DescriptionFor(entry.Title),
		ParticipantCount: CountParticipants(kept),
		TotalSurveys:     TotalSurveysPlaceholder,
		Rows:             rows,
	}, issues
}

// ToSurveyRow converts a normalized row into the canonical record.
//
// The subject is the program value, else the category value, else
// UnknownSubject. The subject is the cell text as written, so "007" stays
// "007". Missing or non-numeric buckets become 0; a missing, zero or
// non-numeric total becomes 100.
func ToSurveyRow(nr NormalizedRow) (SurveyRow, error) {
	row := SurveyRow{
		Program:          subjectOf(nr),
		StronglyDisagree: numberOr(nr, KeyStronglyDisagree, 0),
		Disagree:         numberOr(nr, KeyDisagree, 0),
		Neutral:          numberOr(nr, KeyNeutral, 0),
		Agree:            numberOr(nr, KeyAgree, 0),
		StronglyAgree:    numberOr(nr, KeyStronglyAgree, 0),
		Total:            numberOr(nr, KeyTotal, defaultTotal),
	}

	for _, v := range row.Categories() {
		if v < 0 || v > 100 {
			return SurveyRow{}, fmt.Errorf("%w: %q has %v", ErrValueOutOfRange, row.Program, v)
		}
	}
	return row, nil
}

func subjectOf(nr NormalizedRow) string {
	for _, key := range []string{KeyProgram, KeyCategory} {
		if v, ok := nr[key]; ok && v.Truthy() {
			return v.Raw
		}
	}
	return UnknownSubject
}

func numberOr(nr NormalizedRow, key string, fallback float64) float64 {
	v, ok := nr[key]
	if !ok || !v.IsNum || v.Num == 0 {
		return fallback
	}
	return v.Num
}
