package core

import "strconv"

// Value is one typed token from a data line.
// Raw always holds the trimmed token; Num is only meaningful when IsNum is set.
type Value struct {
	Raw   string
	Num   float64
	IsNum bool
}

// Truthy reports whether the value counts as present: non-empty and, for
// numbers, non-zero.
func (v Value) Truthy() bool {
	if v.IsNum {
		return v.Num != 0
	}
	return v.Raw != ""
}

// String returns the value as text, formatting numbers in their shortest form.
func (v Value) String() string {
	if v.IsNum {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Raw
}

// ParsedRow maps raw header strings to the typed token found under them.
type ParsedRow map[string]Value

// NormalizedRow maps canonical keys (see [Canonical]) to typed tokens.
type NormalizedRow map[string]Value

// SurveyRow is one program or category data point.
// JSON field names match the dataset consumed by the reporting front end.
type SurveyRow struct {
	Program          string  `json:"Program"`
	StronglyDisagree float64 `json:"kesinlikle_katilmiyorum"`
	Disagree         float64 `json:"katilmiyorum"`
	Neutral          float64 `json:"kararsizim"`
	Agree            float64 `json:"katiliyorum"`
	StronglyAgree    float64 `json:"kesinlikle_katiliyorum"`
	Total            float64 `json:"toplam"`
}

// Categories returns the five Likert buckets in scale order,
// strongly disagree first.
func (r SurveyRow) Categories() []float64 {
	return []float64{r.StronglyDisagree, r.Disagree, r.Neutral, r.Agree, r.StronglyAgree}
}

// Section is one survey topic, assembled from a single source file.
type Section struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ParticipantCount int         `json:"participantCount"`
	TotalSurveys     int         `json:"totalSurveys"`
	Rows             []SurveyRow `json:"rows"`
}

// SkippedEntry records a catalog entry that produced no section.
type SkippedEntry struct {
	Entry CatalogEntry
	Err   error
}

// BuildResult is the outcome of one pipeline run.
type BuildResult struct {
	RunID       string
	Sections    []Section
	Skipped     []SkippedEntry
	DroppedRows int
}
