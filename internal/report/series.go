package report

import "github.com/JonMunkholm/omareport/internal/core"

// Polarity display labels.
const (
	LabelPositive = "Olumlu"
	LabelNeutral  = "Nötr"
	LabelNegative = "Olumsuz"
)

// CategoryValue is one bucket's value with its display label.
type CategoryValue struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BarPoint is one row of the bar, line and stacked charts.
type BarPoint struct {
	Name   string          `json:"name"`
	Values []CategoryValue `json:"values"`
}

// BarSeries lists each row's five buckets, in row order.
func BarSeries(rows []core.SurveyRow) []BarPoint {
	out := make([]BarPoint, len(rows))
	for i, r := range rows {
		vals := r.Categories()
		point := BarPoint{Name: r.Program, Values: make([]CategoryValue, core.NumCategories)}
		for j, c := range core.Categories {
			point.Values[j] = CategoryValue{Key: c.Key(), Label: c.Label(), Value: vals[j]}
		}
		out[i] = point
	}
	return out
}

// Totals lists the summed buckets across rows.
func Totals(rows []core.SurveyRow) []CategoryValue {
	t := core.SumCategories(rows)
	out := make([]CategoryValue, core.NumCategories)
	for i, c := range core.Categories {
		out[i] = CategoryValue{Key: c.Key(), Label: c.Label(), Value: t[c]}
	}
	return out
}

// PieSlices is the pie chart: each bucket's share of the summed total, in
// percent with one decimal. Buckets with no responses are left out, and an
// all-zero row set yields no slices.
func PieSlices(rows []core.SurveyRow) []CategoryValue {
	t := core.SumCategories(rows)
	dist, ok := t.Normalize()
	if !ok {
		return []CategoryValue{}
	}

	out := make([]CategoryValue, 0, core.NumCategories)
	for _, c := range core.Categories {
		if t[c] <= 0 {
			continue
		}
		out = append(out, CategoryValue{Key: c.Key(), Label: c.Label(), Value: dist[c]})
	}
	return out
}

// ComparisonPoint is one row of the positive/neutral/negative comparison.
type ComparisonPoint struct {
	Name string `json:"name"`
	core.Polarity
}

// ComparisonSeries groups each row's buckets by polarity, in row order.
func ComparisonSeries(rows []core.SurveyRow) []ComparisonPoint {
	out := make([]ComparisonPoint, len(rows))
	for i, r := range rows {
		out[i] = ComparisonPoint{Name: r.Program, Polarity: core.RowPolarity(r)}
	}
	return out
}

// PolarityLabels returns the display label for each polarity bucket.
func PolarityLabels() map[string]string {
	return map[string]string{
		"positive": LabelPositive,
		"neutral":  LabelNeutral,
		"negative": LabelNegative,
	}
}
