package core

// aggregate.go holds the numeric helpers the reporting side runs on canonical
// rows: per-bucket sums, normalized distributions and polarity groups.
// All functions are pure and safe for concurrent use.

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Category identifies one Likert bucket.
type Category int

const (
	StronglyDisagree Category = iota
	Disagree
	Neutral
	Agree
	StronglyAgree
)

// NumCategories is the number of Likert buckets.
const NumCategories = 5

// Categories lists all buckets in scale order.
var Categories = [NumCategories]Category{StronglyDisagree, Disagree, Neutral, Agree, StronglyAgree}

var categoryKeys = [NumCategories]string{
	KeyStronglyDisagree, KeyDisagree, KeyNeutral, KeyAgree, KeyStronglyAgree,
}

var categoryLabels = [NumCategories]string{
	"Kesinlikle Katılmıyorum", "Katılmıyorum", "Kararsızım", "Katılıyorum", "Kesinlikle Katılıyorum",
}

// Key returns the bucket's canonical key.
func (c Category) Key() string { return categoryKeys[c] }

// Label returns the bucket's display label.
func (c Category) Label() string { return categoryLabels[c] }

// CategoryTotals holds one summed value per bucket, indexed by Category.
type CategoryTotals [NumCategories]float64

// SumCategories sums each bucket independently across rows.
func SumCategories(rows []SurveyRow) CategoryTotals {
	acc := make([]float64, NumCategories)
	for _, r := range rows {
		floats.Add(acc, r.Categories())
	}

	var t CategoryTotals
	copy(t[:], acc)
	return t
}

// Sum returns the total across all buckets.
func (t CategoryTotals) Sum() float64 {
	return floats.Sum(t[:])
}

// Distribution is a percentage per bucket, rounded to one decimal.
type Distribution [NumCategories]float64

// Normalize scales the totals to percentages of their sum, rounded to one
// decimal place. When the sum is zero there is no distribution and ok is false;
// no division is attempted.
func (t CategoryTotals) Normalize() (d Distribution, ok bool) {
	total, err := stats.Sum(stats.Float64Data(t[:]))
	if err != nil || total == 0 {
		return Distribution{}, false
	}

	for i, v := range t {
		pct, err := stats.Round(v/total*100, 1)
		if err != nil {
			return Distribution{}, false
		}
		d[i] = pct
	}
	return d, true
}

// Polarity groups the buckets by direction.
type Polarity struct {
	Positive float64 `json:"positive"` // Agree + strongly agree
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"` // Disagree + strongly disagree
}

// Polarity groups the totals by direction.
func (t CategoryTotals) Polarity() Polarity {
	return Polarity{
		Positive: t[Agree] + t[StronglyAgree],
		Neutral:  t[Neutral],
		Negative: t[StronglyDisagree] + t[Disagree],
	}
}

// RowPolarity groups a single row's buckets by direction.
func RowPolarity(r SurveyRow) Polarity {
	return Polarity{
		Positive: r.Agree + r.StronglyAgree,
		Neutral:  r.Neutral,
		Negative: r.StronglyDisagree + r.Disagree,
	}
}

// SumPolarity groups the summed buckets of rows by direction.
func SumPolarity(rows []SurveyRow) Polarity {
	return SumCategories(rows).Polarity()
}
