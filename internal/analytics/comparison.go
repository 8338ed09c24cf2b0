package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Classification buckets a category's month-over-month movement.
type Classification string

const (
	ClassIncrease    Classification = "spending_increase"
	ClassDecrease    Classification = "spending_decrease"
	ClassNewCategory Classification = "new_category"
	ClassStable      Classification = "stable"
)

// Comparison policy constants. A delta beyond +-30% is noteworthy; above
// +50% it is severe. A brand-new category only registers once it crosses
// an absolute floor, so one-off small purchases stay quiet.
const (
	DeltaAlertThreshold  = 30.0
	DeltaHighThreshold   = 50.0
	NewCategoryThreshold = 1000.0
)

// CategoryDelta is the classified movement of one category between two
// aggregation windows.
type CategoryDelta struct {
	Category       string          `json:"category"`
	Current        decimal.Decimal `json:"current"`
	Previous       decimal.Decimal `json:"previous"`
	DeltaPercent   float64         `json:"delta_percent"`
	Classification Classification  `json:"classification"`
}

// CompareCategories classifies every category present in either window.
// Categories are visited in lexicographic order so the output is
// reproducible for identical inputs. When the previous total is zero the
// delta percentage is undefined and reported as zero; such categories are
// classified as new only above the absolute threshold.
func CompareCategories(current, previous map[string]decimal.Decimal) []CategoryDelta {
	seen := make(map[string]struct{}, len(current)+len(previous))
	for category := range current {
		seen[category] = struct{}{}
	}
	for category := range previous {
		seen[category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	deltas := make([]CategoryDelta, 0, len(categories))
	for _, category := range categories {
		cur := current[category]
		prev := previous[category]

		delta := CategoryDelta{
			Category: category,
			Current:  cur,
			Previous: prev,
		}

		if prev.IsPositive() {
			delta.DeltaPercent = cur.Sub(prev).Div(prev).InexactFloat64() * 100
			switch {
			case delta.DeltaPercent > DeltaAlertThreshold:
				delta.Classification = ClassIncrease
			case delta.DeltaPercent < -DeltaAlertThreshold:
				delta.Classification = ClassDecrease
			default:
				delta.Classification = ClassStable
			}
		} else if cur.InexactFloat64() > NewCategoryThreshold {
			delta.Classification = ClassNewCategory
		} else {
			delta.Classification = ClassStable
		}

		deltas = append(deltas, delta)
	}

	return deltas
}
