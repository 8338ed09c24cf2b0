package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	StatusOverBudget  = "over_budget"
	StatusUnderBudget = "under_budget"

	varianceHighThreshold   = 20.0
	varianceMediumThreshold = 10.0
)

// VarianceAnalysis is a linear run-rate projection of month-end spend
// against a budget ceiling. Status reflects *current* spend only; the
// projected figures are reported separately and never folded into it.
type VarianceAnalysis struct {
	Budget            decimal.Decimal `json:"budget"`
	ActualSpent       decimal.Decimal `json:"actual_spent"`
	Variance          decimal.Decimal `json:"variance"`
	VariancePercent   float64         `json:"variance_percentage"`
	DailyRate         float64         `json:"daily_spending_rate"`
	ProjectedSpend    float64         `json:"projected_monthly_spending"`
	ProjectedVariance float64         `json:"projected_variance"`
	DaysInMonth       int             `json:"days_in_month"`
	DaysPassed        int             `json:"days_passed"`
	DaysRemaining     int             `json:"days_remaining"`
	Status            string          `json:"status"`
	Severity          string          `json:"severity"`
}

// ProjectVariance extrapolates month-end spend from the spend-to-date run
// rate. Zero denominators (budget, days passed) resolve to zero-valued
// derived figures rather than Inf/NaN. The projection is intentionally a
// straight line; no smoothing.
func ProjectVariance(budget, actualSpent decimal.Decimal, daysInMonth, daysPassed int) VarianceAnalysis {
	analysis := VarianceAnalysis{
		Budget:        budget,
		ActualSpent:   actualSpent,
		Variance:      actualSpent.Sub(budget),
		DaysInMonth:   daysInMonth,
		DaysPassed:    daysPassed,
		DaysRemaining: daysInMonth - daysPassed,
	}

	if budget.IsPositive() {
		analysis.VariancePercent = round2(analysis.Variance.Div(budget).InexactFloat64() * 100)
	}

	if daysPassed > 0 {
		analysis.DailyRate = round2(actualSpent.InexactFloat64() / float64(daysPassed))
		analysis.ProjectedSpend = round2(analysis.DailyRate * float64(daysInMonth))
		analysis.ProjectedVariance = round2(analysis.ProjectedSpend - budget.InexactFloat64())
	}

	if analysis.Variance.IsPositive() {
		analysis.Status = StatusOverBudget
	} else {
		analysis.Status = StatusUnderBudget
	}

	analysis.Severity = varianceSeverity(analysis.VariancePercent)

	return analysis
}

func varianceSeverity(variancePercent float64) string {
	abs := math.Abs(variancePercent)
	switch {
	case abs > varianceHighThreshold:
		return "high"
	case abs > varianceMediumThreshold:
		return "medium"
	default:
		return "low"
	}
}
