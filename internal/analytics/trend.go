package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// GrowthPoint is the period-over-period growth of a single metric.
type GrowthPoint struct {
	Period     string          `json:"period"`
	GrowthRate float64         `json:"growth_rate"`
	Current    decimal.Decimal `json:"current"`
	Previous   decimal.Decimal `json:"previous"`
}

// SavingsPoint is one month's income, expense, and derived savings rate.
type SavingsPoint struct {
	Month       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savings_rate"`
}

// GrowthRate computes (current-previous)/previous*100, defined as zero
// when the previous value is zero so callers never see Inf or NaN.
func GrowthRate(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	return round2(current.Sub(previous).Div(previous).InexactFloat64() * 100)
}

// GrowthRates derives growth points for consecutive bucket totals.
// Buckets must be in chronological order; the first period has no
// predecessor and produces no point.
func GrowthRates(keys []string, totals map[string]*Bucket) []GrowthPoint {
	points := make([]GrowthPoint, 0, len(keys))

	for i := 1; i < len(keys); i++ {
		current := totals[keys[i]].Total
		previous := totals[keys[i-1]].Total
		points = append(points, GrowthPoint{
			Period:     keys[i],
			GrowthRate: GrowthRate(current, previous),
			Current:    current,
			Previous:   previous,
		})
	}

	return points
}

// SavingsRate computes (income-expense)/income*100, defined as zero when
// income is zero.
func SavingsRate(income, expense decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	return round2(income.Sub(expense).Div(income).InexactFloat64() * 100)
}

// SavingsRates derives per-month savings points from monthly flows.
func SavingsRates(flows []MonthFlow) []SavingsPoint {
	points := make([]SavingsPoint, 0, len(flows))
	for _, flow := range flows {
		points = append(points, SavingsPoint{
			Month:       flow.Month,
			Income:      flow.Income,
			Expense:     flow.Expense,
			Savings:     flow.Income.Sub(flow.Expense),
			SavingsRate: SavingsRate(flow.Income, flow.Expense),
		})
	}
	return points
}

// AverageSavingsRate is the unweighted arithmetic mean of the per-month
// rates. The mean is deliberately not income-weighted: a lean month and a
// flush month count equally, matching the product's definition.
func AverageSavingsRate(points []SavingsPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	sum := 0.0
	for _, point := range points {
		sum += point.SavingsRate
	}
	return round2(sum / float64(len(points)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
