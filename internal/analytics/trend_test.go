package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TrendTestSuite struct {
	suite.Suite
}

func (s *TrendTestSuite) TestGrowthRate_ZeroPreviousGuard() {
	s.Equal(0.0, GrowthRate(decimal.NewFromInt(5000), decimal.Zero))
}

func (s *TrendTestSuite) TestGrowthRate_Basic() {
	s.InDelta(25.0, GrowthRate(decimal.NewFromInt(1250), decimal.NewFromInt(1000)), 0.001)
	s.InDelta(-50.0, GrowthRate(decimal.NewFromInt(500), decimal.NewFromInt(1000)), 0.001)
}

func (s *TrendTestSuite) TestGrowthRates_FirstPeriodHasNoPoint() {
	totals := map[string]*Bucket{
		"2026-01": {Key: "2026-01", Total: decimal.NewFromInt(1000)},
		"2026-02": {Key: "2026-02", Total: decimal.NewFromInt(1500)},
		"2026-03": {Key: "2026-03", Total: decimal.NewFromInt(1200)},
	}
	keys := SortedKeys(totals)

	points := GrowthRates(keys, totals)

	s.Require().Len(points, 2)
	s.Equal("2026-02", points[0].Period)
	s.InDelta(50.0, points[0].GrowthRate, 0.001)
	s.Equal("2026-03", points[1].Period)
	s.InDelta(-20.0, points[1].GrowthRate, 0.001)
}

func (s *TrendTestSuite) TestSavingsRate_ZeroIncomeGuard() {
	s.Equal(0.0, SavingsRate(decimal.Zero, decimal.NewFromInt(3000)))
}

func (s *TrendTestSuite) TestSavingsRate_NegativeWhenOverspending() {
	s.InDelta(-20.0, SavingsRate(decimal.NewFromInt(1000), decimal.NewFromInt(1200)), 0.001)
}

func (s *TrendTestSuite) TestAverageSavingsRate_UnweightedMean() {
	flows := []MonthFlow{
		{Month: "2026-01", Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(500)},   // 50%
		{Month: "2026-02", Income: decimal.NewFromInt(100000), Expense: decimal.NewFromInt(90000)}, // 10%
	}

	points := SavingsRates(flows)
	s.Require().Len(points, 2)

	// Unweighted: (50 + 10) / 2, not income-weighted
	s.InDelta(30.0, AverageSavingsRate(points), 0.001)
}

func (s *TrendTestSuite) TestAverageSavingsRate_EmptyInput() {
	s.Equal(0.0, AverageSavingsRate(nil))
}

func TestTrendTestSuite(t *testing.T) {
	suite.Run(t, new(TrendTestSuite))
}
