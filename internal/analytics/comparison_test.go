package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ComparisonTestSuite struct {
	suite.Suite
}

func (s *ComparisonTestSuite) TestCompareCategories_FiftyPercentIncrease() {
	current := map[string]decimal.Decimal{"food": decimal.NewFromInt(1500)}
	previous := map[string]decimal.Decimal{"food": decimal.NewFromInt(1000)}

	deltas := CompareCategories(current, previous)

	s.Require().Len(deltas, 1)
	s.Equal("food", deltas[0].Category)
	s.InDelta(50.0, deltas[0].DeltaPercent, 0.001)
	s.Equal(ClassIncrease, deltas[0].Classification)
}

func (s *ComparisonTestSuite) TestCompareCategories_WithinThresholdIsStable() {
	current := map[string]decimal.Decimal{"food": decimal.NewFromInt(1250)}
	previous := map[string]decimal.Decimal{"food": decimal.NewFromInt(1000)}

	deltas := CompareCategories(current, previous)

	s.Require().Len(deltas, 1)
	s.Equal(ClassStable, deltas[0].Classification)
}

func (s *ComparisonTestSuite) TestCompareCategories_Decrease() {
	current := map[string]decimal.Decimal{"shopping": decimal.NewFromInt(400)}
	previous := map[string]decimal.Decimal{"shopping": decimal.NewFromInt(1000)}

	deltas := CompareCategories(current, previous)

	s.Require().Len(deltas, 1)
	s.InDelta(-60.0, deltas[0].DeltaPercent, 0.001)
	s.Equal(ClassDecrease, deltas[0].Classification)
}

func (s *ComparisonTestSuite) TestCompareCategories_NewCategoryAboveFloor() {
	current := map[string]decimal.Decimal{"electronics": decimal.NewFromInt(1200)}
	previous := map[string]decimal.Decimal{}

	deltas := CompareCategories(current, previous)

	s.Require().Len(deltas, 1)
	s.Equal(ClassNewCategory, deltas[0].Classification)
	s.Equal(0.0, deltas[0].DeltaPercent, "delta is undefined against a zero base")
}

func (s *ComparisonTestSuite) TestCompareCategories_NewCategoryBelowFloorStaysQuiet() {
	current := map[string]decimal.Decimal{"stationery": decimal.NewFromInt(300)}
	previous := map[string]decimal.Decimal{}

	deltas := CompareCategories(current, previous)

	s.Require().Len(deltas, 1)
	s.Equal(ClassStable, deltas[0].Classification)
}

func (s *ComparisonTestSuite) TestCompareCategories_VanishedCategory() {
	current := map[string]decimal.Decimal{}
	previous := map[string]decimal.Decimal{"travel": decimal.NewFromInt(5000)}

	deltas := CompareCategories(current, previous)

	s.Require().Len(deltas, 1)
	s.InDelta(-100.0, deltas[0].DeltaPercent, 0.001)
	s.Equal(ClassDecrease, deltas[0].Classification)
}

func (s *ComparisonTestSuite) TestCompareCategories_LexicographicOrder() {
	current := map[string]decimal.Decimal{
		"transport": decimal.NewFromInt(100),
		"food":      decimal.NewFromInt(100),
		"rent":      decimal.NewFromInt(100),
	}

	deltas := CompareCategories(current, map[string]decimal.Decimal{})

	s.Require().Len(deltas, 3)
	s.Equal("food", deltas[0].Category)
	s.Equal("rent", deltas[1].Category)
	s.Equal("transport", deltas[2].Category)
}

func TestComparisonTestSuite(t *testing.T) {
	suite.Run(t, new(ComparisonTestSuite))
}
