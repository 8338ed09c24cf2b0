package analytics

import (
	"testing"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OutlierTestSuite struct {
	suite.Suite
}

func (s *OutlierTestSuite) TestComputeEnvelope_EmptySample() {
	_, ok := ComputeEnvelope(nil)
	s.False(ok, "empty sample must not produce an envelope")
}

func (s *OutlierTestSuite) TestComputeEnvelope_SinglePoint() {
	env, ok := ComputeEnvelope([]float64{500})

	s.Require().True(ok)
	s.Equal(500.0, env.Q1)
	s.Equal(500.0, env.Q3)
	s.Equal(0.0, env.IQR)
	s.Equal(500.0, env.UpperBound)
}

func (s *OutlierTestSuite) TestComputeEnvelope_QuartileIndices() {
	// 8 points sorted: Q1 at index 2, Q3 at index 6
	amounts := []float64{10, 20, 30, 40, 50, 60, 70, 80}

	env, ok := ComputeEnvelope(amounts)

	s.Require().True(ok)
	s.Equal(30.0, env.Q1)
	s.Equal(70.0, env.Q3)
	s.Equal(40.0, env.IQR)
	s.Equal(130.0, env.UpperBound)
	s.Equal(8, env.SampleSize)
}

func (s *OutlierTestSuite) TestDetectOutliers_FlagsSpikeAgainstTightBaseline() {
	amounts := []float64{100, 100, 100, 100, 100, 100, 5000}

	env, ok := ComputeEnvelope(amounts)
	s.Require().True(ok)

	transactions := make([]models.Transaction, 0, len(amounts))
	for _, amount := range amounts {
		transactions = append(transactions, models.Transaction{
			ID:     uuid.New(),
			Type:   models.TransactionTypeExpense,
			Amount: decimal.NewFromFloat(amount),
			Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	outliers := DetectOutliers(transactions, env)

	s.Require().Len(outliers, 1)
	s.True(outliers[0].Transaction.Amount.Equal(decimal.NewFromInt(5000)))
}

func (s *OutlierTestSuite) TestDetectOutliers_SortedByDistanceDescending() {
	env := Envelope{UpperBound: 1000}
	transactions := []models.Transaction{
		{ID: uuid.New(), Amount: decimal.NewFromInt(1500)},
		{ID: uuid.New(), Amount: decimal.NewFromInt(4000)},
		{ID: uuid.New(), Amount: decimal.NewFromInt(2200)},
		{ID: uuid.New(), Amount: decimal.NewFromInt(900)},
	}

	outliers := DetectOutliers(transactions, env)

	s.Require().Len(outliers, 3)
	s.Equal(3000.0, outliers[0].Distance)
	s.Equal(1200.0, outliers[1].Distance)
	s.Equal(500.0, outliers[2].Distance)
}

func (s *OutlierTestSuite) TestDetectOutliers_BoundIsExclusive() {
	env := Envelope{UpperBound: 1000}
	transactions := []models.Transaction{
		{ID: uuid.New(), Amount: decimal.NewFromInt(1000)},
	}

	s.Empty(DetectOutliers(transactions, env))
}

func (s *OutlierTestSuite) TestUpperBound_MonotoneInSpread() {
	// Widening the spread of the sample must never lower the fence.
	narrow, ok := ComputeEnvelope([]float64{100, 110, 120, 130})
	s.Require().True(ok)
	wide, ok := ComputeEnvelope([]float64{50, 110, 120, 400})
	s.Require().True(ok)

	s.GreaterOrEqual(wide.UpperBound, narrow.UpperBound)
}

func TestOutlierTestSuite(t *testing.T) {
	suite.Run(t, new(OutlierTestSuite))
}
