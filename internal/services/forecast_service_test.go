package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories/repository_mocks"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	oracle          *service_mocks.MockForecastOracleInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.ForecastServiceInterface
	userID          uuid.UUID
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.oracle = service_mocks.NewMockForecastOracleInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.userID = uuid.New()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = services.NewForecastService(s.transactionRepo, s.oracle, s.metrics, logger)
}

func (s *ForecastServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ForecastServiceTestSuite) TestGetCashFlowForecast_NoHistory() {
	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return([]models.Transaction{}, nil)

	forecast, err := s.service.GetCashFlowForecast(s.ctx, s.userID)

	s.ErrorIs(err, services.ErrNoForecastHistory)
	s.Nil(forecast)
}

func (s *ForecastServiceTestSuite) TestGetCashFlowForecast_OracleFailurePropagates() {
	transactions := []models.Transaction{
		{
			ID:          uuid.New(),
			UserID:      s.userID,
			AccountID:   uuid.New(),
			Type:        models.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(50000),
			Category:    "salary",
			Description: gofakeit.Sentence(3),
			Date:        time.Now().AddDate(0, -1, 0),
		},
	}

	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)
	s.oracle.EXPECT().
		PredictCashFlow(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrOracleUnavailable)

	forecast, err := s.service.GetCashFlowForecast(s.ctx, s.userID)

	s.ErrorIs(err, services.ErrOracleUnavailable)
	s.Nil(forecast)
}

func (s *ForecastServiceTestSuite) TestGetCashFlowForecast_Success() {
	monthAgo := time.Now().AddDate(0, -1, 0)
	monthKey := monthAgo.Format("2006-01")

	transactions := []models.Transaction{
		{
			ID:          uuid.New(),
			UserID:      s.userID,
			AccountID:   uuid.New(),
			Type:        models.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(50000),
			Category:    "salary",
			Description: "Salary credit",
			Date:        monthAgo,
		},
		{
			ID:          uuid.New(),
			UserID:      s.userID,
			AccountID:   uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(20000),
			Category:    "rent",
			Description: "Monthly rent",
			Date:        monthAgo,
		},
	}

	prediction := &services.OraclePrediction{
		Predictions: []models.MonthPrediction{
			{
				Month:            "2026-09",
				PredictedIncome:  50000,
				PredictedExpense: 22000,
				Confidence:       models.ConfidenceMedium,
				Factors:          []string{"stable salary"},
			},
		},
		Insights:        []string{"Income is steady"},
		Recommendations: []string{"Keep rent below 40% of income"},
	}

	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)
	s.oracle.EXPECT().
		PredictCashFlow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, historical map[string]models.MonthlyTotals) (*services.OraclePrediction, error) {
			s.Require().Contains(historical, monthKey)
			s.InDelta(50000.0, historical[monthKey].Income, 0.01)
			s.InDelta(20000.0, historical[monthKey].Expense, 0.01)
			return prediction, nil
		})

	forecast, err := s.service.GetCashFlowForecast(s.ctx, s.userID)

	s.NoError(err)
	s.Equal(s.userID, forecast.UserID)
	s.Equal(prediction.Predictions, forecast.Predictions)
	s.Equal(prediction.Insights, forecast.Insights)
	s.Equal(prediction.Recommendations, forecast.Recommendations)
	s.Contains(forecast.Historical, monthKey)
	s.False(forecast.GeneratedAt.IsZero())
}
