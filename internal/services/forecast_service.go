package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/analytics"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNoForecastHistory = errors.New("not enough transaction history to forecast")
)

const forecastWindowMonths = 6

// forecastService builds the historical monthly table, asks the forecast
// oracle for predictions, and validates the response before returning it.
type forecastService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	oracle          ForecastOracleInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewForecastService creates a new forecast service
func NewForecastService(
	transactionRepo repositories.TransactionRepositoryInterface,
	oracle ForecastOracleInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ForecastServiceInterface {
	return &forecastService{
		transactionRepo: transactionRepo,
		oracle:          oracle,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// GetCashFlowForecast predicts the next three months of cash flow from
// the last six months of history
func (s *forecastService) GetCashFlowForecast(ctx context.Context, userID uuid.UUID) (*models.CashFlowForecast, error) {
	now := s.now()
	startDate := now.AddDate(0, -forecastWindowMonths, 0)

	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, startDate, now)
	if err != nil {
		s.metrics.IncrementCounter("forecast.request", map[string]string{"status": "error"})
		return nil, fmt.Errorf("failed to load forecast history: %w", err)
	}

	flows := analytics.MonthlyFlows(transactions)
	if len(flows) == 0 {
		s.metrics.IncrementCounter("forecast.request", map[string]string{"status": "no_history"})
		return nil, ErrNoForecastHistory
	}

	historical := make(map[string]models.MonthlyTotals, len(flows))
	for _, flow := range flows {
		historical[flow.Month] = models.MonthlyTotals{
			Income:  flow.Income.InexactFloat64(),
			Expense: flow.Expense.InexactFloat64(),
		}
	}

	prediction, err := s.oracle.PredictCashFlow(ctx, historical)
	if err != nil {
		s.metrics.IncrementCounter("forecast.request", map[string]string{"status": "oracle_error"})
		s.logger.Error("forecast oracle failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.metrics.IncrementCounter("forecast.request", map[string]string{"status": "success"})

	return &models.CashFlowForecast{
		UserID:          userID,
		Historical:      historical,
		Predictions:     prediction.Predictions,
		Insights:        prediction.Insights,
		Recommendations: prediction.Recommendations,
		GeneratedAt:     now,
	}, nil
}
