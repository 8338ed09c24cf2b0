package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories/repository_mocks"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	insightService  *service_mocks.MockInsightServiceInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.AnalyticsServiceInterface
	userID          uuid.UUID
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.insightService = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.userID = uuid.New()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = services.NewAnalyticsService(
		s.transactionRepo, s.budgetRepo, s.insightService, s.metrics, logger,
	)
}

func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsServiceTestSuite) transaction(txnType, category string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		AccountID:   uuid.New(),
		Type:        txnType,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Description: gofakeit.Sentence(3),
		Date:        date,
	}
}

func (s *AnalyticsServiceTestSuite) TestGetAnalyticsData_InvalidTimeRange() {
	data, err := s.service.GetAnalyticsData(s.ctx, s.userID, "2weeks")

	s.ErrorIs(err, services.ErrInvalidTimeRange)
	s.Nil(data)
}

func (s *AnalyticsServiceTestSuite) TestGetAnalyticsData_DefaultsToSixMonths() {
	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return([]models.Transaction{}, nil)
	s.budgetRepo.EXPECT().
		GetLatestByUserID(s.userID).
		Return(nil, repositories.ErrBudgetNotFound)

	data, err := s.service.GetAnalyticsData(s.ctx, s.userID, "")

	s.NoError(err)
	s.Equal("6months", data.TimeRange)
	s.Nil(data.Budget)
	s.WithinDuration(time.Now().AddDate(0, -6, 0), data.StartDate, time.Minute)
}

func (s *AnalyticsServiceTestSuite) TestGetAnalyticsData_IncludesLatestBudget() {
	budget := &models.Budget{ID: uuid.New(), UserID: s.userID, Amount: decimal.NewFromInt(25000)}
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "food", 450, time.Now().AddDate(0, 0, -10)),
	}

	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)
	s.budgetRepo.EXPECT().GetLatestByUserID(s.userID).Return(budget, nil)

	data, err := s.service.GetAnalyticsData(s.ctx, s.userID, "1month")

	s.NoError(err)
	s.Equal("1month", data.TimeRange)
	s.Equal(budget, data.Budget)
	s.Len(data.Transactions, 1)
}

func (s *AnalyticsServiceTestSuite) TestGetExpenseTrends_Monthly() {
	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "food", 1000, lastMonth),
		s.transaction(models.TransactionTypeExpense, "transport", 500, lastMonth),
		s.transaction(models.TransactionTypeExpense, "food", 1800, now),
		// Income must not leak into expense trends.
		s.transaction(models.TransactionTypeIncome, "salary", 50000, now),
	}

	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)

	trends, err := s.service.GetExpenseTrends(s.ctx, s.userID, "monthly")

	s.NoError(err)
	s.Equal("monthly", trends.Period)

	lastKey := lastMonth.Format("2006-01")
	currentKey := now.Format("2006-01")
	s.Require().Contains(trends.Trends, lastKey)
	s.Require().Contains(trends.Trends, currentKey)
	s.Equal(1500.0, trends.Trends[lastKey].Total)
	s.Equal(1800.0, trends.Trends[currentKey].Total)
	s.Equal(1800.0, trends.Trends[currentKey].Categories["food"])

	// 1500 -> 1800 is a 20% rise.
	s.Require().Len(trends.GrowthRates, 1)
	s.Equal(currentKey, trends.GrowthRates[0].Period)
	s.InDelta(20.0, trends.GrowthRates[0].GrowthRate, 0.01)
}

func (s *AnalyticsServiceTestSuite) TestGetCategoryInsights_OrderingAndChange() {
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)

	current := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "food", 2000, now),
		s.transaction(models.TransactionTypeExpense, "travel", 500, now),
	}
	previous := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "food", 1000, lastMonth),
		s.transaction(models.TransactionTypeExpense, "shopping", 800, lastMonth),
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, matchTime(monthStart), gomock.Any()).
		Return(current, nil)
	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, matchTime(prevMonthStart), gomock.Any()).
		Return(previous, nil)

	insights, err := s.service.GetCategoryInsights(s.ctx, s.userID)

	s.NoError(err)
	s.Require().Len(insights, 3)

	// Sorted by current-month spend descending.
	s.Equal("food", insights[0].Category)
	s.Equal(100.0, insights[0].Change)
	s.Equal("increasing", insights[0].Trend)

	s.Equal("travel", insights[1].Category)
	s.Equal(100.0, insights[1].Change)
	s.Equal(0.0, insights[1].LastMonth)

	s.Equal("shopping", insights[2].Category)
	s.Equal(-100.0, insights[2].Change)
	s.Equal("decreasing", insights[2].Trend)
}

func (s *AnalyticsServiceTestSuite) TestGetBudgetVariance_NoBudget() {
	s.budgetRepo.EXPECT().
		GetLatestByUserID(s.userID).
		Return(nil, repositories.ErrBudgetNotFound)

	analysis, err := s.service.GetBudgetVarianceAnalysis(s.ctx, s.userID)

	s.ErrorIs(err, services.ErrNoBudget)
	s.Nil(analysis)
}

func (s *AnalyticsServiceTestSuite) TestGetBudgetVariance_UnderBudget() {
	budget := &models.Budget{ID: uuid.New(), UserID: s.userID, Amount: decimal.NewFromInt(10000)}
	now := time.Now()
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "food", 3500, now),
		s.transaction(models.TransactionTypeExpense, "transport", 2500, now),
		// Income is excluded from spend.
		s.transaction(models.TransactionTypeIncome, "salary", 50000, now),
	}

	s.budgetRepo.EXPECT().GetLatestByUserID(s.userID).Return(budget, nil)
	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)

	analysis, err := s.service.GetBudgetVarianceAnalysis(s.ctx, s.userID)

	s.NoError(err)
	s.True(analysis.ActualSpent.Equal(decimal.NewFromInt(6000)))
	s.True(analysis.Variance.Equal(decimal.NewFromInt(-4000)))
	s.InDelta(-40.0, analysis.VariancePercent, 0.01)
	s.Equal("under_budget", analysis.Status)
	s.Equal(now.Day(), analysis.DaysPassed)
	s.InDelta(6000.0/float64(now.Day()), analysis.DailyRate, 0.01)
}

func (s *AnalyticsServiceTestSuite) TestGetSavingsRateAnalysis() {
	now := time.Now()
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeIncome, "salary", 50000, now),
		s.transaction(models.TransactionTypeExpense, "food", 25000, now),
	}

	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)

	analysis, err := s.service.GetSavingsRateAnalysis(s.ctx, s.userID)

	s.NoError(err)
	s.Require().Len(analysis.MonthlySavings, 1)
	s.InDelta(50.0, analysis.MonthlySavings[0].SavingsRate, 0.01)
	s.InDelta(50.0, analysis.AverageSavingsRate, 0.01)
}

func (s *AnalyticsServiceTestSuite) TestGetDashboardOverview_SectionsDegradeIndependently() {
	s.insightService.EXPECT().
		GetSpendingAlerts(gomock.Any(), s.userID).
		Return(nil, errors.New("alert computation failed"))
	s.budgetRepo.EXPECT().
		GetLatestByUserID(s.userID).
		Return(nil, repositories.ErrBudgetNotFound)
	s.transactionRepo.EXPECT().
		GetByUserAndDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return([]models.Transaction{}, nil).
		Times(2)

	overview, err := s.service.GetDashboardOverview(s.ctx, s.userID)

	s.NoError(err)
	s.NotEmpty(overview.Alerts.Error)
	s.Equal(services.ErrNoBudget.Error(), overview.BudgetVariance.Error)
	s.Empty(overview.SavingsRate.Error)
	s.NotNil(overview.SavingsRate.Data)
	s.Empty(overview.ExpenseTrends.Error)
	s.NotNil(overview.ExpenseTrends.Data)
}
