package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/analytics"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoBudget         = errors.New("no budget configured")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

const (
	TimeRange1Month  = "1month"
	TimeRange3Months = "3months"
	TimeRange6Months = "6months"
	TimeRange1Year   = "1year"

	TrendPeriodMonthly = "monthly"
	TrendPeriodYearly  = "yearly"

	// Category insight trend thresholds: movement within ±10% is stable.
	insightTrendThreshold = 10.0

	savingsWindowMonths = 6
)

// analyticsService provides the chart-facing aggregations over a user's
// transaction history
type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	insightService  InsightServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	insightService InsightServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		insightService:  insightService,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// GetAnalyticsData returns the raw charting window: transactions in range
// plus the active budget. A missing budget is not an error; the budget
// field is simply nil.
func (s *analyticsService) GetAnalyticsData(ctx context.Context, userID uuid.UUID, timeRange string) (*dto.AnalyticsData, error) {
	now := s.now()

	var startDate time.Time
	switch timeRange {
	case TimeRange1Month:
		startDate = now.AddDate(0, 0, -30)
	case TimeRange3Months:
		startDate = now.AddDate(0, -3, 0)
	case TimeRange6Months, "":
		timeRange = TimeRange6Months
		startDate = now.AddDate(0, -6, 0)
	case TimeRange1Year:
		startDate = now.AddDate(0, -12, 0)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeRange, timeRange)
	}

	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budget, err := s.budgetRepo.GetLatestByUserID(userID)
	if err != nil && !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	return &dto.AnalyticsData{
		Transactions: transactions,
		Budget:       budget,
		TimeRange:    timeRange,
		StartDate:    startDate,
		EndDate:      now,
	}, nil
}

// GetExpenseTrends returns the per-period expense series with growth
// rates. Monthly trends look back 12 months, yearly trends 24.
func (s *analyticsService) GetExpenseTrends(ctx context.Context, userID uuid.UUID, period string) (*dto.ExpenseTrends, error) {
	now := s.now()

	granularity := analytics.GranularityMonth
	startDate := now.AddDate(0, -12, 0)
	if period == TrendPeriodYearly {
		granularity = analytics.GranularityYear
		startDate = now.AddDate(0, -24, 0)
	} else {
		period = TrendPeriodMonthly
	}

	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	buckets := analytics.BucketByPeriod(transactions, granularity, analytics.FilterExpense)
	keys := analytics.SortedKeys(buckets)

	trends := make(map[string]dto.TrendPeriod, len(buckets))
	for key, bucket := range buckets {
		categories := make(map[string]float64, len(bucket.ByCategory))
		for category, total := range bucket.ByCategory {
			categories[category] = total.InexactFloat64()
		}
		trends[key] = dto.TrendPeriod{
			Total:      bucket.Total.InexactFloat64(),
			Categories: categories,
		}
	}

	return &dto.ExpenseTrends{
		Trends:      trends,
		GrowthRates: analytics.GrowthRates(keys, buckets),
		Period:      period,
	}, nil
}

// GetCategoryInsights compares each category's spend between the current
// and previous calendar month, ordered by current spend descending.
func (s *analyticsService) GetCategoryInsights(ctx context.Context, userID uuid.UUID) ([]dto.CategoryInsight, error) {
	now := s.now()
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousMonthStart := currentMonthStart.AddDate(0, -1, 0)
	nextMonthStart := currentMonthStart.AddDate(0, 1, 0)

	var current, previous []models.Transaction

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.transactionRepo.GetByUserAndDateRange(userID, currentMonthStart, nextMonthStart)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.transactionRepo.GetByUserAndDateRange(userID, previousMonthStart, currentMonthStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load category insight inputs: %w", err)
	}

	currentByCategory := analytics.SumByCategory(filterExpenses(current))
	previousByCategory := analytics.SumByCategory(filterExpenses(previous))

	seen := make(map[string]struct{}, len(currentByCategory)+len(previousByCategory))
	for category := range currentByCategory {
		seen[category] = struct{}{}
	}
	for category := range previousByCategory {
		seen[category] = struct{}{}
	}

	insights := make([]dto.CategoryInsight, 0, len(seen))
	for category := range seen {
		cur := currentByCategory[category].InexactFloat64()
		last := previousByCategory[category].InexactFloat64()

		// A category appearing from nothing counts as a 100% rise.
		var change float64
		switch {
		case last > 0:
			change = math.Round((cur-last)/last*100*100) / 100
		case cur > 0:
			change = 100
		}

		trend := "stable"
		if change > insightTrendThreshold {
			trend = "increasing"
		} else if change < -insightTrendThreshold {
			trend = "decreasing"
		}

		insights = append(insights, dto.CategoryInsight{
			Category:     category,
			CurrentMonth: cur,
			LastMonth:    last,
			Change:       change,
			Trend:        trend,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].CurrentMonth != insights[j].CurrentMonth {
			return insights[i].CurrentMonth > insights[j].CurrentMonth
		}
		return insights[i].Category < insights[j].Category
	})

	return insights, nil
}

// GetBudgetVarianceAnalysis projects month-end spend against the user's
// most recent budget. A user without a budget gets ErrNoBudget.
func (s *analyticsService) GetBudgetVarianceAnalysis(ctx context.Context, userID uuid.UUID) (*analytics.VarianceAnalysis, error) {
	budget, err := s.budgetRepo.GetLatestByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrNoBudget
		}
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	daysInMonth := nextMonthStart.AddDate(0, 0, -1).Day()
	daysPassed := now.Day()

	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, monthStart, nextMonthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	actualSpent := decimalSum(filterExpenses(transactions))

	analysis := analytics.ProjectVariance(budget.Amount, actualSpent, daysInMonth, daysPassed)
	return &analysis, nil
}

// GetSavingsRateAnalysis returns per-month savings points over the last
// six months plus their unweighted mean.
func (s *analyticsService) GetSavingsRateAnalysis(ctx context.Context, userID uuid.UUID) (*dto.SavingsRateAnalysis, error) {
	now := s.now()
	startDate := now.AddDate(0, -savingsWindowMonths, 0)

	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	points := analytics.SavingsRates(analytics.MonthlyFlows(transactions))

	return &dto.SavingsRateAnalysis{
		MonthlySavings:     points,
		AverageSavingsRate: analytics.AverageSavingsRate(points),
	}, nil
}

// GetDashboardOverview assembles the landing-page panels. Each panel
// degrades independently: a failed section carries its error string while
// the rest of the overview still renders.
func (s *analyticsService) GetDashboardOverview(ctx context.Context, userID uuid.UUID) (*dto.DashboardOverview, error) {
	overview := &dto.DashboardOverview{
		GeneratedAt: s.now(),
	}

	var wg errgroup.Group

	wg.Go(func() error {
		report, err := s.insightService.GetSpendingAlerts(ctx, userID)
		overview.Alerts = sectionOf(report, err)
		return nil
	})
	wg.Go(func() error {
		variance, err := s.GetBudgetVarianceAnalysis(ctx, userID)
		overview.BudgetVariance = sectionOf(variance, err)
		return nil
	})
	wg.Go(func() error {
		savings, err := s.GetSavingsRateAnalysis(ctx, userID)
		overview.SavingsRate = sectionOf(savings, err)
		return nil
	})
	wg.Go(func() error {
		trends, err := s.GetExpenseTrends(ctx, userID, TrendPeriodMonthly)
		overview.ExpenseTrends = sectionOf(trends, err)
		return nil
	})

	// The goroutines never return errors; Wait only synchronizes.
	_ = wg.Wait()

	return overview, nil
}

func sectionOf(data interface{}, err error) dto.DashboardSection {
	if err != nil {
		return dto.DashboardSection{Error: err.Error()}
	}
	return dto.DashboardSection{Data: data}
}

func decimalSum(transactions []models.Transaction) (total decimal.Decimal) {
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
	}
	return total
}
