package services

import (
	"context"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/analytics"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=service_mocks/service_mocks.go -package=service_mocks

// InsightServiceInterface composes spending alerts from a user's
// transaction history
type InsightServiceInterface interface {
	// GetSpendingAlerts recomputes the user's alerts from the current
	// transaction snapshot. The computation is read-only and idempotent:
	// identical snapshots produce identical alert IDs.
	GetSpendingAlerts(ctx context.Context, userID uuid.UUID) (*models.AlertReport, error)

	// MarkAlertAsRead acknowledges an alert. Alerts are ephemeral, so this
	// only validates the request; read state lives with the client.
	MarkAlertAsRead(ctx context.Context, userID uuid.UUID, alertID string) error
}

// AnalyticsServiceInterface provides the chart-facing aggregations
type AnalyticsServiceInterface interface {
	GetAnalyticsData(ctx context.Context, userID uuid.UUID, timeRange string) (*dto.AnalyticsData, error)
	GetExpenseTrends(ctx context.Context, userID uuid.UUID, period string) (*dto.ExpenseTrends, error)
	GetCategoryInsights(ctx context.Context, userID uuid.UUID) ([]dto.CategoryInsight, error)
	GetBudgetVarianceAnalysis(ctx context.Context, userID uuid.UUID) (*analytics.VarianceAnalysis, error)
	GetSavingsRateAnalysis(ctx context.Context, userID uuid.UUID) (*dto.SavingsRateAnalysis, error)
	GetDashboardOverview(ctx context.Context, userID uuid.UUID) (*dto.DashboardOverview, error)
}

// ForecastServiceInterface produces oracle-backed cash flow forecasts
type ForecastServiceInterface interface {
	GetCashFlowForecast(ctx context.Context, userID uuid.UUID) (*models.CashFlowForecast, error)
}

// ImportServiceInterface parses and imports transactions from raw
// UPI/bank message text
type ImportServiceInterface interface {
	ParseTransaction(ctx context.Context, userID uuid.UUID, text string) (*dto.ParsedTransaction, error)
	ImportTransaction(ctx context.Context, userID uuid.UUID, parsed *dto.ParsedTransaction) (*models.Transaction, error)
	BatchImport(ctx context.Context, userID uuid.UUID, texts []string) (*dto.BatchImportResult, error)
}

// TransactionParserInterface is the port to the generative model that
// extracts structured transaction fields from free text.
type TransactionParserInterface interface {
	ParseTransactionText(ctx context.Context, text string) (*dto.ParsedTransaction, error)
}

// ForecastOracleInterface is the port to the generative model that
// predicts future cash flow from a historical monthly table.
type ForecastOracleInterface interface {
	PredictCashFlow(ctx context.Context, historical map[string]models.MonthlyTotals) (*OraclePrediction, error)
}

// AlertEnricherInterface is the port to the generative model that writes
// a short human message for an unusual transaction. Implementations must
// fail fast; callers fall back to a templated message.
type AlertEnricherInterface interface {
	DescribeUnusualTransaction(ctx context.Context, txn *models.Transaction, env UnusualContext) (string, error)
}

// UnusualContext is the statistical context handed to the alert enricher
type UnusualContext struct {
	Q1         float64
	Q3         float64
	AboveRange float64
}

// OraclePrediction is the validated output of the forecast oracle
type OraclePrediction struct {
	Predictions     []models.MonthPrediction `json:"predictions"`
	Insights        []string                 `json:"insights"`
	Recommendations []string                 `json:"recommendations"`
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// SampleDataGeneratorInterface generates realistic finance data for
// development seeding
type SampleDataGeneratorInterface interface {
	GenerateUser() *models.User
	GenerateAccount(userID uuid.UUID, isDefault bool) *models.Account
	GenerateBudget(userID uuid.UUID) *models.Budget
	GenerateMonthlyTransactions(userID, accountID uuid.UUID, month time.Time, count int) []models.Transaction
}
