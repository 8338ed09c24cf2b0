package dto

import (
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/analytics"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
)

// ParsedTransaction is the structured result of parsing a raw UPI/bank
// message. Amounts are plain numbers; the date has been normalized.
type ParsedTransaction struct {
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	UpiReference string    `json:"upi_reference,omitempty"`
	BankAccount  string    `json:"bank_account,omitempty"`
	Source       string    `json:"source"`
}

// BatchImportResult tallies the outcome of a batch import run. Duplicates
// are counted separately from failures; a duplicate is not an error.
type BatchImportResult struct {
	Success    int      `json:"success"`
	Failed     int      `json:"failed"`
	Duplicates int      `json:"duplicates"`
	Errors     []string `json:"errors"`
}

// AnalyticsData is the raw material for client-side charting: the window's
// transactions plus the active budget.
type AnalyticsData struct {
	Transactions []models.Transaction `json:"transactions"`
	Budget       *models.Budget       `json:"budget"`
	TimeRange    string               `json:"time_range"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
}

// TrendPeriod is one period's expense total with its category breakdown
type TrendPeriod struct {
	Total      float64            `json:"total"`
	Categories map[string]float64 `json:"categories"`
}

// ExpenseTrends is the per-period expense series with growth rates
type ExpenseTrends struct {
	Trends      map[string]TrendPeriod  `json:"trends"`
	GrowthRates []analytics.GrowthPoint `json:"growth_rates"`
	Period      string                  `json:"period"`
}

// CategoryInsight compares one category's spend between the current and
// previous calendar month.
type CategoryInsight struct {
	Category     string  `json:"category"`
	CurrentMonth float64 `json:"current_month"`
	LastMonth    float64 `json:"last_month"`
	Change       float64 `json:"change"`
	Trend        string  `json:"trend"`
}

// SavingsRateAnalysis is the per-month savings series with its mean
type SavingsRateAnalysis struct {
	MonthlySavings     []analytics.SavingsPoint `json:"monthly_savings"`
	AverageSavingsRate float64                  `json:"average_savings_rate"`
}

// DashboardSection wraps one dashboard panel so a failed section degrades
// to an error string without sinking the whole overview.
type DashboardSection struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// DashboardOverview aggregates the insight panels for the landing page
type DashboardOverview struct {
	Alerts         DashboardSection `json:"alerts"`
	BudgetVariance DashboardSection `json:"budget_variance"`
	SavingsRate    DashboardSection `json:"savings_rate"`
	ExpenseTrends  DashboardSection `json:"expense_trends"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// TransactionListResponse is a paginated transaction listing
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PerPage      int                  `json:"per_page"`
}
