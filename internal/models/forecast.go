package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// MonthPrediction is a single month's predicted cash flow as returned by
// the forecast oracle after schema validation.
type MonthPrediction struct {
	Month            string   `json:"month"`
	PredictedIncome  float64  `json:"predictedIncome"`
	PredictedExpense float64  `json:"predictedExpense"`
	Confidence       string   `json:"confidence"`
	Factors          []string `json:"factors"`
}

// MonthlyTotals is the historical income/expense pair for one month.
type MonthlyTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CashFlowForecast is the composed forecast result: the historical table
// handed to the oracle plus its validated predictions.
type CashFlowForecast struct {
	UserID          uuid.UUID                `json:"user_id"`
	Historical      map[string]MonthlyTotals `json:"historical"`
	Predictions     []MonthPrediction        `json:"predictions"`
	Insights        []string                 `json:"insights"`
	Recommendations []string                 `json:"recommendations"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// IsValidConfidence checks if the confidence label is one of the expected values
func IsValidConfidence(confidence string) bool {
	switch confidence {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}
