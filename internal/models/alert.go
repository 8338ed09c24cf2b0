package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	AlertTypeSpendingIncrease   = "spending_increase"
	AlertTypeSpendingDecrease   = "spending_decrease"
	AlertTypeNewCategory        = "new_category"
	AlertTypeUnusualTransaction = "unusual_transaction"
	AlertTypeHighDailySpending  = "high_daily_spending"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert is an ephemeral view object recomputed on every request. IDs are
// composite keys derived from the alert's stable inputs so that two
// computations over the same transaction snapshot produce identical IDs,
// which lets consumers de-duplicate across refreshes.
type Alert struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Category      string     `json:"category,omitempty"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	Message       string     `json:"message"`
	Severity      string     `json:"severity"`
	Timestamp     time.Time  `json:"timestamp"`
	Amount        float64    `json:"amount,omitempty"`
	Date          string     `json:"date,omitempty"`
}

// AlertID builds a deterministic alert identifier from the alert type and
// its stable subject parts (category, transaction ID, or day key).
func AlertID(alertType string, parts ...string) string {
	id := alertType
	for _, p := range parts {
		id += ":" + p
	}
	return id
}

// AlertReport is the composed output of a spending-alert computation.
type AlertReport struct {
	UserID      uuid.UUID `json:"user_id"`
	Alerts      []Alert   `json:"alerts"`
	BucketKey   string    `json:"bucket_key"`
	GeneratedAt time.Time `json:"generated_at"`
}

// SeverityRank maps a severity label to its ordering weight. Used by tests
// to assert that severity never regresses as the underlying statistic grows.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// IsValidSeverity checks if the severity label is one of the known tiers
func IsValidSeverity(severity string) bool {
	return SeverityRank(severity) > 0
}

func (a Alert) String() string {
	return fmt.Sprintf("[%s/%s] %s", a.Type, a.Severity, a.Message)
}
