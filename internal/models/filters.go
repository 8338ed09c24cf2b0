package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters captures the optional listing filters for transactions
type TransactionFilters struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	Category  string
	Source    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Offset    int
	Limit     int
}
