package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	TransactionSourceManual    = "MANUAL"
	TransactionSourceUPIImport = "UPI_IMPORT"
	TransactionSourceRecurring = "RECURRING"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionSource = errors.New("invalid transaction source")
	ErrInvalidAmount            = errors.New("transaction amount must not be negative")
	ErrMissingDescription       = errors.New("transaction description is required")
)

// Transaction is a single income or expense record. Transactions are
// immutable once created; imported records go through a duplicate check
// before insertion.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Type         string          `gorm:"type:varchar(10);not null;index" json:"type"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category     string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Source       string          `gorm:"type:varchar(20);not null;default:'MANUAL'" json:"source"`
	UpiReference string          `gorm:"type:varchar(100)" json:"upi_reference,omitempty"`
	BankAccount  string          `gorm:"type:varchar(10)" json:"bank_account,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Source == "" {
		t.Source = TransactionSourceManual
	}

	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionSource(t.Source) {
		return ErrInvalidTransactionSource
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return ErrMissingDescription
	}

	if t.Category != "" && len(t.Category) > 50 {
		return errors.New("category too long")
	}

	return nil
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true if the transaction is an income
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionSource checks if the transaction source is valid
func IsValidTransactionSource(source string) bool {
	switch source {
	case TransactionSourceManual, TransactionSourceUPIImport, TransactionSourceRecurring:
		return true
	default:
		return false
	}
}
