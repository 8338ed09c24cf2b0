package repositories

import (
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)

	// GetByUserAndDateRange returns the user's transactions with a date in
	// [startDate, endDate), ordered by date ascending.
	GetByUserAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)

	// GetRecentExpenses returns the user's most recent expense transactions
	// dated on or after since, newest first, capped at limit.
	GetRecentExpenses(userID uuid.UUID, since time.Time, limit int) ([]models.Transaction, error)

	// FindDuplicate looks for an existing transaction of the same user with
	// the same amount and description dated within 24 hours either side of
	// date. Returns nil when no duplicate exists.
	FindDuplicate(userID uuid.UUID, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error)

	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error

	// GetLatestByUserID returns the user's most recently created budget.
	// When several budgets exist the newest one wins.
	GetLatestByUserID(userID uuid.UUID) (*models.Budget, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)

	// GetDefaultByUserID returns the account flagged as the user's default,
	// the landing place for imported transactions.
	GetDefaultByUserID(userID uuid.UUID) (*models.Account, error)
}
