package handlers

import (
	"net/http"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	userRepo        repositories.UserRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	userRepo repositories.UserRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		generator:       services.NewSampleDataGenerator(),
	}
}

// SeedSampleData creates a demo user with a default account, a budget and
// several months of realistic transactions
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 6, max: 24)
//   - perMonth: Transactions per month (default: 25, max: 200)
//
// Success Response: 201 Created
//   - user_id, email: The seeded demo user
//   - transactions_created: Number of transactions inserted
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	months := getIntParam(c, "months", 6)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	perMonth := getIntParam(c, "perMonth", 25)
	if perMonth < 1 {
		perMonth = 1
	}
	if perMonth > 200 {
		perMonth = 200
	}

	user := h.generator.GenerateUser()
	if err := h.userRepo.Create(user); err != nil {
		return SendSystemError(c, err)
	}

	account := h.generator.GenerateAccount(user.ID, true)
	if err := h.accountRepo.Create(account); err != nil {
		return SendSystemError(c, err)
	}

	budget := h.generator.GenerateBudget(user.ID)
	if err := h.budgetRepo.Create(budget); err != nil {
		return SendSystemError(c, err)
	}

	monthStart := time.Now().AddDate(0, -(months - 1), 0)
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, monthStart.Location())

	created := 0
	for i := 0; i < months; i++ {
		month := monthStart.AddDate(0, i, 0)
		transactions := h.generator.GenerateMonthlyTransactions(user.ID, account.ID, month, perMonth)
		if err := h.transactionRepo.CreateBatch(transactions); err != nil {
			return SendSystemError(c, err)
		}
		created += len(transactions)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"user_id":              user.ID,
			"email":                user.Email,
			"account_id":           account.ID,
			"budget_amount":        budget.Amount,
			"transactions_created": created,
		},
		Message: "sample data generated",
	})
}
