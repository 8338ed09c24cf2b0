package handlers

import (
	"net/http"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	apierrors "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/errors"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// ListTransactions retrieves paginated transaction history with filtering
//
// Method: GET /api/v1/transactions
// Authentication: Required (JWT)
//
// Query parameters:
//   - start_date: Filter by start date (YYYY-MM-DD)
//   - end_date: Filter by end date (YYYY-MM-DD, exclusive)
//   - type: Filter by transaction type (INCOME, EXPENSE)
//   - category: Filter by category
//   - page: Page number (default: 1)
//   - per_page: Results per page (default: 20, max: 100)
//
// Error Responses:
//   - 400: Invalid parameters
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ListTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	filters := models.TransactionFilters{
		UserID:   userID,
		Type:     req.Type,
		Category: req.Category,
	}

	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid start_date, expected YYYY-MM-DD"))
		}
		filters.StartDate = &parsed
	}

	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid end_date, expected YYYY-MM-DD"))
		}
		filters.EndDate = &parsed
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = defaultPageLimit
	}
	if perPage > maxPageLimit {
		perPage = maxPageLimit
	}

	filters.Offset = (page - 1) * perPage
	filters.Limit = perPage

	transactions, total, err := h.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TransactionListResponse{
			Transactions: transactions,
			Total:        total,
			Page:         page,
			PerPage:      perPage,
		},
	})
}

// CreateTransaction records a manually entered transaction
//
// Method: POST /api/v1/transactions
// Authentication: Required (JWT)
//
// Request body:
//   - account_id: UUID of the target account
//   - type: INCOME or EXPENSE
//   - amount: Positive amount
//   - category, description: Classification fields
//   - date: Transaction date (default: now)
//
// Success Response: 201 Created
//
// Error Responses:
//   - 400: Invalid request body
//   - 401: Unauthorized (missing JWT)
//   - 403: Account belongs to another user
//   - 404: Account not found
//   - 500: Internal server error
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid account_id"))
	}

	account, err := h.accountRepo.GetByID(accountID)
	if err != nil {
		if err == repositories.ErrAccountNotFound {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	if account.UserID != userID {
		return SendError(c, apierrors.AuthInsufficientPermission)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Type:        req.Type,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		Source:      models.TransactionSourceManual,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "transaction created",
	})
}
