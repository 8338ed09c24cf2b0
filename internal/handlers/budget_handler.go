package handlers

import (
	"errors"
	"net/http"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	apierrors "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/errors"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler manages the user's monthly budget ceiling
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRepo repositories.BudgetRepositoryInterface) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo}
}

// CreateBudget sets a new monthly budget. Budgets are append-only; the
// most recently created one is the active budget.
//
// Method: POST /api/v1/budgets
// Authentication: Required (JWT)
//
// Request body:
//   - amount: Positive monthly ceiling
//
// Success Response: 201 Created
//
// Error Responses:
//   - 400: Invalid request body
//   - 401: Unauthorized (missing JWT)
//   - 422: Non-positive amount
//   - 500: Internal server error
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	budget := &models.Budget{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		if errors.Is(err, models.ErrInvalidBudgetAmount) {
			return SendError(c, apierrors.BudgetInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    budget,
		Message: "budget created",
	})
}

// GetBudget retrieves the user's active budget
//
// Method: GET /api/v1/budgets/current
// Authentication: Required (JWT)
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 404: No budget configured
//   - 500: Internal server error
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budget, err := h.budgetRepo.GetLatestByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: budget,
	})
}
