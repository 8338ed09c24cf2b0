package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/errors"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the chart-facing aggregations: raw analytics
// windows, trends, category insights, budget variance, savings rate and
// the composed dashboard overview
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalyticsData retrieves the raw transactions and budget for a window
//
// Method: GET /api/v1/analytics
// Authentication: Required (JWT)
//
// Query parameters:
//   - timeRange: "1month", "3months", "6months" or "1year" (default: 6months)
//
// Error Responses:
//   - 400: Invalid timeRange
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *AnalyticsHandler) GetAnalyticsData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	timeRange := c.QueryParam("timeRange")

	data, err := h.analyticsService.GetAnalyticsData(c.Request().Context(), userID, timeRange)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

// GetExpenseTrends retrieves the per-period expense series with growth rates
//
// Method: GET /api/v1/analytics/trends
// Authentication: Required (JWT)
//
// Query parameters:
//   - period: "monthly" or "yearly" (default: monthly)
func (h *AnalyticsHandler) GetExpenseTrends(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	period := c.QueryParam("period")

	trends, err := h.analyticsService.GetExpenseTrends(c.Request().Context(), userID, period)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: trends,
	})
}

// GetCategoryInsights compares per-category spend between the current and
// previous calendar month
//
// Method: GET /api/v1/analytics/categories
// Authentication: Required (JWT)
func (h *AnalyticsHandler) GetCategoryInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	insights, err := h.analyticsService.GetCategoryInsights(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: insights,
	})
}

// GetBudgetVariance projects the current month's spend against the budget
//
// Method: GET /api/v1/analytics/budget-variance
// Authentication: Required (JWT)
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 404: No budget configured
//   - 500: Internal server error
func (h *AnalyticsHandler) GetBudgetVariance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	variance, err := h.analyticsService.GetBudgetVarianceAnalysis(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: variance,
	})
}

// GetSavingsRate retrieves the monthly savings series with its average
//
// Method: GET /api/v1/analytics/savings-rate
// Authentication: Required (JWT)
func (h *AnalyticsHandler) GetSavingsRate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	savings, err := h.analyticsService.GetSavingsRateAnalysis(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: savings,
	})
}

// GetDashboardOverview composes the dashboard panels. Individual sections
// degrade to an error string on failure, so this endpoint only fails as a
// whole on context or auth errors.
//
// Method: GET /api/v1/analytics/dashboard
// Authentication: Required (JWT)
func (h *AnalyticsHandler) GetDashboardOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	overview, err := h.analyticsService.GetDashboardOverview(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: overview,
	})
}

func (h *AnalyticsHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidTimeRange) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("timeRange must be one of 1month, 3months, 6months, 1year"))
	}

	if errors.Is(err, services.ErrNoBudget) {
		return SendError(c, apierrors.BudgetNotFound)
	}

	if errors.Is(err, repositories.ErrUserNotFound) {
		return SendError(c, apierrors.UserNotFound)
	}

	return SendSystemError(c, err)
}
