package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/errors"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandler serves spending alerts computed from the user's
// transaction history
type AlertHandler struct {
	insightService services.InsightServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(insightService services.InsightServiceInterface) *AlertHandler {
	return &AlertHandler{insightService: insightService}
}

// GetSpendingAlerts recomputes and returns the user's spending alerts
//
// Method: GET /api/v1/alerts
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - user_id: UUID of the user
//   - alerts: Array of alert records (type, severity, message, deterministic id)
//   - bucket_key: Month key the alerts were computed for
//   - generated_at: ISO 8601 timestamp
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 404: User not found
//   - 500: Internal server error
func (h *AlertHandler) GetSpendingAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	report, err := h.insightService.GetSpendingAlerts(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
	})
}

// MarkAlertAsRead acknowledges a single alert
//
// Method: POST /api/v1/alerts/:alertId/read
// Authentication: Required (JWT)
//
// Path parameters:
//   - alertId: Deterministic alert identifier from a previous computation
//
// Success Response: 200 OK
//   - message: Acknowledgement message
//
// Error Responses:
//   - 400: Invalid alert ID
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *AlertHandler) MarkAlertAsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	alertID := c.Param("alertId")
	if alertID == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("alertId is required"))
	}

	if err := h.insightService.MarkAlertAsRead(c.Request().Context(), userID, alertID); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "alert marked as read",
	})
}

func (h *AlertHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return SendError(c, apierrors.UserNotFound)
	}

	if errors.Is(err, services.ErrInvalidAlertID) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid alert ID"))
	}

	return SendSystemError(c, err)
}
