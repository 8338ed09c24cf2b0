package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/errors"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ForecastHandler serves oracle-backed cash flow forecasts
type ForecastHandler struct {
	forecastService services.ForecastServiceInterface
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService services.ForecastServiceInterface) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// GetCashFlowForecast predicts the coming months' cash flow from the
// user's historical monthly totals
//
// Method: GET /api/v1/forecast
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - historical: Mapping month -> {income, expense}
//   - predictions: Array of {month, predictedIncome, predictedExpense, confidence, factors}
//   - insights: Array of free-text observations
//   - recommendations: Array of free-text suggestions
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 422: Not enough transaction history, or unreadable oracle output
//   - 500: Internal server error
//   - 503: Forecast oracle unavailable or timed out
func (h *ForecastHandler) GetCashFlowForecast(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	forecast, err := h.forecastService.GetCashFlowForecast(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: forecast,
	})
}

func (h *ForecastHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrNoForecastHistory) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("not enough transaction history to forecast"))
	}

	if errors.Is(err, services.ErrOracleTimeout) {
		return SendError(c, apierrors.OracleTimeout)
	}

	if errors.Is(err, services.ErrOracleUnavailable) {
		return SendError(c, apierrors.OracleUnavailable)
	}

	if errors.Is(err, services.ErrOracleMalformed) {
		return SendError(c, apierrors.OracleMalformedOutput)
	}

	if errors.Is(err, services.ErrOracleMissingFields) {
		return SendError(c, apierrors.OracleMissingFields)
	}

	return SendSystemError(c, err)
}
