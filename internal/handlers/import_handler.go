package handlers

import (
	"errors"
	"net/http"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	apierrors "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/errors"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ImportHandler turns raw UPI/bank message text into stored transactions
type ImportHandler struct {
	importService services.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ParseTransaction extracts structured transaction fields from free text
// without persisting anything
//
// Method: POST /api/v1/import/parse
// Authentication: Required (JWT)
//
// Request body:
//   - text: Raw UPI/bank message (10-2000 chars)
//
// Success Response: 200 OK
//   - amount, type, description, category, date, upi_reference, bank_account
//
// Error Responses:
//   - 400: Invalid request body
//   - 401: Unauthorized (missing JWT)
//   - 422: Required fields could not be extracted from the text
//   - 503: Parsing oracle unavailable or timed out
func (h *ImportHandler) ParseTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ParseTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	parsed, err := h.importService.ParseTransaction(c.Request().Context(), userID, req.Text)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: parsed,
	})
}

// ImportTransaction persists a previously parsed transaction to the
// user's default account
//
// Method: POST /api/v1/import
// Authentication: Required (JWT)
//
// Request body: parsed transaction fields (amount, type, description,
// category, date, upi_reference, bank_account)
//
// Success Response: 201 Created
//
// Error Responses:
//   - 400: Invalid request body
//   - 401: Unauthorized (missing JWT)
//   - 409: A similar transaction already exists within the 24h window
//   - 422: No default account configured
//   - 500: Internal server error
func (h *ImportHandler) ImportTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ImportTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	parsed := &dto.ParsedTransaction{
		Amount:       req.Amount,
		Type:         req.Type,
		Description:  req.Description,
		Category:     req.Category,
		Date:         req.Date,
		UpiReference: req.UpiReference,
		BankAccount:  req.BankAccount,
	}

	transaction, err := h.importService.ImportTransaction(c.Request().Context(), userID, parsed)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "transaction imported",
	})
}

// BatchImport parses and imports multiple raw messages in one call.
// Duplicates are tallied separately from failures; a partially failed
// batch still returns 200 with the per-item tally.
//
// Method: POST /api/v1/import/batch
// Authentication: Required (JWT)
//
// Request body:
//   - texts: Array of raw messages (1-50 items)
//
// Success Response: 200 OK
//   - success, failed, duplicates: Integer tallies
//   - errors: Array of per-item failure descriptions
func (h *ImportHandler) BatchImport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.BatchImportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	result, err := h.importService.BatchImport(c.Request().Context(), userID, req.Texts)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result,
	})
}

func (h *ImportHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrDuplicateTransaction) {
		return SendError(c, apierrors.TransactionDuplicate)
	}

	if errors.Is(err, models.ErrNoDefaultAccount) {
		return SendError(c, apierrors.TransactionNoDefaultAccount)
	}

	if errors.Is(err, services.ErrUnparseableText) {
		return SendError(c, apierrors.OracleMissingFields)
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

	return SendSystemError(c, err)
}
