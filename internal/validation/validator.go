package validation

import (
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

// New builds a validator with the domain rules registered. Request DTOs
// reference these rules by tag name.
func New() *validator.Validate {
	v := validator.New()

	// transaction_type accepts the canonical INCOME/EXPENSE values only
	_ = v.RegisterValidation("transaction_type", func(fl validator.FieldLevel) bool {
		return models.IsValidTransactionType(fl.Field().String())
	})

	// transaction_source accepts MANUAL, UPI_IMPORT and RECURRING
	_ = v.RegisterValidation("transaction_source", func(fl validator.FieldLevel) bool {
		return models.IsValidTransactionSource(fl.Field().String())
	})

	return v
}
