package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "User Not Found",
			code:     UserNotFound,
			expected: "User not found",
		},
		{
			name:     "Budget Not Found",
			code:     BudgetNotFound,
			expected: "No budget configured",
		},
		{
			name:     "Transaction Duplicate",
			code:     TransactionDuplicate,
			expected: "A similar transaction already exists",
		},
		{
			name:     "No Default Account",
			code:     TransactionNoDefaultAccount,
			expected: "No default account found for user",
		},
		{
			name:     "Oracle Unavailable",
			code:     OracleUnavailable,
			expected: "Insight service temporarily unavailable",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the generic fallback message
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("BOGUS_999")))
}

// TestIsValidErrorCode tests error code registration checks
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(AuthInvalidCredentials))
	s.True(IsValidErrorCode(OracleTimeout))
	s.True(IsValidErrorCode(TransactionDuplicate))
	s.False(IsValidErrorCode(ErrorCode("BOGUS_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
