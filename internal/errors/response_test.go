package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(UserNotFound, "trace-123")

	s.Equal("USER_001", resp.Error.Code)
	s.Equal("User not found", resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	resp := NewErrorResponse(BudgetNotFound, "trace-123", WithMessage("Set a budget first"))

	s.Equal("BUDGET_001", resp.Error.Code)
	s.Equal("Set a budget first", resp.Error.Message)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	resp := NewErrorResponse(ValidationGeneral, "trace-123", WithDetails("text: too short", "texts: too many"))

	s.Len(resp.Error.Details, 2)
	s.Contains(resp.Error.Details, "text: too short")
}

func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"amount": "must be positive"}, "trace-456")

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Require().Len(resp.Error.Details, 1)
	s.Equal("amount: must be positive", resp.Error.Details[0])
	s.Equal("trace-456", resp.Error.TraceID)
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := json.Unmarshal([]byte("{"), &struct{}{})
	resp, err := WrapSystemError(internal, "trace-789")

	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.Equal(internal, err)
	// The internal error never leaks into the client payload.
	s.NotContains(resp.Error.Message, err.Error())
}

func (s *ResponseTestSuite) TestToJSON() {
	resp := NewErrorResponse(TransactionDuplicate, "trace-1")

	data, err := resp.ToJSON()
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("TRANSACTION_004", decoded.Error.Code)
	s.Equal("trace-1", decoded.Error.TraceID)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{UserNotFound, http.StatusNotFound},
		{AccountNotFound, http.StatusNotFound},
		{BudgetNotFound, http.StatusNotFound},
		{TransactionDuplicate, http.StatusConflict},
		{TransactionNoDefaultAccount, http.StatusUnprocessableEntity},
		{OracleMissingFields, http.StatusUnprocessableEntity},
		{OracleMalformedOutput, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{OracleUnavailable, http.StatusServiceUnavailable},
		{OracleTimeout, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

func (s *ResponseTestSuite) TestClientServerErrorClassification() {
	s.True(NewErrorResponse(TransactionDuplicate, "t").IsClientError())
	s.False(NewErrorResponse(TransactionDuplicate, "t").IsServerError())

	s.True(NewErrorResponse(OracleUnavailable, "t").IsServerError())
	s.False(NewErrorResponse(OracleUnavailable, "t").IsClientError())
}
