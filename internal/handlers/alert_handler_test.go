package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AlertHandlerTestSuite is the test suite for AlertHandler
type AlertHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	insightService *service_mocks.MockInsightServiceInterface
	handler        *AlertHandler
	echo           *echo.Echo
}

func (s *AlertHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.insightService = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.handler = NewAlertHandler(s.insightService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *AlertHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAlertHandlerSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}

func (s *AlertHandlerTestSuite) newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func decodeErrorCode(s *suite.Suite, rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AlertHandlerTestSuite) TestGetSpendingAlerts_Success() {
	userID := uuid.New()
	c, rec := s.newContext(http.MethodGet, "/api/v1/alerts")
	c.Set("user_id", userID)

	report := &models.AlertReport{
		UserID: userID,
		Alerts: []models.Alert{
			{
				ID:       "spending_increase:food",
				Type:     models.AlertTypeSpendingIncrease,
				Category: "food",
				Message:  "You're spending 50% more on food this month (₹1500.00 vs ₹1000.00)",
				Severity: models.SeverityMedium,
			},
		},
		BucketKey:   time.Now().Format("2006-01"),
		GeneratedAt: time.Now(),
	}

	s.insightService.EXPECT().
		GetSpendingAlerts(gomock.Any(), userID).
		Return(report, nil)

	s.NoError(s.handler.GetSpendingAlerts(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.AlertReport `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(userID, response.Data.UserID)
	s.Require().Len(response.Data.Alerts, 1)
	s.Equal("spending_increase:food", response.Data.Alerts[0].ID)
}

func (s *AlertHandlerTestSuite) TestGetSpendingAlerts_MissingUserContext() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/alerts")

	s.NoError(s.handler.GetSpendingAlerts(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeErrorCode(&s.Suite, rec))
}

func (s *AlertHandlerTestSuite) TestGetSpendingAlerts_UserNotFound() {
	userID := uuid.New()
	c, rec := s.newContext(http.MethodGet, "/api/v1/alerts")
	c.Set("user_id", userID)

	s.insightService.EXPECT().
		GetSpendingAlerts(gomock.Any(), userID).
		Return(nil, fmt.Errorf("failed to load user: %w", repositories.ErrUserNotFound))

	s.NoError(s.handler.GetSpendingAlerts(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("USER_001", decodeErrorCode(&s.Suite, rec))
}

func (s *AlertHandlerTestSuite) TestGetSpendingAlerts_InternalError() {
	userID := uuid.New()
	c, rec := s.newContext(http.MethodGet, "/api/v1/alerts")
	c.Set("user_id", userID)

	s.insightService.EXPECT().
		GetSpendingAlerts(gomock.Any(), userID).
		Return(nil, fmt.Errorf("db down"))

	s.NoError(s.handler.GetSpendingAlerts(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", decodeErrorCode(&s.Suite, rec))
}

func (s *AlertHandlerTestSuite) TestMarkAlertAsRead_Success() {
	userID := uuid.New()
	c, rec := s.newContext(http.MethodPost, "/api/v1/alerts/spending_increase:food/read")
	c.Set("user_id", userID)
	c.SetParamNames("alertId")
	c.SetParamValues("spending_increase:food")

	s.insightService.EXPECT().
		MarkAlertAsRead(gomock.Any(), userID, "spending_increase:food").
		Return(nil)

	s.NoError(s.handler.MarkAlertAsRead(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AlertHandlerTestSuite) TestMarkAlertAsRead_InvalidID() {
	userID := uuid.New()
	c, rec := s.newContext(http.MethodPost, "/api/v1/alerts/bogus/read")
	c.Set("user_id", userID)
	c.SetParamNames("alertId")
	c.SetParamValues("bogus")

	s.insightService.EXPECT().
		MarkAlertAsRead(gomock.Any(), userID, "bogus").
		Return(services.ErrInvalidAlertID)

	s.NoError(s.handler.MarkAlertAsRead(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeErrorCode(&s.Suite, rec))
}
