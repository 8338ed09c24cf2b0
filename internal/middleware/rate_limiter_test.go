package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestRateLimiterMiddleware(t *testing.T) {
	suite.Run(t, new(RateLimiterMiddlewareSuite))
}

type RateLimiterMiddlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *RateLimiterMiddlewareSuite) SetupTest() {
	s.e = echo.New()
	// Reset shared state so limits from other tests don't bleed over
	mu.Lock()
	visitors = make(map[string]*visitor)
	mu.Unlock()
}

func (s *RateLimiterMiddlewareSuite) doRequest(handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func (s *RateLimiterMiddlewareSuite) TestAllowsWithinBurst() {
	middleware := RateLimiterWithConfig(5, 10)
	handler := middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		rec := s.doRequest(handler, "10.0.0.1")
		s.Equal(http.StatusOK, rec.Code)
	}
}

func (s *RateLimiterMiddlewareSuite) TestRejectsBeyondBurst() {
	middleware := RateLimiterWithConfig(1, 2)
	handler := middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.2").Code)
	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.2").Code)
	s.Equal(http.StatusTooManyRequests, s.doRequest(handler, "10.0.0.2").Code)
}

func (s *RateLimiterMiddlewareSuite) TestLimitsPerIP() {
	middleware := RateLimiterWithConfig(1, 1)
	handler := middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.3").Code)
	s.Equal(http.StatusTooManyRequests, s.doRequest(handler, "10.0.0.3").Code)

	// A different client is unaffected
	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.4").Code)
}
