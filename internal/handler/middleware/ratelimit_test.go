//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"franchise-store/internal/handler/middleware"
	"franchise-store/internal/pkg/errs"
	"franchise-store/internal/pkg/clock"
	"franchise-store/internal/pkg/ratelimit"
	"franchise-store/internal/usecase"
	"franchise-store/tests/common/httptest"
	usecasemock "franchise-store/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RateLimitMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockEvents *usecasemock.MockSecurityEventSink
	clk        *clock.FakeClock
	limiter    *ratelimit.Limiter
}

func (s *RateLimitMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEvents = usecasemock.NewMockSecurityEventSink(s.mockCtrl)
	s.clk = clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.limiter = ratelimit.NewLimiter(s.clk, 3, time.Minute)

	rateLimit := middleware.NewRateLimitMiddleware(s.limiter, s.mockEvents)
	s.router.POST("/login", rateLimit.Limit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (s *RateLimitMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRateLimitMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(RateLimitMiddlewareTestSuite))
}

func (s *RateLimitMiddlewareTestSuite) TestLimit() {
	s.Run("each denial is reported as a security event", func() {
		for i := 0; i < 3; i++ {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/login", nil, "")
			s.Equal(http.StatusOK, rec.Code)
		}

		s.mockEvents.EXPECT().Report(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event usecase.SecurityEvent) error {
				s.Equal(usecase.EventRateLimitExceeded, event.Kind)
				s.NotEmpty(event.ClientKey)
				s.Nil(event.UserID)
				return nil
			}).Times(2)

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/login", nil, "")
			s.Equal(http.StatusTooManyRequests, rec.Code)
		}
	})

	s.Run("a failing sink still returns 429", func() {
		s.mockEvents.EXPECT().Report(gomock.Any(), gomock.Any()).
			Return(errs.New("sink unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/login", nil, "")
		s.Equal(http.StatusTooManyRequests, rec.Code)
	})

	s.Run("the window expiring re-admits the client", func() {
		s.clk.Advance(time.Minute + time.Second)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/login", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}
