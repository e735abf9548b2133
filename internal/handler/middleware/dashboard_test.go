//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"franchise-store/internal/domain/access"
	"franchise-store/internal/domain/user"
	"franchise-store/internal/handler/middleware"
	"franchise-store/internal/pkg/errs"
	"franchise-store/tests/common/httptest"
	usecasemock "franchise-store/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockDashboard *usecasemock.MockDashboardAccess
	userID        uuid.UUID
}

func (s *DashboardMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDashboard = usecasemock.NewMockDashboardAccess(s.mockCtrl)
	s.userID = uuid.New()

	dashboard := middleware.NewDashboardMiddleware(s.mockDashboard)
	s.router.GET("/dashboard",
		func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
				c.Set("user_role", user.RoleFranchise)
			}
		},
		dashboard.RequireDashboardAccess(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"section": "dashboard"})
		},
	)
}

func (s *DashboardMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(DashboardMiddlewareTestSuite))
}

func (s *DashboardMiddlewareTestSuite) TestRequireDashboardAccess() {
	url := "/dashboard"

	s.Run("granted decision lets the handler run", func() {
		s.mockDashboard.EXPECT().
			Authorize(gomock.Any(), user.Authenticated(s.userID), nil).
			Return(access.Granted(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "dashboard")
	})

	s.Run("authentication failures return 401 with a login redirect", func() {
		s.mockDashboard.EXPECT().
			Authorize(gomock.Any(), user.Anonymous(), nil).
			Return(access.Denied(access.ReasonNotAuthenticated), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertDenialResponse(s.T(), rec, http.StatusUnauthorized, "not_authenticated", "login")
	})

	s.Run("provisioning failures return 403 with a home redirect", func() {
		for _, reason := range []access.Reason{
			access.ReasonNoProfile,
			access.ReasonRoleNotAllowed,
			access.ReasonNotVerified,
			access.ReasonAccessNotEnabled,
		} {
			s.Run(string(reason), func() {
				s.mockDashboard.EXPECT().
					Authorize(gomock.Any(), user.Authenticated(s.userID), nil).
					Return(access.Denied(reason), nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

				httptest.AssertDenialResponse(s.T(), rec, http.StatusForbidden, string(reason), "home")
			})
		}
	})

	s.Run("role mismatch returns 401 with a login redirect", func() {
		asserted := user.RoleAdmin
		s.mockDashboard.EXPECT().
			Authorize(gomock.Any(), user.Authenticated(s.userID), &asserted).
			Return(access.Denied(access.ReasonRoleMismatch), nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, "token",
			map[string]string{middleware.AssertedRoleHeader: "admin"})

		httptest.AssertDenialResponse(s.T(), rec, http.StatusUnauthorized, "role_mismatch", "login")
	})

	s.Run("transient profile failure returns 503, not a verdict", func() {
		s.mockDashboard.EXPECT().
			Authorize(gomock.Any(), user.Authenticated(s.userID), nil).
			Return(access.Denied(access.ReasonProfileUnavailable),
				errs.Mark(errs.New("connection refused"), errs.ErrProfileUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Profile temporarily unavailable")
	})

	s.Run("an empty role header is treated as no assertion", func() {
		s.mockDashboard.EXPECT().
			Authorize(gomock.Any(), user.Authenticated(s.userID), nil).
			Return(access.Granted(), nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, "token",
			map[string]string{middleware.AssertedRoleHeader: ""})

		s.Equal(http.StatusOK, rec.Code)
	})
}
