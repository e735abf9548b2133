//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"franchise-store/internal/domain/user"
	reqdto "franchise-store/internal/handler/dto/request"
	resdto "franchise-store/internal/handler/dto/response"
	"franchise-store/tests/common/dbtest"
	"franchise-store/tests/common/httptest"
	"franchise-store/tests/e2e"
	jwtHelper "franchise-store/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.Config.JWT)
}

func (s *authSuite) createCustomer(email string) {
	s.jwtHelper.CreateUser(s.T(), s.DB, dbtest.UserFixture{
		Email:      email,
		Role:       "customer",
		IsActive:   true,
		IsVerified: true,
	})
}

func (s *authSuite) TestLoginFlow() {
	s.Run("valid credentials set token cookies", func() {
		s.createCustomer("shopper@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("shopper@example.com", response.User.Email)

		access := httptest.ExtractCookie(rec, "access_token")
		require.NotNil(s.T(), access)
		s.True(access.HttpOnly)

		// the cookie authenticates follow-up requests
		meRec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL,
			nil, httptest.ExtractCookies(rec), "")
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), meRec, http.StatusOK, &me)
		s.Equal("shopper@example.com", me.Email)
	})

	s.Run("unknown email and wrong password are indistinguishable", func() {
		s.createCustomer("shopper@example.com")

		wrongPass := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "shopper@example.com", Password: "wrong-password"}, "")
		unknown := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "ghost@example.com", Password: "password123"}, "")

		s.Equal(http.StatusUnauthorized, wrongPass.Code)
		s.Equal(http.StatusUnauthorized, unknown.Code)
		s.JSONEq(wrongPass.Body.String(), unknown.Body.String())
	})

	s.Run("refresh rotates the pair", func() {
		s.createCustomer("shopper@example.com")

		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, loginRec.Code)

		refreshRec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL,
			nil, httptest.ExtractCookies(loginRec), "")

		s.Equal(http.StatusNoContent, refreshRec.Code)
		s.NotNil(httptest.ExtractCookie(refreshRec, "access_token"))
		s.NotNil(httptest.ExtractCookie(refreshRec, "refresh_token"))
	})

	s.Run("logout clears the cookies", func() {
		s.createCustomer("shopper@example.com")

		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, loginRec.Code)

		logoutRec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL,
			nil, httptest.ExtractCookies(loginRec), "")

		s.Equal(http.StatusNoContent, logoutRec.Code)
		access := httptest.ExtractCookie(logoutRec, "access_token")
		require.NotNil(s.T(), access)
		s.Negative(access.MaxAge)
	})

	// Runs last: it exhausts the shared client IP's login budget.
	s.Run("repeated attempts lock the client out until an operator clears it", func() {
		s.createCustomer("shopper@example.com")
		badLogin := reqdto.LoginRequest{Email: "shopper@example.com", Password: "wrong-password"}

		var lockedOut bool
		for i := 0; i < s.Config.RateLimit.MaxAttempts+1; i++ {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, badLogin, "")
			if rec.Code == http.StatusTooManyRequests {
				lockedOut = true
				break
			}
			s.Equal(http.StatusUnauthorized, rec.Code)
		}
		require.True(s.T(), lockedOut, "the window must exhaust")

		count, err := dbtest.CountSecurityEvents(s.DB, "rate_limit_exceeded")
		require.NoError(s.T(), err)
		s.GreaterOrEqual(count, 1)

		// a provisioned operator clears the lockout for the client key
		enabled := true
		adminID := s.jwtHelper.CreateUser(s.T(), s.DB, dbtest.UserFixture{
			Email:           "ops@example.com",
			Role:            "admin",
			IsActive:        true,
			IsVerified:      true,
			DashboardAccess: &enabled,
		})
		adminToken := s.jwtHelper.AccessToken(s.T(), adminID, user.RoleAdmin)

		clearRec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/dashboard/rate-limits/192.0.2.1", nil, adminToken)
		s.Equal(http.StatusNoContent, clearRec.Code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "shopper@example.com", Password: "password123"}, "")
		s.Equal(http.StatusOK, rec.Code, "cleared client is admitted immediately")
	})
}
