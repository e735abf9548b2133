//go:build e2e

package dashboard_test

import (
	"net/http"
	"testing"

	"franchise-store/internal/domain/user"
	"franchise-store/internal/handler/middleware"
	"franchise-store/tests/common/dbtest"
	"franchise-store/tests/common/httptest"
	"franchise-store/tests/e2e"
	jwtHelper "franchise-store/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const dashboardURL = "/api/dashboard"

type dashboardSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestDashboardSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(dashboardSuite))
}

func (s *dashboardSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.Config.JWT)
}

func provisioned(role string) dbtest.UserFixture {
	enabled := true
	return dbtest.UserFixture{
		Email:           role + "@example.com",
		Role:            role,
		IsActive:        true,
		IsVerified:      true,
		DashboardAccess: &enabled,
	}
}

func (s *dashboardSuite) TestAccessChain() {
	s.Run("fully provisioned franchise user enters", func() {
		id := s.jwtHelper.CreateUser(s.T(), s.DB, provisioned("franchise"))
		token := s.jwtHelper.AccessToken(s.T(), id, user.RoleFranchise)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dashboardURL, nil, token)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "franchise")
	})

	s.Run("anonymous request bounces to login", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dashboardURL, nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("customer role is turned away to home", func() {
		f := provisioned("customer")
		id := s.jwtHelper.CreateUser(s.T(), s.DB, f)
		token := s.jwtHelper.AccessToken(s.T(), id, user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dashboardURL, nil, token)

		httptest.AssertDenialResponse(s.T(), rec, http.StatusForbidden, "role_not_allowed", "home")
	})

	s.Run("unverified account is denied", func() {
		f := provisioned("franchise")
		f.IsVerified = false
		id := s.jwtHelper.CreateUser(s.T(), s.DB, f)
		token := s.jwtHelper.AccessToken(s.T(), id, user.RoleFranchise)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dashboardURL, nil, token)

		httptest.AssertDenialResponse(s.T(), rec, http.StatusForbidden, "not_verified", "home")
	})

	s.Run("missing dashboard flag fails closed", func() {
		f := provisioned("franchise")
		f.DashboardAccess = nil
		id := s.jwtHelper.CreateUser(s.T(), s.DB, f)
		token := s.jwtHelper.AccessToken(s.T(), id, user.RoleFranchise)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dashboardURL, nil, token)

		httptest.AssertDenialResponse(s.T(), rec, http.StatusForbidden, "access_not_enabled", "home")
	})

	s.Run("stale client role header is denied and recorded", func() {
		id := s.jwtHelper.CreateUser(s.T(), s.DB, provisioned("franchise"))
		token := s.jwtHelper.AccessToken(s.T(), id, user.RoleFranchise)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, dashboardURL, nil, token,
			map[string]string{middleware.AssertedRoleHeader: "admin"})

		httptest.AssertDenialResponse(s.T(), rec, http.StatusUnauthorized, "role_mismatch", "login")

		count, err := dbtest.CountSecurityEvents(s.DB, "role_mismatch")
		require.NoError(s.T(), err)
		s.Equal(1, count, "exactly one event per denied request")
	})

	s.Run("matching client role header passes", func() {
		id := s.jwtHelper.CreateUser(s.T(), s.DB, provisioned("owner"))
		token := s.jwtHelper.AccessToken(s.T(), id, user.RoleOwner)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, dashboardURL, nil, token,
			map[string]string{middleware.AssertedRoleHeader: "owner"})

		s.Equal(http.StatusOK, rec.Code)
	})
}
