package middleware

import (
	"net/http"

	"franchise-store/internal/domain/access"
	"franchise-store/internal/domain/user"
	"franchise-store/internal/handler/httperr"
	"franchise-store/internal/pkg/errs"
	"franchise-store/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssertedRoleHeader carries the role the SPA cached client-side. It is
// never trusted: the policy chain compares it against the stored role and
// any divergence is a security event.
const AssertedRoleHeader = "X-Dashboard-Role"

type DashboardMiddleware struct {
	dashboardAccess usecase.DashboardAccess
}

func NewDashboardMiddleware(dashboardAccess usecase.DashboardAccess) *DashboardMiddleware {
	return &DashboardMiddleware{
		dashboardAccess: dashboardAccess,
	}
}

// RequireDashboardAccess evaluates the full policy chain before any
// dashboard content is composed. The denial body carries the redirect
// target so the front end can route (login vs home).
func (m *DashboardMiddleware) RequireDashboardAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		assertedRole := extractAssertedRole(c)

		decision, err := m.dashboardAccess.Authorize(c.Request.Context(), principal, assertedRole)
		if decision.IsGranted() {
			c.Next()
			return
		}

		if err != nil && errs.Is(err, errs.ErrProfileUnavailable) {
			// Transient read failure: neutral error, not a denial verdict.
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Profile temporarily unavailable", deniedDetail(decision))
			return
		}

		status := http.StatusForbidden
		if decision.Redirect() == access.RedirectLogin {
			status = http.StatusUnauthorized
		}

		c.AbortWithStatusJSON(status, gin.H{
			"error":    "Dashboard access denied",
			"reason":   string(decision.Reason()),
			"redirect": string(decision.Redirect()),
		})
	}
}

func extractAssertedRole(c *gin.Context) *user.Role {
	raw := c.GetHeader(AssertedRoleHeader)
	if raw == "" {
		return nil
	}
	// Invalid strings still travel into the chain; an asserted role that
	// parses to nothing can never equal the stored role.
	role := user.Role(raw)
	return &role
}

func deniedDetail(decision access.Decision) gin.H {
	return gin.H{
		"reason":   string(decision.Reason()),
		"redirect": string(decision.Redirect()),
	}
}
