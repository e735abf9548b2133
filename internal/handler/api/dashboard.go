package api

import (
	"net/http"

	"franchise-store/internal/handler/middleware"
	"franchise-store/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the privileged surface behind the access policy
// gate. Route composition guarantees the policy middleware already ran.
type DashboardHandler struct {
	limiter *ratelimit.Limiter
}

func NewDashboardHandler(limiter *ratelimit.Limiter) *DashboardHandler {
	return &DashboardHandler{
		limiter: limiter,
	}
}

// @Summary Dashboard summary
// @Description Entry payload for the role-scoped dashboard
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	role, _ := middleware.GetUserRole(c)

	c.JSON(http.StatusOK, gin.H{
		"role":    role.String(),
		"section": "dashboard",
	})
}

// @Summary Clear a rate-limit lockout
// @Description Reset the attempt counter for a client key
// @Tags dashboard
// @Security BearerAuth
// @Param key path string true "Client key (IP or form-session ID)"
// @Success 204 "No Content"
// @Router /dashboard/rate-limits/{key} [delete]
func (h *DashboardHandler) ClearRateLimit(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client key required"})
		return
	}

	h.limiter.Reset(key)
	c.Status(http.StatusNoContent)
}
