package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"franchise-store/internal/pkg/ratelimit"
	"franchise-store/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	events  usecase.SecurityEventSink
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter, events usecase.SecurityEventSink) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		events:  events,
	}
}

// Limit throttles by client IP. It runs before the business handler on
// login and public form submissions. A denial only happens once the
// window is exhausted, so every denial is the repeated case and goes to
// the event sink.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if m.limiter.Allow(key) {
			c.Next()
			return
		}

		m.report(c.Request.Context(), key, c.FullPath())

		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many attempts, please try again later",
		})
	}
}

func (m *RateLimitMiddleware) report(ctx context.Context, key, path string) {
	event := usecase.SecurityEvent{
		Kind:       usecase.EventRateLimitExceeded,
		ClientKey:  key,
		Detail:     "rate limit exhausted for " + path,
		OccurredAt: time.Now(),
	}
	if err := m.events.Report(ctx, event); err != nil {
		slog.Error("failed to report rate limit event", "client_key", key, "error", err.Error())
	}
}
