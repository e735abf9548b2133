package bootstrap

import (
	"franchise-store/internal/pkg/clock"
	"franchise-store/internal/pkg/config"
	"franchise-store/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) *ratelimit.Limiter {
	return ratelimit.NewLimiter(clk, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
}
