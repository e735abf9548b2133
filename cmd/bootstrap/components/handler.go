package components

import (
	"franchise-store/internal/handler"
	"franchise-store/internal/handler/api"
	"franchise-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		middleware.NewDashboardMiddleware,
		middleware.NewRateLimitMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
