package components

import (
	"context"

	"rentacar-api/internal/handler"
	"rentacar-api/internal/handler/api"
	"rentacar-api/internal/handler/middleware"
	"rentacar-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCarHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		middleware.NewHTTPMetrics,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter ties the limiter's cleanup goroutine to the fx lifecycle.
func NewRateLimiter(lc fx.Lifecycle, cfg config.RateLimitConfig) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl
}
