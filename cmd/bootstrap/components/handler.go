package components

import (
	"homestay-booking/internal/handler"
	"homestay-booking/internal/handler/api"
	"homestay-booking/internal/handler/middleware"
	"homestay-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewHomestayHandler,
		api.NewBookingHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
