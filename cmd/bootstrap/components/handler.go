package components

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/api"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/handler/middleware"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk)
}
