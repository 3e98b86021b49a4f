package bootstrap

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra/gateway"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGatewayRegistry,
	),
)

func NewGatewayRegistry(cfg config.Config) shared.GatewayRegistry {
	return gateway.NewRegistry(
		gateway.NewRazorpayClient(cfg.Razorpay),
		gateway.NewPayUClient(cfg.PayU),
	)
}
