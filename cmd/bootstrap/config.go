package bootstrap

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
