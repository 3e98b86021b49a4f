package bootstrap

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
