package components

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/pricing"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/refund"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/commands"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingTable,
	NewRefundPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderUseCase,
		commands.NewVerifyUseCase,
		commands.NewRefundUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewPaymentQueries,
	),
)

func NewPricingTable(cfg config.Config) (*pricing.Table, error) {
	if cfg.Pricing.TableJSON != "" {
		return pricing.NewTableFromJSON(cfg.Pricing.TableJSON, cfg.Pricing.Currency)
	}
	return pricing.NewDefaultTable(cfg.Pricing.Currency), nil
}

func NewRefundPolicy(cfg config.Config) *refund.Policy {
	return refund.NewPolicy(cfg.Refund.TimeZoneOffsetMin, cfg.Refund.FullRefundWindow)
}
