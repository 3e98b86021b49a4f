package components

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra/readstore"
	repo_impl "github.com/noumaankhatib/mindfulqalb-payments/internal/infra/repository"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(shared.PaymentRepository)),
		),
		// Read-side stores over tables owned by the booking system
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(shared.CouponStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingStore)),
		),
	),
)
