package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/refund"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrPaymentNotRefundable = errs.New("payment is not in a refundable state")
	ErrAlreadyRefunded      = errs.New("payment already refunded")
	ErrNoRefundDue          = errs.New("no refund amount due")
	ErrRefundRejected       = errs.New("gateway rejected refund")
)

type RefundResult struct {
	OrderID     string
	AmountPaise int64
}

type RefundCommands interface {
	RefundPayment(ctx context.Context, orderID string) (*RefundResult, error)
}

type refundUseCaseImpl struct {
	payments shared.PaymentRepository
	bookings shared.BookingStore
	gateways shared.GatewayRegistry
	policy   *refund.Policy
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRefundUseCase(
	payments shared.PaymentRepository,
	bookings shared.BookingStore,
	gateways shared.GatewayRegistry,
	policy *refund.Policy,
	clk clock.Clock,
	logger *slog.Logger,
) RefundCommands {
	return &refundUseCaseImpl{
		payments: payments,
		bookings: bookings,
		gateways: gateways,
		policy:   policy,
		clock:    clk,
		logger:   logger,
	}
}

// RefundPayment computes the refund under the cancellation-window policy,
// executes it at the gateway and only then transitions the record to
// refunded. The policy itself is pure; all I/O happens here.
func (u *refundUseCaseImpl) RefundPayment(ctx context.Context, orderID string) (*RefundResult, error) {
	rec, err := u.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch rec.Status {
	case payment.StatusPaid:
	case payment.StatusRefunded:
		return nil, ErrAlreadyRefunded
	default:
		return nil, ErrPaymentNotRefundable
	}
	if rec.GatewayPaymentID == nil {
		return nil, ErrPaymentNotRefundable
	}

	booking, err := u.loadBooking(ctx, rec)
	if err != nil {
		return nil, err
	}

	amount, err := u.computeAmount(rec, booking)
	if err != nil {
		return nil, err
	}

	gw, ok := u.gateways.Get(rec.Gateway)
	if !ok {
		return nil, errs.New("payment references unknown gateway")
	}

	if err := gw.Refund(ctx, *rec.GatewayPaymentID, amount); err != nil {
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	updated, err := u.payments.MarkRefunded(ctx, orderID, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		return nil, ErrAlreadyRefunded
	}

	u.logger.Info("payment refunded",
		"order_prefix", redact(orderID),
		"refund_paise", amount,
	)

	return &RefundResult{OrderID: orderID, AmountPaise: amount}, nil
}

// loadBooking fetches scheduling data when the payment is linked to a
// booking. A payment without a booking link has no session time, which the
// policy treats as full refund.
func (u *refundUseCaseImpl) loadBooking(ctx context.Context, rec *payment.Record) (*shared.BookingSnapshot, error) {
	if rec.BookingID == nil {
		return nil, nil
	}

	booking, err := u.bookings.FindScheduledTime(ctx, *rec.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return booking, nil
}

func (u *refundUseCaseImpl) computeAmount(rec *payment.Record, booking *shared.BookingSnapshot) (int64, error) {
	now := u.clock.Now()

	var (
		amount int64
		err    error
	)
	if booking == nil {
		amount, err = u.policy.Compute(rec.AmountPaise, now, nil, now)
	} else {
		amount, err = u.policy.Compute(rec.AmountPaise, booking.ScheduledDate, booking.ScheduledTime, now)
	}
	if err != nil {
		if errors.Is(err, refund.ErrNoRefundDue) {
			return 0, ErrNoRefundDue
		}
		return 0, errs.Wrap(err, "refund policy failed")
	}
	return amount, nil
}
