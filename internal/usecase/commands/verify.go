package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

var (
	ErrPaymentNotFound      = errs.New("payment not found")
	ErrPaymentStateConflict = errs.New("payment state conflict")
)

type VerifyResult struct {
	Verified bool
}

type VerifyCommands interface {
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*VerifyResult, error)
}

type verifyUseCaseImpl struct {
	payments shared.PaymentRepository
	gateways shared.GatewayRegistry
	clock    clock.Clock
	logger   *slog.Logger
}

func NewVerifyUseCase(
	payments shared.PaymentRepository,
	gateways shared.GatewayRegistry,
	clk clock.Clock,
	logger *slog.Logger,
) VerifyCommands {
	return &verifyUseCaseImpl{
		payments: payments,
		gateways: gateways,
		clock:    clk,
		logger:   logger,
	}
}

// VerifyPayment checks a gateway completion callback. All three inputs are
// attacker-controlled. A signature mismatch is a normal business outcome,
// not an error: the result is verified=false with no detail about where the
// comparison failed. A repeated callback for an already-paid order with the
// same payment id succeeds without a second state transition.
func (u *verifyUseCaseImpl) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*VerifyResult, error) {
	rec, err := u.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	gw, ok := u.gateways.Get(rec.Gateway)
	if !ok {
		return nil, errs.New("payment references unknown gateway")
	}

	// Cheap format rejection before any cryptographic work.
	if !strings.HasPrefix(orderID, gw.OrderIDPrefix()) || !strings.HasPrefix(paymentID, gw.PaymentIDPrefix()) {
		u.logger.Warn("payment verification rejected: malformed ids", "order_prefix", redact(orderID))
		return &VerifyResult{Verified: false}, nil
	}

	if !gw.VerifySignature(orderID, paymentID, signature) {
		u.logger.Warn("payment verification failed: invalid signature", "order_prefix", redact(orderID))
		return &VerifyResult{Verified: false}, nil
	}

	updated, err := u.payments.MarkPaid(ctx, orderID, paymentID, signature, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if updated {
		u.logger.Info("payment verified", "order_prefix", redact(orderID))
		return &VerifyResult{Verified: true}, nil
	}

	// No pending row transitioned: either a duplicate callback or a refund
	// already landed. Re-read to decide.
	rec, err = u.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rec.GatewayPaymentID != nil && *rec.GatewayPaymentID == paymentID {
		return &VerifyResult{Verified: true}, nil
	}
	return nil, errs.Mark(
		errs.New("payment already settled with a different payment id"),
		ErrPaymentStateConflict,
	)
}

// redact keeps only a short order-id prefix for logs. Full gateway
// identifiers never reach the log stream.
func redact(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "…"
}
