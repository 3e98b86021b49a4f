package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/pricing"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/queries"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

var (
	ErrUnknownOffering         = errs.New("unknown session type or format")
	ErrUnknownGateway          = errs.New("unknown payment gateway")
	ErrCouponRejected          = errs.New("coupon rejected")
	ErrCouponCheckUnavailable  = errs.New("coupon service unavailable")
	ErrGatewayUnavailable      = errs.New("payment gateway unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CouponRejectedError carries the user-facing rejection reason while still
// matching ErrCouponRejected via errors.Is.
type CouponRejectedError struct {
	Reason string
}

func (e *CouponRejectedError) Error() string {
	return "coupon rejected: " + e.Reason
}

func (e *CouponRejectedError) Unwrap() error {
	return ErrCouponRejected
}

type CreateOrderParams struct {
	SessionType string
	Format      string
	Gateway     string
	CouponCode  *string
}

type OrderResult struct {
	OrderID       string
	AmountPaise   int64
	Currency      string
	DiscountPaise int64
	CouponCode    string
	Free          bool
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderResult, error)
}

type orderUseCaseImpl struct {
	prices   *pricing.Table
	coupons  queries.CouponQueries
	payments shared.PaymentRepository
	gateways shared.GatewayRegistry
	logger   *slog.Logger
}

func NewOrderUseCase(
	prices *pricing.Table,
	coupons queries.CouponQueries,
	payments shared.PaymentRepository,
	gateways shared.GatewayRegistry,
	logger *slog.Logger,
) OrderCommands {
	return &orderUseCaseImpl{
		prices:   prices,
		coupons:  coupons,
		payments: payments,
		gateways: gateways,
		logger:   logger,
	}
}

// CreateOrder computes the payable amount for an offering, applies an
// optional coupon and creates a gateway order for the final amount. The
// pending payment record is persisted before the order id is returned, so a
// later verification callback always finds its row.
func (u *orderUseCaseImpl) CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderResult, error) {
	base, ok := u.prices.BasePaise(params.SessionType, params.Format)
	if !ok {
		return nil, ErrUnknownOffering
	}

	// Free offerings never touch the coupon store or the gateway and leave
	// no pending payment behind.
	if base == 0 {
		return &OrderResult{
			OrderID:     "free_" + uuid.New().String(),
			AmountPaise: 0,
			Currency:    u.prices.Currency(),
			Free:        true,
		}, nil
	}

	gw, ok := u.gateways.Get(params.Gateway)
	if !ok {
		return nil, ErrUnknownGateway
	}

	couponResult, err := u.evaluateCoupon(ctx, params.CouponCode, base)
	if err != nil {
		return nil, err
	}

	final := base - couponResult.DiscountPaise
	if final < 0 {
		final = 0
	}

	receipt := uuid.New().String()
	orderID, err := gw.CreateOrder(ctx, final, u.prices.Currency(), receipt)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	rec := &payment.Record{
		OrderID:       orderID,
		Gateway:       gw.Name(),
		AmountPaise:   final,
		Currency:      u.prices.Currency(),
		Status:        payment.StatusPending,
		DiscountPaise: couponResult.DiscountPaise,
	}
	if couponResult.Applicable {
		rec.CouponID = couponResult.CouponID
		code := couponResult.CouponCode
		rec.CouponCode = &code
	}

	if err := u.payments.Insert(ctx, rec); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.logger.Info("order created",
		"order_id", orderID,
		"gateway", gw.Name(),
		"amount_paise", final,
		"discount_paise", couponResult.DiscountPaise,
	)

	return &OrderResult{
		OrderID:       orderID,
		AmountPaise:   final,
		Currency:      u.prices.Currency(),
		DiscountPaise: couponResult.DiscountPaise,
		CouponCode:    couponResult.CouponCode,
	}, nil
}

// evaluateCoupon runs the coupon evaluator against the base amount. When a
// code was explicitly supplied, an unreachable store or an ineligible coupon
// fails the whole order; silently charging full price would misinform the
// customer. No code at all is simply "no discount".
func (u *orderUseCaseImpl) evaluateCoupon(ctx context.Context, code *string, basePaise int64) (*queries.CouponResult, error) {
	if code == nil || *code == "" {
		return &queries.CouponResult{}, nil
	}

	result, err := u.coupons.Validate(ctx, *code, basePaise)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponCheckUnavailable)
	}
	if !result.Applicable {
		return nil, &CouponRejectedError{Reason: result.Message}
	}
	return result, nil
}
