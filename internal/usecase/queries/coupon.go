package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/coupon"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/clock"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

var ErrCouponStoreUnavailable = errs.New("coupon store unavailable")

// CouponResult reports the outcome of evaluating a coupon against an amount.
// Applicable with a zero discount means the coupon is eligible but takes
// nothing off; that is distinct from an invalid coupon and not an error.
type CouponResult struct {
	Applicable    bool
	DiscountPaise int64
	Message       string
	CouponID      *uuid.UUID
	CouponCode    string
}

type CouponQueries interface {
	Validate(ctx context.Context, code string, amountPaise int64) (*CouponResult, error)
}

type couponQueriesImpl struct {
	coupons shared.CouponStore
	clock   clock.Clock
}

func NewCouponQueries(coupons shared.CouponStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		coupons: coupons,
		clock:   clk,
	}
}

// Validate normalizes the code and evaluates the coupon against the amount.
// An empty code is "not applicable, no error". Invalid coupons come back as
// a result with a user-facing message; only an unreachable store is an error,
// so callers can tell "invalid" apart from "could not check".
func (q *couponQueriesImpl) Validate(ctx context.Context, code string, amountPaise int64) (*CouponResult, error) {
	normalized := coupon.NormalizeCode(code)
	if normalized == "" {
		return &CouponResult{}, nil
	}

	snap, err := q.coupons.FindByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponResult{Message: "Invalid coupon code"}, nil
		}
		return nil, errs.Mark(err, ErrCouponStoreUnavailable)
	}

	entity, err := snap.ToDomain()
	if err != nil {
		return &CouponResult{Message: "Invalid coupon code"}, nil
	}

	if err := entity.ValidateUsage(amountPaise, q.clock.Now()); err != nil {
		return &CouponResult{Message: rejectionMessage(err)}, nil
	}

	discount := entity.DiscountPaise(amountPaise)
	id := entity.ID()
	result := &CouponResult{
		Applicable:    true,
		DiscountPaise: discount,
		CouponID:      &id,
		CouponCode:    entity.Code().String(),
	}
	if discount == 0 {
		result.Message = "Coupon does not apply a discount to this amount"
	}
	return result, nil
}

// rejectionMessage maps the first failing eligibility check to the message
// shown to the user. The check order is fixed in the domain entity.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, coupon.ErrCouponInactive):
		return "Invalid coupon code"
	case errors.Is(err, coupon.ErrCouponNotYetValid):
		return "This coupon is not valid yet"
	case errors.Is(err, coupon.ErrCouponExpired):
		return "This coupon has expired"
	case errors.Is(err, coupon.ErrUsageLimitReached):
		return "This coupon has reached its usage limit"
	case errors.Is(err, coupon.ErrBelowMinimumAmount):
		return "Order amount is below this coupon's minimum"
	default:
		return "Invalid coupon code"
	}
}
