package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive      = errors.New("coupon is inactive")
	ErrCouponNotYetValid   = errors.New("coupon is not yet valid")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrUsageLimitReached   = errors.New("coupon usage limit reached")
	ErrBelowMinimumAmount  = errors.New("amount below coupon minimum")
	ErrNegativeOrderAmount = errors.New("order amount cannot be negative")
)

type Coupon struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	minAmountPaise int64
	validFrom      *time.Time
	validUntil     *time.Time
	maxUses        *int32
	usedCount      int32
	isActive       bool
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discountType DiscountType,
	discountValue float64,
	minAmountPaise int64,
	validFrom, validUntil *time.Time,
	maxUses *int32,
	usedCount int32,
	isActive bool,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(discountType, discountValue)
	if err != nil {
		return nil, err
	}

	if minAmountPaise < 0 {
		minAmountPaise = 0
	}

	return &Coupon{
		id:             id,
		code:           couponCode,
		discount:       discount,
		minAmountPaise: minAmountPaise,
		validFrom:      validFrom,
		validUntil:     validUntil,
		maxUses:        maxUses,
		usedCount:      usedCount,
		isActive:       isActive,
	}, nil
}

// ValidateUsage checks eligibility for the given amount at the given time.
// The first failing check wins; the order is fixed and relied upon by
// callers surfacing user-facing rejection reasons:
// inactive, not yet valid, expired, usage limit, minimum amount.
func (c *Coupon) ValidateUsage(amountPaise int64, now time.Time) error {
	if amountPaise < 0 {
		return ErrNegativeOrderAmount
	}
	if !c.isActive {
		return ErrCouponInactive
	}
	if c.validFrom != nil && now.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if c.validUntil != nil && now.After(*c.validUntil) {
		return ErrCouponExpired
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrUsageLimitReached
	}
	if amountPaise < c.minAmountPaise {
		return ErrBelowMinimumAmount
	}
	return nil
}

// DiscountPaise computes the discount for an eligible amount. A zero result
// means the coupon applies but takes nothing off; that is not an error.
func (c *Coupon) DiscountPaise(amountPaise int64) int64 {
	return c.discount.AmountPaise(amountPaise)
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Discount() Discount     { return c.discount }
func (c *Coupon) MinAmountPaise() int64  { return c.minAmountPaise }
func (c *Coupon) ValidFrom() *time.Time  { return c.validFrom }
func (c *Coupon) ValidUntil() *time.Time { return c.validUntil }
func (c *Coupon) UsedCount() int32       { return c.usedCount }
func (c *Coupon) IsActive() bool         { return c.isActive }
