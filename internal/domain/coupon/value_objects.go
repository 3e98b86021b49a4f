package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode    = errors.New("invalid coupon code format")
	ErrInvalidDiscountType  = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountValue = errors.New("discount value cannot be negative")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is the canonical (trimmed, uppercased) coupon code.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount computes the amount taken off a price in paise. Fixed discount
// values are stored in rupees and converted to paise on application.
type Discount struct {
	kind  DiscountType
	value float64
}

func NewDiscount(kind DiscountType, value float64) (Discount, error) {
	if kind != DiscountPercentage && kind != DiscountFixed {
		return Discount{}, ErrInvalidDiscountType
	}
	if value < 0 {
		return Discount{}, ErrInvalidDiscountValue
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType {
	return d.kind
}

func (d Discount) Value() float64 {
	return d.value
}

// AmountPaise returns the discount for the given amount, never exceeding it.
func (d Discount) AmountPaise(amountPaise int64) int64 {
	if amountPaise <= 0 {
		return 0
	}

	if d.kind == DiscountPercentage {
		percent := math.Min(100, math.Max(0, d.value))
		return int64(math.Floor(float64(amountPaise) * percent / 100))
	}

	off := int64(math.Floor(d.value * 100))
	if off > amountPaise {
		return amountPaise
	}
	return off
}
