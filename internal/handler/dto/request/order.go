package request

import (
	"strings"
)

type CreateOrderRequest struct {
	SessionType string  `json:"session_type" binding:"required"`
	Format      string  `json:"format" binding:"required"`
	Gateway     string  `json:"gateway" binding:"required,oneof=razorpay payu"`
	CouponCode  *string `json:"coupon_code,omitempty"`
}

func (r CreateOrderRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
