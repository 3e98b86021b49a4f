package shared

import (
	"time"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/coupon"
)

// CouponSnapshot is the read model of a coupon row. Coupons are maintained
// by an external admin process; this service only reads them.
type CouponSnapshot struct {
	ID             uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  float64
	MinAmountPaise int64
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	MaxUses        *int32
	UsedCount      int32
	IsActive       bool
}

// ToDomain builds the coupon entity from the stored row.
func (s *CouponSnapshot) ToDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(
		s.ID,
		s.Code,
		coupon.DiscountType(s.DiscountType),
		s.DiscountValue,
		s.MinAmountPaise,
		s.ValidFrom,
		s.ValidUntil,
		s.MaxUses,
		s.UsedCount,
		s.IsActive,
	)
}

// BookingSnapshot carries the scheduling fields needed by the refund policy.
type BookingSnapshot struct {
	ID            uuid.UUID
	ScheduledDate time.Time
	ScheduledTime *string
}
