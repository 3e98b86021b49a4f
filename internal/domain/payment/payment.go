package payment

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusRefunded Status = "refunded"
)

// Record is the persisted state of one gateway order. It is created when an
// order is built, marked paid on successful signature verification and
// marked refunded after a successful gateway refund. It is never deleted.
type Record struct {
	OrderID          string
	Gateway          string
	AmountPaise      int64
	Currency         string
	Status           Status
	CouponID         *uuid.UUID
	CouponCode       *string
	DiscountPaise    int64
	BookingID        *uuid.UUID
	GatewayPaymentID *string
	GatewaySignature *string
	PaidAt           *time.Time
	RefundedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
