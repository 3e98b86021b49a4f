package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
)

// CouponStore reads coupons. This service never writes them; usage counts
// are maintained by the booking service that owns the coupons table.
type CouponStore interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type BookingStore interface {
	FindScheduledTime(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error)
}

// PaymentRepository persists payment records. Status transitions are
// conditional single-statement updates so duplicate gateway callbacks cannot
// apply the same transition twice.
type PaymentRepository interface {
	Insert(ctx context.Context, rec *payment.Record) error
	FindByOrderID(ctx context.Context, orderID string) (*payment.Record, error)
	// MarkPaid transitions pending -> paid. Returns false when no pending
	// row matched.
	MarkPaid(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (bool, error)
	// MarkRefunded transitions paid -> refunded. Returns false when no paid
	// row matched.
	MarkRefunded(ctx context.Context, orderID string, refundedAt time.Time) (bool, error)
}

// PaymentGateway is one of the two checkout providers. The caller picks the
// gateway per order; this core never chooses between them.
type PaymentGateway interface {
	Name() string
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error)
	Refund(ctx context.Context, paymentID string, amountPaise int64) error
	VerifySignature(orderID, paymentID, signature string) bool
	OrderIDPrefix() string
	PaymentIDPrefix() string
}

type GatewayRegistry interface {
	Get(name string) (PaymentGateway, bool)
}
