package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentView struct {
	OrderID       string
	Gateway       string
	AmountPaise   int64
	Currency      string
	Status        string
	CouponCode    *string
	DiscountPaise int64
	BookingID     *uuid.UUID
	PaidAt        *time.Time
	RefundedAt    *time.Time
	CreatedAt     time.Time
}

type PaymentQueries interface {
	GetByOrderID(ctx context.Context, orderID string) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	payments shared.PaymentRepository
}

func NewPaymentQueries(payments shared.PaymentRepository) PaymentQueries {
	return &paymentQueriesImpl{payments: payments}
}

func (q *paymentQueriesImpl) GetByOrderID(ctx context.Context, orderID string) (*PaymentView, error) {
	rec, err := q.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Wrap(err, "failed to load payment")
	}

	return &PaymentView{
		OrderID:       rec.OrderID,
		Gateway:       rec.Gateway,
		AmountPaise:   rec.AmountPaise,
		Currency:      rec.Currency,
		Status:        string(rec.Status),
		CouponCode:    rec.CouponCode,
		DiscountPaise: rec.DiscountPaise,
		BookingID:     rec.BookingID,
		PaidAt:        rec.PaidAt,
		RefundedAt:    rec.RefundedAt,
		CreatedAt:     rec.CreatedAt,
	}, nil
}
