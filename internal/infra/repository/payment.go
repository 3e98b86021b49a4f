package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
)

// PaymentRepository owns the payments table. The paid and refunded
// transitions are single conditional UPDATE statements keyed by order id and
// current status, so concurrent duplicate gateway callbacks cannot apply the
// same transition twice.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Insert(ctx context.Context, rec *payment.Record) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments
		    (order_id, gateway, amount_paise, currency, status,
		     coupon_id, coupon_code, discount_paise, booking_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.OrderID, rec.Gateway, rec.AmountPaise, rec.Currency, string(rec.Status),
		rec.CouponID, rec.CouponCode, rec.DiscountPaise, rec.BookingID,
	)
	if err != nil {
		kind := infra.KindFromPgError(err)
		if kind == infra.KindConflict {
			return infra.WrapRepoErr("payment already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert payment", err, kind)
	}
	return nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*payment.Record, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT order_id, gateway, amount_paise, currency, status,
		        coupon_id, coupon_code, discount_paise, booking_id,
		        gateway_payment_id, gateway_signature,
		        paid_at, refunded_at, created_at, updated_at
		 FROM payments
		 WHERE order_id = $1`,
		orderID,
	)

	var (
		rec    payment.Record
		status string
	)
	err := row.Scan(
		&rec.OrderID, &rec.Gateway, &rec.AmountPaise, &rec.Currency, &status,
		&rec.CouponID, &rec.CouponCode, &rec.DiscountPaise, &rec.BookingID,
		&rec.GatewayPaymentID, &rec.GatewaySignature,
		&rec.PaidAt, &rec.RefundedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err, infra.KindFromPgError(err))
	}

	rec.Status = payment.Status(status)
	return &rec, nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payments
		 SET status = $2, gateway_payment_id = $3, gateway_signature = $4,
		     paid_at = $5, updated_at = now()
		 WHERE order_id = $1 AND status = $6`,
		orderID, string(payment.StatusPaid), paymentID, signature, paidAt, string(payment.StatusPending),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment paid", err, infra.KindFromPgError(err))
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PaymentRepository) MarkRefunded(ctx context.Context, orderID string, refundedAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payments
		 SET status = $2, refunded_at = $3, updated_at = now()
		 WHERE order_id = $1 AND status = $4`,
		orderID, string(payment.StatusRefunded), refundedAt, string(payment.StatusPaid),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment refunded", err, infra.KindFromPgError(err))
	}
	return tag.RowsAffected() == 1, nil
}
