package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/coupon"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

// CouponReadStore reads the coupons table owned by the admin side of the
// booking system. Strictly read-only here.
type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	normalized := coupon.NormalizeCode(code)

	row := r.pool.QueryRow(ctx,
		`SELECT id, code, discount_type, discount_value, min_amount_paise,
		        valid_from, valid_until, max_uses, used_count, is_active
		 FROM coupons
		 WHERE upper(code) = $1`,
		normalized,
	)

	var (
		snap       shared.CouponSnapshot
		id         uuid.UUID
		validFrom  *time.Time
		validUntil *time.Time
		maxUses    *int32
	)
	err := row.Scan(
		&id, &snap.Code, &snap.DiscountType, &snap.DiscountValue, &snap.MinAmountPaise,
		&validFrom, &validUntil, &maxUses, &snap.UsedCount, &snap.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err, infra.KindFromPgError(err))
	}

	snap.ID = id
	snap.ValidFrom = validFrom
	snap.ValidUntil = validUntil
	snap.MaxUses = maxUses
	return &snap, nil
}
