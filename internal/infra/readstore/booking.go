package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/infra"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

// BookingReadStore reads scheduling fields from the bookings table. The
// scheduled time is the local wall-clock string entered at booking time.
type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindScheduledTime(ctx context.Context, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, scheduled_date, scheduled_time
		 FROM bookings
		 WHERE id = $1`,
		bookingID,
	)

	var (
		snap          shared.BookingSnapshot
		scheduledDate time.Time
		scheduledTime *string
	)
	if err := row.Scan(&snap.ID, &scheduledDate, &scheduledTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err, infra.KindFromPgError(err))
	}

	snap.ScheduledDate = scheduledDate
	snap.ScheduledTime = scheduledTime
	return &snap, nil
}
