package infra

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// KindFromPgError separates "the store could not be reached" from ordinary
// query failures. Callers must never report an unreachable store as an
// invalid coupon or a failed payment.
func KindFromPgError(err error) RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code):
			return KindUnavailable
		case pgErr.Code == pgerrcode.UniqueViolation:
			return KindConflict
		default:
			return KindDBFailure
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindUnavailable
	}

	return KindDBFailure
}
