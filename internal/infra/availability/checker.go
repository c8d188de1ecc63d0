// Package availability answers per-room date-range availability against the
// bookings table.
package availability

import (
	"context"

	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Checker struct {
	db *pgxpool.Pool
}

func NewChecker(db *pgxpool.Pool) *Checker {
	return &Checker{db: db}
}

// IsAvailable reports whether the room has no active booking overlapping the
// stay. Overlap is half-open: a booking checking out on the stay's check-in
// day does not block it.
func (c *Checker) IsAvailable(ctx context.Context, roomID uuid.UUID, stayRange stay.Range) (bool, error) {
	query, args, err := qb.Select("1").
		From("bookings").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Eq{"status": []string{"pending", "confirmed"}}).
		Where(sq.Lt{"check_in": stayRange.CheckOut()}).
		Where(sq.Gt{"check_out": stayRange.CheckIn()}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build availability query", err)
	}

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	if rows.Next() {
		return false, nil
	}
	if err := rows.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to read availability rows", err)
	}
	return true, nil
}
