package readstore

import (
	"context"
	"errors"
	"time"

	"homestay-booking/internal/infra"
	"homestay-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HomestayReadStore struct {
	db *pgxpool.Pool
}

func NewHomestayReadStore(db *pgxpool.Pool) *HomestayReadStore {
	return &HomestayReadStore{db: db}
}

func (r *HomestayReadStore) homestayQuery() sq.SelectBuilder {
	return qb.Select(
		"h.id", "h.host_id", "h.name", "h.description", "h.address", "h.city",
		"h.check_in_time", "h.check_out_time",
		"COALESCE(MIN(r.price_per_night), 0)",
		"COALESCE(MAX(r.price_per_night), 0)",
		"h.created_at", "h.updated_at",
	).
		From("homestays h").
		LeftJoin("rooms r ON r.homestay_id = h.id").
		GroupBy("h.id")
}

func (r *HomestayReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HomestayView, error) {
	query, args, err := r.homestayQuery().Where(sq.Eq{"h.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build homestay query", err)
	}

	view, err := scanHomestay(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("homestay not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find homestay", err)
	}
	return view, nil
}

func (r *HomestayReadStore) FindAll(ctx context.Context) ([]*queries.HomestayView, error) {
	query, args, err := r.homestayQuery().OrderBy("h.created_at DESC").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build homestay list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list homestays", err)
	}
	defer rows.Close()

	views := make([]*queries.HomestayView, 0)
	for rows.Next() {
		view, err := scanHomestay(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan homestay row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read homestay rows", err)
	}
	return views, nil
}

func (r *HomestayReadStore) FindRooms(ctx context.Context, homestayID uuid.UUID) ([]*queries.RoomView, error) {
	query, args, err := qb.Select(
		"id", "homestay_id", "type", "name", "price_per_night", "max_guests", "status",
	).
		From("rooms").
		Where(sq.Eq{"homestay_id": homestayID}).
		OrderBy("type", "name").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(
			&v.ID, &v.HomestayID, &v.Type, &v.Name,
			&v.PricePerNight, &v.MaxGuests, &v.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		v.Available = true
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return views, nil
}

// BookedDates expands active bookings overlapping [from, to) into the set of
// stayed-on dates. Check-out day is excluded: the room turns over that day.
func (r *HomestayReadStore) BookedDates(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	query, args, err := qb.Select("check_in", "check_out").
		From("bookings").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Eq{"status": []string{"pending", "confirmed"}}).
		Where(sq.Lt{"check_in": to}).
		Where(sq.Gt{"check_out": from}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booked dates query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked range", err)
		}
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			if !d.Before(from) && d.Before(to) {
				dates = append(dates, d)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked ranges", err)
	}
	return dates, nil
}

func scanHomestay(row pgx.Row) (*queries.HomestayView, error) {
	var v queries.HomestayView
	err := row.Scan(
		&v.ID, &v.HostID, &v.Name, &v.Description, &v.Address, &v.City,
		&v.CheckInTime, &v.CheckOutTime,
		&v.MinPrice, &v.MaxPrice,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
