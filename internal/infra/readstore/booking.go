package readstore

import (
	"context"
	"errors"
	"time"

	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/infra"
	"homestay-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := qb.Select(
		"b.id", "b.homestay_id", "h.name", "h.host_id", "b.room_id", "rm.type", "b.user_id",
		"b.check_in", "b.check_out", "b.number_of_guests",
		"b.guest_name", "b.guest_email", "b.guest_phone",
		"b.original_price", "b.discount_amount", "b.total_price",
		"b.coupon_code", "b.payment_method", "b.status", "b.payment_status",
		"b.created_at", "b.updated_at",
	).
		From("bookings b").
		Join("homestays h ON h.id = b.homestay_id").
		Join("rooms rm ON rm.id = b.room_id").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var v queries.BookingView
	var checkIn, checkOut time.Time
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.HomestayID, &v.HomestayName, &v.HostID, &v.RoomID, &v.RoomType, &v.UserID,
		&checkIn, &checkOut, &v.NumberOfGuests,
		&v.GuestName, &v.GuestEmail, &v.GuestPhone,
		&v.OriginalPrice, &v.DiscountAmount, &v.TotalPrice,
		&v.CouponCode, &v.PaymentMethod, &v.Status, &v.PaymentStatus,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	v.CheckIn = stay.FormatDate(checkIn)
	v.CheckOut = stay.FormatDate(checkOut)
	if stayRange, rangeErr := stay.NewRange(checkIn, checkOut); rangeErr == nil {
		v.Nights = stayRange.Nights()
	}
	return &v, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, sq.Eq{"b.user_id": userID})
}

func (r *BookingReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*queries.BookingListItem, error) {
	return r.list(ctx, sq.Eq{"h.host_id": hostID})
}

func (r *BookingReadStore) list(ctx context.Context, pred any) ([]*queries.BookingListItem, error) {
	query, args, err := qb.Select(
		"b.id", "h.name", "rm.type", "rm.name", "b.guest_name", "b.guest_email",
		"b.check_in", "b.check_out", "b.number_of_guests",
		"b.total_price", "b.status", "b.payment_status", "b.created_at",
	).
		From("bookings b").
		Join("homestays h ON h.id = b.homestay_id").
		Join("rooms rm ON rm.id = b.room_id").
		Where(pred).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		var checkIn, checkOut time.Time
		if err := rows.Scan(
			&item.ID, &item.HomestayName, &item.RoomType, &item.RoomName,
			&item.GuestName, &item.GuestEmail,
			&checkIn, &checkOut, &item.NumberOfGuests,
			&item.TotalPrice, &item.Status, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckIn = stay.FormatDate(checkIn)
		item.CheckOut = stay.FormatDate(checkOut)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
