package writerepo

import (
	"context"
	"errors"
	"time"

	"homestay-booking/internal/domain/booking"
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	quote := b.Quote()
	guest := b.GuestInfo()

	query, args, err := qb.Insert("bookings").
		Columns(
			"id", "homestay_id", "room_id", "user_id",
			"check_in", "check_out", "number_of_guests",
			"guest_name", "guest_email", "guest_phone",
			"original_price", "discount_amount", "total_price",
			"coupon_code", "payment_method", "status", "payment_status",
			"created_at", "updated_at",
		).
		Values(
			b.ID(), b.HomestayID(), b.RoomID(), b.UserID(),
			b.Stay().CheckIn(), b.Stay().CheckOut(), b.NumberOfGuests(),
			guest.FullName(), guest.Email(), guest.Phone(),
			quote.OriginalPrice, quote.DiscountAmount, quote.TotalPrice,
			b.CouponCode(), b.PaymentMethod(), b.Status().String(), string(b.PaymentStatus()),
			b.CreatedAt(), b.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return classifyWriteErr("failed to create booking", err)
	}
	return nil
}

// FindForUpdate locks the booking row for a status change and resolves the
// owning host for authorization.
func (r *BookingRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, uuid.UUID, error) {
	query, args, err := qb.Select(
		"b.id", "b.homestay_id", "b.room_id", "b.user_id",
		"b.check_in", "b.check_out", "b.number_of_guests",
		"b.guest_name", "b.guest_email", "b.guest_phone",
		"b.original_price", "b.discount_amount", "b.total_price",
		"b.coupon_code", "b.payment_method", "b.status", "b.payment_status",
		"b.created_at", "b.updated_at", "h.host_id",
	).
		From("bookings b").
		Join("homestays h ON h.id = b.homestay_id").
		Where(sq.Eq{"b.id": id}).
		Suffix("FOR UPDATE OF b").
		ToSql()
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to build booking lock query", err)
	}

	var (
		bookingID, homestayID, roomID, userID   uuid.UUID
		checkIn, checkOut, createdAt, updatedAt time.Time
		numberOfGuests                          int
		guestName, guestEmail, guestPhone       string
		originalPrice, discountAmount, total    int64
		couponCode, paymentMethod               *string
		status, paymentStatus                   string
		hostID                                  uuid.UUID
	)
	err = tx.QueryRow(ctx, query, args...).Scan(
		&bookingID, &homestayID, &roomID, &userID,
		&checkIn, &checkOut, &numberOfGuests,
		&guestName, &guestEmail, &guestPhone,
		&originalPrice, &discountAmount, &total,
		&couponCode, &paymentMethod, &status, &paymentStatus,
		&createdAt, &updatedAt, &hostID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, uuid.Nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	stayRange, err := stay.NewRange(checkIn, checkOut)
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("stored booking has invalid stay range", err)
	}

	entity := booking.ReconstructBooking(
		bookingID, homestayID, roomID, userID,
		stayRange,
		numberOfGuests,
		booking.ReconstructGuestInfo(guestName, guestEmail, guestPhone),
		booking.Quote{
			Nights:         stayRange.Nights(),
			OriginalPrice:  originalPrice,
			DiscountAmount: discountAmount,
			TotalPrice:     total,
		},
		couponCode,
		paymentMethod,
		booking.Status(status),
		booking.PaymentStatus(paymentStatus),
		createdAt, updatedAt,
	)
	return entity, hostID, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	query, args, err := qb.Update("bookings").
		Set("status", b.Status().String()).
		Set("payment_status", string(b.PaymentStatus())).
		Set("updated_at", b.UpdatedAt()).
		Where(sq.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return classifyWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Postgres error codes: 23505 unique_violation, 23P01 exclusion_violation.
func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01":
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
