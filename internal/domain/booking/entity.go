package booking

import (
	"errors"
	"time"

	"homestay-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount       = errors.New("number of guests must be at least 1")
	ErrTooManyGuests           = errors.New("number of guests exceeds room capacity")
	ErrNegativePrice           = errors.New("price cannot be negative")
	ErrInvalidCoupon           = errors.New("invalid coupon")
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

// RoomSpec is the slice of room state the factory needs to price and cap a
// booking.
type RoomSpec struct {
	ID            uuid.UUID
	HomestayID    uuid.UUID
	Type          string
	PricePerNight int64
	MaxGuests     int
}

type Booking struct {
	id             uuid.UUID
	homestayID     uuid.UUID
	roomID         uuid.UUID
	userID         uuid.UUID
	stay           stay.Range
	numberOfGuests int
	guestInfo      GuestInfo
	quote          Quote
	couponCode     *string
	paymentMethod  *string
	status         Status
	paymentStatus  PaymentStatus
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructBooking(
	id, homestayID, roomID, userID uuid.UUID,
	stayRange stay.Range,
	numberOfGuests int,
	guestInfo GuestInfo,
	quote Quote,
	couponCode *string,
	paymentMethod *string,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		homestayID:     homestayID,
		roomID:         roomID,
		userID:         userID,
		stay:           stayRange,
		numberOfGuests: numberOfGuests,
		guestInfo:      guestInfo,
		quote:          quote,
		couponCode:     couponCode,
		paymentMethod:  paymentMethod,
		status:         status,
		paymentStatus:  paymentStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo moves the booking along the status machine. A cancellation
// after payment flips the payment status to refunded; refund execution
// belongs to the payment collaborator.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	b.status = next
	if next == StatusCancelled && b.paymentStatus == PaymentPaid {
		b.paymentStatus = PaymentRefunded
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) MarkPaid(now time.Time) {
	b.paymentStatus = PaymentPaid
	b.updatedAt = now
}

func (b *Booking) IsActive() bool {
	return b.status == StatusPending || b.status == StatusConfirmed
}

func (b *Booking) HasEnded(now time.Time) bool {
	return !stay.DateOf(now).Before(b.stay.CheckOut())
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) HomestayID() uuid.UUID       { return b.homestayID }
func (b *Booking) RoomID() uuid.UUID           { return b.roomID }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) Stay() stay.Range            { return b.stay }
func (b *Booking) NumberOfGuests() int         { return b.numberOfGuests }
func (b *Booking) GuestInfo() GuestInfo        { return b.guestInfo }
func (b *Booking) Quote() Quote                { return b.quote }
func (b *Booking) CouponCode() *string         { return b.couponCode }
func (b *Booking) PaymentMethod() *string      { return b.paymentMethod }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
