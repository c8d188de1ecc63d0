//go:build unit || e2e

package builder

import (
	"time"

	reqdto "homestay-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

// FutureDate formats a date the given number of days from now, so default
// stays never fall into the past as the suite ages.
func FutureDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format(time.DateOnly)
}

type BookingBuilder struct {
	RoomID         uuid.UUID
	CheckIn        string
	CheckOut       string
	NumberOfGuests int
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	CouponCode     *string
	PaymentMethod  *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:         uuid.New(),
		CheckIn:        FutureDate(30),
		CheckOut:       FutureDate(33),
		NumberOfGuests: 2,
		GuestName:      "Nguyen Van An",
		GuestEmail:     "an.nguyen@example.com",
		GuestPhone:     "+84901234567",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:         b.RoomID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		NumberOfGuests: b.NumberOfGuests,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		CouponCode:     b.CouponCode,
		PaymentMethod:  b.PaymentMethod,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoom(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithCoupon(code string) *BookingBuilder {
	b.CouponCode = &code
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.NumberOfGuests = n
	return b
}
