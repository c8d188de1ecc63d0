package booking

import (
	"homestay-booking/internal/domain/coupon"
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking validates the stay against the room and prices it. The
// coupon, when present, has already passed server-side validation; its
// resolved discount feeds the quote.
func (f *Factory) CreateBooking(
	room RoomSpec,
	userID uuid.UUID,
	stayRange stay.Range,
	numberOfGuests int,
	guestInfo GuestInfo,
	paymentMethod *string,
	couponEntity *coupon.Coupon,
) (*Booking, error) {
	now := f.Clock.Now()

	if stayRange.CheckIn().Before(stay.DateOf(now)) {
		return nil, stay.ErrCheckInPast
	}
	if numberOfGuests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if room.MaxGuests > 0 && numberOfGuests > room.MaxGuests {
		return nil, ErrTooManyGuests
	}

	originalPrice := room.PricePerNight * int64(stayRange.Nights())
	if originalPrice < 0 {
		return nil, ErrNegativePrice
	}

	var discountAmount int64
	var couponCode *string
	if couponEntity != nil {
		if err := couponEntity.EligibleFor(originalPrice, now); err != nil {
			return nil, err
		}
		discountAmount = couponEntity.DiscountAmount(originalPrice)
		code := couponEntity.Code().String()
		couponCode = &code
	}

	return &Booking{
		id:             uuid.New(),
		homestayID:     room.HomestayID,
		roomID:         room.ID,
		userID:         userID,
		stay:           stayRange,
		numberOfGuests: numberOfGuests,
		guestInfo:      guestInfo,
		quote:          NewQuote(room.PricePerNight, stayRange.Nights(), discountAmount),
		couponCode:     couponCode,
		paymentMethod:  paymentMethod,
		status:         StatusPending,
		paymentStatus:  PaymentUnpaid,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}
