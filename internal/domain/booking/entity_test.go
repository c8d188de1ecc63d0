//go:build unit

package booking_test

import (
	"testing"
	"time"

	"homestay-booking/internal/domain/booking"
	"homestay-booking/internal/domain/coupon"
	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func testFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(testNow))
}

func testRoom() booking.RoomSpec {
	return booking.RoomSpec{
		ID:            uuid.New(),
		HomestayID:    uuid.New(),
		Type:          "double",
		PricePerNight: 500000,
		MaxGuests:     2,
	}
}

func testRange(t *testing.T) stay.Range {
	t.Helper()
	r, err := stay.NewRange(
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func testGuest(t *testing.T) booking.GuestInfo {
	t.Helper()
	g, err := booking.NewGuestInfo("Nguyen Van A", "a@example.com", "0901234567")
	require.NoError(t, err)
	return g
}

func TestCreateBooking(t *testing.T) {
	t.Run("prices the stay and starts pending/unpaid", func(t *testing.T) {
		b, err := testFactory().CreateBooking(testRoom(), uuid.New(), testRange(t), 2, testGuest(t), nil, nil)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		assert.Equal(t, 3, b.Quote().Nights)
		assert.Equal(t, int64(1500000), b.Quote().OriginalPrice)
		assert.Equal(t, int64(1500000), b.Quote().TotalPrice)
		assert.Nil(t, b.CouponCode())
		assert.Equal(t, testNow, b.CreatedAt())
	})

	t.Run("applies a valid coupon", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.New(), "GIAM200", "Giam 200k", coupon.DiscountFlat, 200000, nil,
			testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0))
		require.NoError(t, err)

		b, err := testFactory().CreateBooking(testRoom(), uuid.New(), testRange(t), 2, testGuest(t), nil, c)
		require.NoError(t, err)

		assert.Equal(t, int64(200000), b.Quote().DiscountAmount)
		assert.Equal(t, int64(1300000), b.Quote().TotalPrice)
		require.NotNil(t, b.CouponCode())
		assert.Equal(t, "GIAM200", *b.CouponCode())
	})

	t.Run("rejects an expired coupon", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.New(), "HETHAN1", "Het han", coupon.DiscountFlat, 200000, nil,
			testNow.AddDate(0, -2, 0), testNow.AddDate(0, -1, 0))
		require.NoError(t, err)

		_, err = testFactory().CreateBooking(testRoom(), uuid.New(), testRange(t), 2, testGuest(t), nil, c)
		assert.ErrorIs(t, err, coupon.ErrCouponExpired)
	})

	t.Run("rejects a stay starting in the past", func(t *testing.T) {
		r, err := stay.NewRange(
			time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 23, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		_, err = testFactory().CreateBooking(testRoom(), uuid.New(), r, 2, testGuest(t), nil, nil)
		assert.ErrorIs(t, err, stay.ErrCheckInPast)
	})

	t.Run("rejects guest counts outside capacity", func(t *testing.T) {
		_, err := testFactory().CreateBooking(testRoom(), uuid.New(), testRange(t), 0, testGuest(t), nil, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)

		_, err = testFactory().CreateBooking(testRoom(), uuid.New(), testRange(t), 3, testGuest(t), nil, nil)
		assert.ErrorIs(t, err, booking.ErrTooManyGuests)
	})
}

func TestTransitionTo(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		b, err := testFactory().CreateBooking(testRoom(), uuid.New(), testRange(t), 2, testGuest(t), nil, nil)
		require.NoError(t, err)
		return b
	}

	t.Run("pending to confirmed to completed", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed, testNow))
		require.NoError(t, b.TransitionTo(booking.StatusCompleted, testNow))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("pending straight to completed rejected", func(t *testing.T) {
		b := newBooking(t)
		err := b.TransitionTo(booking.StatusCompleted, testNow)
		assert.ErrorIs(t, err, booking.ErrInvalidStatusTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("terminal states never move", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusCancelled, testNow))

		err := b.TransitionTo(booking.StatusConfirmed, testNow)
		assert.ErrorIs(t, err, booking.ErrInvalidStatusTransition)
	})

	t.Run("cancelling a paid booking marks it refunded", func(t *testing.T) {
		b := newBooking(t)
		b.MarkPaid(testNow)
		require.NoError(t, b.TransitionTo(booking.StatusCancelled, testNow))
		assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b := newBooking(t)
		assert.ErrorIs(t, b.TransitionTo(booking.Status("archived"), testNow), booking.ErrInvalidStatus)
	})
}

func TestNewGuestInfo(t *testing.T) {
	_, err := booking.NewGuestInfo("", "a@example.com", "0901234567")
	assert.ErrorIs(t, err, booking.ErrGuestNameRequired)

	_, err = booking.NewGuestInfo("Nguyen Van A", "not-an-email", "0901234567")
	assert.ErrorIs(t, err, booking.ErrGuestEmailInvalid)

	_, err = booking.NewGuestInfo("Nguyen Van A", "a@example.com", "123")
	assert.ErrorIs(t, err, booking.ErrGuestPhoneInvalid)
}
