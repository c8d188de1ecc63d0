//go:build unit

package booking_test

import (
	"testing"

	"homestay-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	t.Run("nights times nightly rate", func(t *testing.T) {
		q := booking.NewQuote(500000, 3, 0)

		assert.Equal(t, 3, q.Nights)
		assert.Equal(t, int64(1500000), q.OriginalPrice)
		assert.Equal(t, int64(0), q.DiscountAmount)
		assert.Equal(t, int64(1500000), q.TotalPrice)
	})

	t.Run("coupon discount subtracted", func(t *testing.T) {
		q := booking.NewQuote(500000, 3, 200000)

		assert.Equal(t, int64(1500000), q.OriginalPrice)
		assert.Equal(t, int64(200000), q.DiscountAmount)
		assert.Equal(t, int64(1300000), q.TotalPrice)
	})

	t.Run("total never negative", func(t *testing.T) {
		q := booking.NewQuote(100000, 1, 250000)

		assert.Equal(t, int64(100000), q.OriginalPrice)
		assert.Equal(t, int64(0), q.TotalPrice)
	})

	t.Run("zero nights means zero prices", func(t *testing.T) {
		q := booking.NewQuote(500000, 0, 0)

		assert.Equal(t, int64(0), q.OriginalPrice)
		assert.Equal(t, int64(0), q.TotalPrice)
	})

	t.Run("negative discount treated as none", func(t *testing.T) {
		q := booking.NewQuote(500000, 2, -5)

		assert.Equal(t, int64(1000000), q.TotalPrice)
	})
}

func TestQuoteNonNegativeProperty(t *testing.T) {
	rates := []int64{0, 1, 150000, 500000, 2500000}
	nightCounts := []int{0, 1, 3, 30}
	discounts := []int64{0, 1, 200000, 10000000}

	for _, rate := range rates {
		for _, nights := range nightCounts {
			for _, discount := range discounts {
				q := booking.NewQuote(rate, nights, discount)
				assert.GreaterOrEqual(t, q.TotalPrice, int64(0))
				assert.GreaterOrEqual(t, q.OriginalPrice, q.TotalPrice)
				if discount == 0 {
					assert.Equal(t, q.OriginalPrice, q.TotalPrice)
				}
			}
		}
	}
}
