//go:build unit

package stay_test

import (
	"testing"
	"time"

	"homestay-booking/internal/domain/stay"
	"homestay-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector() *stay.Selector {
	// "Today" is 2024-03-01 for every selector test.
	return stay.NewSelector(clock.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
}

func TestSelectCheckIn(t *testing.T) {
	t.Run("past date rejected", func(t *testing.T) {
		s := newSelector()
		err := s.SelectCheckIn(date(2024, 2, 29))
		assert.ErrorIs(t, err, stay.ErrCheckInPast)

		_, ok := s.CheckIn()
		assert.False(t, ok)
	})

	t.Run("today accepted", func(t *testing.T) {
		s := newSelector()
		require.NoError(t, s.SelectCheckIn(date(2024, 3, 1)))

		in, ok := s.CheckIn()
		require.True(t, ok)
		assert.Equal(t, date(2024, 3, 1), in)
	})

	t.Run("moving check-in past check-out clears check-out", func(t *testing.T) {
		s := newSelector()
		require.NoError(t, s.SelectCheckIn(date(2024, 3, 10)))
		require.NoError(t, s.SelectCheckOut(date(2024, 3, 13)))

		require.NoError(t, s.SelectCheckIn(date(2024, 3, 13)))

		_, ok := s.CheckOut()
		assert.False(t, ok)
		assert.Equal(t, 0, s.Nights())
	})

	t.Run("moving check-in earlier keeps a compatible check-out", func(t *testing.T) {
		s := newSelector()
		require.NoError(t, s.SelectCheckIn(date(2024, 3, 10)))
		require.NoError(t, s.SelectCheckOut(date(2024, 3, 13)))

		require.NoError(t, s.SelectCheckIn(date(2024, 3, 8)))

		out, ok := s.CheckOut()
		require.True(t, ok)
		assert.Equal(t, date(2024, 3, 13), out)
		assert.Equal(t, 5, s.Nights())
	})
}

func TestSelectCheckOut(t *testing.T) {
	t.Run("requires check-in first", func(t *testing.T) {
		s := newSelector()
		err := s.SelectCheckOut(date(2024, 3, 13))
		assert.ErrorIs(t, err, stay.ErrCheckInRequired)
	})

	t.Run("same day as check-in rejected and state unchanged", func(t *testing.T) {
		s := newSelector()
		require.NoError(t, s.SelectCheckIn(date(2024, 3, 10)))

		err := s.SelectCheckOut(date(2024, 3, 10))
		assert.ErrorIs(t, err, stay.ErrCheckOutNotAfterCheckIn)
		assert.EqualError(t, err, "check-out must be after check-in")

		_, ok := s.CheckOut()
		assert.False(t, ok)
		assert.Equal(t, 0, s.Nights())
	})

	t.Run("three nights", func(t *testing.T) {
		s := newSelector()
		require.NoError(t, s.SelectCheckIn(date(2024, 3, 10)))
		require.NoError(t, s.SelectCheckOut(date(2024, 3, 13)))

		assert.Equal(t, 3, s.Nights())

		r, ok := s.Range()
		require.True(t, ok)
		assert.Equal(t, date(2024, 3, 10), r.CheckIn())
		assert.Equal(t, date(2024, 3, 13), r.CheckOut())
	})
}

func TestSelectorClear(t *testing.T) {
	s := newSelector()
	require.NoError(t, s.SelectCheckIn(date(2024, 3, 10)))
	require.NoError(t, s.SelectCheckOut(date(2024, 3, 13)))

	s.Clear()

	_, inOK := s.CheckIn()
	_, outOK := s.CheckOut()
	assert.False(t, inOK)
	assert.False(t, outOK)
	assert.Equal(t, 0, s.Nights())
}
