package stay

import (
	"time"

	"homestay-booking/internal/pkg/clock"
)

// Selector tracks an in-progress (check-in, check-out) selection and enforces
// the ordering rules before a Range exists. Moving check-in past the current
// check-out clears the back leg rather than keeping an inverted pair.
type Selector struct {
	clock    clock.Clock
	checkIn  *time.Time
	checkOut *time.Time
}

func NewSelector(clk clock.Clock) *Selector {
	return &Selector{clock: clk}
}

func (s *Selector) SelectCheckIn(date time.Time) error {
	d := DateOf(date)
	today := DateOf(s.clock.Now())
	if d.Before(today) {
		return ErrCheckInPast
	}

	s.checkIn = &d
	if s.checkOut != nil && !s.checkOut.After(d) {
		s.checkOut = nil
	}
	return nil
}

func (s *Selector) SelectCheckOut(date time.Time) error {
	if s.checkIn == nil {
		return ErrCheckInRequired
	}
	d := DateOf(date)
	if !d.After(*s.checkIn) {
		return ErrCheckOutNotAfterCheckIn
	}

	s.checkOut = &d
	return nil
}

func (s *Selector) CheckIn() (time.Time, bool) {
	if s.checkIn == nil {
		return time.Time{}, false
	}
	return *s.checkIn, true
}

func (s *Selector) CheckOut() (time.Time, bool) {
	if s.checkOut == nil {
		return time.Time{}, false
	}
	return *s.checkOut, true
}

// Range returns the completed selection, if both legs are set.
func (s *Selector) Range() (Range, bool) {
	if s.checkIn == nil || s.checkOut == nil {
		return Range{}, false
	}
	r, err := NewRange(*s.checkIn, *s.checkOut)
	if err != nil {
		return Range{}, false
	}
	return r, true
}

// Nights is 0 until both legs are selected.
func (s *Selector) Nights() int {
	r, ok := s.Range()
	if !ok {
		return 0
	}
	return r.Nights()
}

// Clear resets both legs, e.g. when the room selection it belonged to is
// cleared.
func (s *Selector) Clear() {
	s.checkIn = nil
	s.checkOut = nil
}
