// Package stay holds the check-in/check-out date range logic shared by the
// booking and availability flows.
package stay

import (
	"errors"
	"time"
)

// WireFormat is the only date representation that crosses the API boundary.
// Server-side range comparisons depend on it, so it is never widened to a
// timestamp.
const WireFormat = time.DateOnly

var (
	ErrCheckInPast             = errors.New("check-in cannot be in the past")
	ErrCheckInRequired         = errors.New("check-in must be selected first")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrInvalidDate             = errors.New("invalid date")
)

// DateOf truncates t to a calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Range is a validated (check-in, check-out) pair. checkOut > checkIn always
// holds; nights follow from calendar-day difference, never wall-clock hours.
type Range struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewRange(checkIn, checkOut time.Time) (Range, error) {
	in := DateOf(checkIn)
	out := DateOf(checkOut)
	if !out.After(in) {
		return Range{}, ErrCheckOutNotAfterCheckIn
	}
	return Range{checkIn: in, checkOut: out}, nil
}

func ParseRange(checkIn, checkOut string) (Range, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Range{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Range{}, err
	}
	return NewRange(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WireFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(WireFormat)
}

func (r Range) CheckIn() time.Time  { return r.checkIn }
func (r Range) CheckOut() time.Time { return r.checkOut }

func (r Range) Nights() int {
	return int(r.checkOut.Sub(r.checkIn) / (24 * time.Hour))
}

// Overlaps uses half-open [checkIn, checkOut) semantics: back-to-back stays
// sharing a turnover day do not conflict.
func (r Range) Overlaps(other Range) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r Range) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

func (r Range) IsZero() bool {
	return r.checkIn.IsZero() && r.checkOut.IsZero()
}
