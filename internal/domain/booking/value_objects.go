package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-out date must be on or after check-in date")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// StayRange is the calendar span of a booking. Check-out equal to check-in is
// a valid one-night stay; the range never books fewer than one night.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)

	if out.Before(in) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

// Dates returns every calendar date the stay occupies, ascending, inclusive
// of both check-in and check-out. A same-day stay yields exactly one date.
func (s StayRange) Dates() []time.Time {
	var dates []time.Time
	for d := s.checkIn; !d.After(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours()/24) + 1
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(n int32) Money {
	return Money{cents: m.cents * int64(n)}
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: value}
}

func (r SpecialRequests) String() string {
	return r.value
}

func (r SpecialRequests) IsEmpty() bool {
	return r.value == ""
}
