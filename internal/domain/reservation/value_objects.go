package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPeriod  = errors.New("start date must not be after end date")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Period is an inclusive range of rental dates. Both bounds count as rented
// days: a reservation ending on the 16th conflicts with one starting on the
// 16th. The time component is normalized away.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if start.After(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Overlaps is symmetric and inclusive on both bounds: two periods are
// disjoint only when one ends strictly before the other starts.
func (p Period) Overlaps(other Period) bool {
	return !(p.start.After(other.end) || p.end.Before(other.start))
}

// Days returns the number of rental days, counting both bounds.
func (p Period) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s]", p.start.Format(time.DateOnly), p.end.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
