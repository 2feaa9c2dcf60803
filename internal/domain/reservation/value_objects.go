package reservation

import (
	"errors"
	"time"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// TimeWindow is the booked slot of a reservation. End is strictly after
// start; an overnight booking is stored with the end already rolled onto the
// next day (see NormalizeOvernight).
type TimeWindow struct {
	from time.Time
	to   time.Time
}

func NewTimeWindow(from, to time.Time) (TimeWindow, error) {
	if !to.After(from) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{from: from, to: to}, nil
}

// NormalizeOvernight rolls an end time that falls at or before the start
// onto the following day, for bookings that run past midnight.
func NormalizeOvernight(from, to time.Time) (time.Time, time.Time) {
	if !to.After(from) {
		to = to.AddDate(0, 0, 1)
	}
	return from, to
}

func (w TimeWindow) From() time.Time {
	return w.from
}

func (w TimeWindow) To() time.Time {
	return w.to
}

func (w TimeWindow) Duration() time.Duration {
	return w.to.Sub(w.from)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// AppendTagged returns the note with a "[tag] line" entry added on a new
// line, preserving whatever was already recorded.
func (n Note) AppendTagged(tag, line string) Note {
	entry := "[" + tag + "] " + line
	if n.value == "" {
		return Note{value: entry}
	}
	return Note{value: n.value + "\n" + entry}
}
