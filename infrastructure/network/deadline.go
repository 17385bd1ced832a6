package network

import (
	"errors"
	"time"
)

var ErrInvalidDuration = errors.New("invalid duration")

// Deadline is a relative I/O time budget. Time converts it into the
// absolute instant handed to SetDeadline; the zero Deadline disables the
// deadline entirely.
type Deadline time.Duration

func NewDeadline(d time.Duration) (Deadline, error) {
	if d < 0 {
		return 0, ErrInvalidDuration
	}
	return Deadline(d), nil
}

// Time returns now plus the budget, or the zero time for a zero Deadline.
func (d Deadline) Time() time.Time {
	if d == 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(d))
}
