// Package framelimit bounds the payload sizes a session will frame or
// accept off the wire. The cap covers payload bytes only, never the
// length prefix.
package framelimit

import (
	"errors"
)

var (
	ErrZeroCap        = errors.New("frame cap must be > 0")
	ErrCapExceeded    = errors.New("frame cap exceeded")
	ErrNegativeLength = errors.New("negative length is not allowed")
)

// Cap is the largest payload length, in bytes, a session accepts.
type Cap int

func NewCap(n int) (Cap, error) {
	if n <= 0 {
		return 0, ErrZeroCap
	}
	return Cap(n), nil
}

// ValidateLen checks that a payload of n bytes fits under the cap.
func (c Cap) ValidateLen(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if n > int(c) {
		return ErrCapExceeded
	}
	return nil
}
