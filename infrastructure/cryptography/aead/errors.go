package aead

import "errors"

var (
	// ErrInvalidKey is a construction-time configuration error.
	ErrInvalidKey = errors.New("invalid key: expected 32 bytes")
	// ErrAuthenticationFailed covers tag mismatch and short sealed buffers
	// alike; callers must not be able to distinguish the two.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
