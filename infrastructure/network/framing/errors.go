package framing

import "errors"

// ErrFrameTooLarge means the peer declared a frame length above the session
// cap. On a byte stream that is a protocol desync, not a skippable frame.
var ErrFrameTooLarge = errors.New("frame exceeds maximum frame size")
