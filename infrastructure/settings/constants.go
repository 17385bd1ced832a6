package settings

import "golang.org/x/crypto/chacha20poly1305"

const (
	DefaultEthernetMTU = 1500
	DefaultTunnelMTU   = 1400
	MinimumIPv4MTU     = 576

	// SealOverhead is the nonce prepended to every sealed frame plus the
	// AEAD tag appended to it. Identical for both supported suites.
	SealOverhead = chacha20poly1305.NonceSize + chacha20poly1305.Overhead

	// FrameSlack is the headroom the frame cap allows above the MTU.
	// Covers SealOverhead with room to spare; a declared frame length
	// above MTU+FrameSlack is a protocol violation.
	FrameSlack = 100

	DefaultDialTimeoutMs = 5000
	DefaultClockSkewSec  = 30
)
