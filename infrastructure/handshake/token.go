package handshake

import (
	"encoding/binary"
	"fmt"
	"time"

	"whispertunnel/application"
	"whispertunnel/infrastructure/cryptography/hmac"
)

const (
	timestampLength = 8
	// TokenLength is 8-byte big-endian unix seconds followed by a
	// 32-byte HMAC-SHA256 of those 8 bytes under the shared key.
	TokenLength = timestampLength + hmac.Size
)

// Token is the first frame on the stream after connect. It proves
// possession of the shared key at a point in time; it is not bound to
// the traffic that follows.
type Token struct {
	Timestamp int64
	MAC       [hmac.Size]byte
}

// NewToken signs the given instant under mac.
func NewToken(mac application.HMAC, at time.Time) (Token, error) {
	token := Token{Timestamp: at.Unix()}

	var tsBytes [timestampLength]byte
	binary.BigEndian.PutUint64(tsBytes[:], uint64(token.Timestamp))
	signature, err := mac.Generate(tsBytes[:])
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign timestamp: %w", err)
	}
	copy(token.MAC[:], signature)
	return token, nil
}

// Marshal renders the wire form: timestamp then MAC.
func (t Token) Marshal() []byte {
	buffer := make([]byte, TokenLength)
	binary.BigEndian.PutUint64(buffer[:timestampLength], uint64(t.Timestamp))
	copy(buffer[timestampLength:], t.MAC[:])
	return buffer
}

// ParseToken splits a received frame into timestamp and MAC.
func ParseToken(data []byte) (Token, error) {
	if len(data) != TokenLength {
		return Token{}, fmt.Errorf("invalid token length: %d", len(data))
	}
	token := Token{Timestamp: int64(binary.BigEndian.Uint64(data[:timestampLength]))}
	copy(token.MAC[:], data[timestampLength:])
	return token, nil
}

// Verify recomputes the MAC over the token's timestamp and constant-time
// compares it, then checks the timestamp against the skew window.
func (t Token) Verify(mac application.HMAC, now time.Time, skew time.Duration) error {
	var tsBytes [timestampLength]byte
	binary.BigEndian.PutUint64(tsBytes[:], uint64(t.Timestamp))
	if err := mac.Verify(tsBytes[:], t.MAC[:]); err != nil {
		return fmt.Errorf("%w: bad token signature", ErrHandshakeFailed)
	}

	delta := now.Unix() - t.Timestamp
	if delta < 0 {
		delta = -delta
	}
	if delta > int64(skew/time.Second) {
		return fmt.Errorf("%w: timestamp outside skew window", ErrHandshakeFailed)
	}
	return nil
}
