// Package handshake implements the one-shot challenge/response exchange
// gating a session. The initiator frames a timestamped keyed-hash token as
// the very first payload on the stream; the responder accepts it only when
// the hash matches and the timestamp sits inside the skew window, replying
// with a single fixed acknowledgement byte. On rejection the responder
// stays silent so a network observer cannot tell a bad key from a stale
// clock. A replayed token inside the window succeeds; that boundary is part
// of the design and is not tightened here.
package handshake

import (
	"fmt"
	"time"

	"whispertunnel/application"
	"whispertunnel/infrastructure/cryptography/hmac"
)

// AckByte is the responder's entire acceptance reply, framed like any
// other payload.
const AckByte = 0x06

type TokenHandshake struct {
	mac  application.HMAC
	skew time.Duration
	now  func() time.Time
}

func NewTokenHandshake(key []byte, skew time.Duration) application.Handshake {
	return &TokenHandshake{
		mac:  hmac.NewHMAC(key),
		skew: skew,
		now:  time.Now,
	}
}

// ClientSideHandshake sends the token and requires exactly the
// acknowledgement frame back. Anything else - wrong bytes, closure,
// a read timeout - is ErrHandshakeFailed.
func (h *TokenHandshake) ClientSideHandshake(conn application.ConnectionAdapter) error {
	token, tokenErr := NewToken(h.mac, h.now())
	if tokenErr != nil {
		return fmt.Errorf("%w: %v", ErrHandshakeFailed, tokenErr)
	}
	if _, err := conn.Write(token.Marshal()); err != nil {
		return fmt.Errorf("%w: failed to send token: %v", ErrHandshakeFailed, err)
	}

	ack := make([]byte, 2)
	n, readErr := conn.Read(ack)
	if readErr != nil {
		return fmt.Errorf("%w: no acknowledgement: %v", ErrHandshakeFailed, readErr)
	}
	if n != 1 || ack[0] != AckByte {
		return fmt.Errorf("%w: unexpected acknowledgement", ErrHandshakeFailed)
	}
	return nil
}

// ServerSideHandshake reads the first frame, verifies it and replies with
// the acknowledgement. On any failure it returns without writing a byte;
// the caller closes the transport.
func (h *TokenHandshake) ServerSideHandshake(conn application.ConnectionAdapter) error {
	buffer := make([]byte, TokenLength+1)
	n, readErr := conn.Read(buffer)
	if readErr != nil {
		return fmt.Errorf("%w: failed to read token: %v", ErrHandshakeFailed, readErr)
	}

	token, parseErr := ParseToken(buffer[:n])
	if parseErr != nil {
		return fmt.Errorf("%w: %v", ErrHandshakeFailed, parseErr)
	}
	if err := token.Verify(h.mac, h.now(), h.skew); err != nil {
		return err
	}

	if _, err := conn.Write([]byte{AckByte}); err != nil {
		return fmt.Errorf("%w: failed to send acknowledgement: %v", ErrHandshakeFailed, err)
	}
	return nil
}
