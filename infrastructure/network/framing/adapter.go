// Package framing turns a byte stream into a sequence of length-delimited
// opaque frames and back. It knows nothing about encryption.
package framing

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"whispertunnel/application"
	"whispertunnel/domain/network/framelimit"
)

const headerSize = 4

// Adapter handles stream framing using a 4-byte big-endian length prefix.
// All framing is internal; the caller deals only with pure payload bytes.
// Zero-length frames are valid and pass through unchanged.
//
// Read and Write keep no shared state, so one goroutine may read while
// another writes — the pattern of an established session's two directions.
type Adapter struct {
	conn application.ConnectionAdapter
	cap  framelimit.Cap
}

// NewAdapter constructs a framing adapter over conn. Frames whose declared
// length exceeds cap fail with ErrFrameTooLarge on Read.
func NewAdapter(conn application.ConnectionAdapter, cap framelimit.Cap) *Adapter {
	return &Adapter{conn: conn, cap: cap}
}

// Write sends a payload, automatically prepending a 4-byte length prefix.
// The input slice must contain only payload data, not a prefix.
func (a *Adapter) Write(payload []byte) (int, error) {
	if err := a.cap.ValidateLen(len(payload)); err != nil {
		return 0, fmt.Errorf("%w: %d bytes: %v", ErrFrameTooLarge, len(payload), err)
	}
	var header [headerSize]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))

	// Write the length prefix first.
	if _, err := a.conn.Write(header[:]); err != nil {
		return 0, err
	}
	if len(payload) == 0 {
		return 0, nil
	}
	// Write the actual payload bytes.
	return a.conn.Write(payload)
}

// Read reads a single framed payload into buffer, blocking until the whole
// frame has arrived. Returns the number of payload bytes read (without the
// prefix). If the buffer is too small, returns io.ErrShortBuffer.
func (a *Adapter) Read(buffer []byte) (int, error) {
	// Read the 4-byte length prefix.
	var header [headerSize]byte
	if _, err := io.ReadFull(a.conn, header[:]); err != nil {
		return 0, fmt.Errorf("failed to read length prefix: %w", err)
	}
	payloadLen := int(binary.BigEndian.Uint32(header[:]))
	if err := a.cap.ValidateLen(payloadLen); err != nil {
		return 0, fmt.Errorf("%w: declared %d bytes: %v", ErrFrameTooLarge, payloadLen, err)
	}
	if payloadLen > len(buffer) {
		return 0, io.ErrShortBuffer
	}
	if payloadLen == 0 {
		return 0, nil
	}
	// Read the payload bytes.
	if _, err := io.ReadFull(a.conn, buffer[:payloadLen]); err != nil {
		return 0, fmt.Errorf("failed to read payload: %w", err)
	}
	return payloadLen, nil
}

// SetDeadline forwards to the underlying connection when it supports
// deadlines; in-memory test transports without deadlines are a no-op.
func (a *Adapter) SetDeadline(t time.Time) error {
	if setter, ok := a.conn.(application.DeadlineSetter); ok {
		return setter.SetDeadline(t)
	}
	return nil
}

// Close closes the underlying connection.
func (a *Adapter) Close() error {
	return a.conn.Close()
}
