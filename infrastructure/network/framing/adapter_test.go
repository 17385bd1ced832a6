package framing

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"whispertunnel/domain/network/framelimit"
)

// pipeConn is a convenience wrapper giving each end of a net.Pipe a framing adapter.
func pipePair(t *testing.T, capBytes int) (*Adapter, *Adapter, net.Conn, net.Conn) {
	t.Helper()
	cap, err := framelimit.NewCap(capBytes)
	if err != nil {
		t.Fatalf("NewCap: %v", err)
	}
	a, b := net.Pipe()
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return NewAdapter(a, cap), NewAdapter(b, cap), a, b
}

func TestRoundTrip(t *testing.T) {
	const capBytes = 1500
	payloads := [][]byte{
		{},                            // zero-length keepalive frame
		{0x45},                        // single byte
		bytes.Repeat([]byte{0xAB}, 100),
		bytes.Repeat([]byte{0xCD}, capBytes), // maximum-size payload
	}

	for _, payload := range payloads {
		writer, reader, _, _ := pipePair(t, capBytes)

		writeErrCh := make(chan error, 1)
		go func() {
			_, err := writer.Write(payload)
			writeErrCh <- err
		}()

		buffer := make([]byte, capBytes)
		n, readErr := reader.Read(buffer)
		if readErr != nil {
			t.Fatalf("Read(%d-byte payload): %v", len(payload), readErr)
		}
		if n != len(payload) {
			t.Fatalf("Read returned %d bytes, want %d", n, len(payload))
		}
		if !bytes.Equal(buffer[:n], payload) {
			t.Fatalf("payload mismatch at %d bytes", len(payload))
		}
		if err := <-writeErrCh; err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
}

// One adapter per endpoint, read by one goroutine while another writes —
// the shape of an established session's two directions. Frames in both
// directions must arrive intact.
func TestConcurrentReadWriteSingleAdapter(t *testing.T) {
	const (
		capBytes = 1500
		frames   = 200
	)
	left, right, _, _ := pipePair(t, capBytes)

	makePayload := func(direction byte, i int) []byte {
		payload := bytes.Repeat([]byte{direction}, 1+i%capBytes)
		payload[0] = byte(i)
		return payload
	}

	pump := func(endpoint *Adapter, direction byte) <-chan error {
		errCh := make(chan error, 1)
		go func() {
			for i := 0; i < frames; i++ {
				if _, err := endpoint.Write(makePayload(direction, i)); err != nil {
					errCh <- err
					return
				}
			}
			errCh <- nil
		}()
		return errCh
	}

	drain := func(endpoint *Adapter, direction byte) <-chan error {
		errCh := make(chan error, 1)
		go func() {
			buffer := make([]byte, capBytes)
			for i := 0; i < frames; i++ {
				n, err := endpoint.Read(buffer)
				if err != nil {
					errCh <- err
					return
				}
				if want := makePayload(direction, i); !bytes.Equal(buffer[:n], want) {
					errCh <- errors.New("frame corrupted in flight")
					return
				}
			}
			errCh <- nil
		}()
		return errCh
	}

	leftWrite := pump(left, 0xAA)
	rightWrite := pump(right, 0xBB)
	leftRead := drain(left, 0xBB)
	rightRead := drain(right, 0xAA)

	for _, errCh := range []<-chan error{leftWrite, rightWrite, leftRead, rightRead} {
		select {
		case err := <-errCh:
			if err != nil {
				t.Fatalf("full-duplex exchange: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("full-duplex exchange did not finish")
		}
	}
}

func TestWriteRejectsOversizedPayload(t *testing.T) {
	writer, _, _, _ := pipePair(t, 100)
	_, err := writer.Write(make([]byte, 101))
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Write oversized: error = %v, want ErrFrameTooLarge", err)
	}
	if !strings.Contains(err.Error(), framelimit.ErrCapExceeded.Error()) {
		t.Errorf("Write oversized: error %q does not carry the cap violation cause", err)
	}
}

func TestReadRejectsOversizedDeclaredLength(t *testing.T) {
	_, reader, raw, _ := pipePair(t, 100)

	go func() {
		// Length prefix declaring a frame over the cap; no body follows.
		_, _ = raw.Write([]byte{0x00, 0x00, 0x01, 0x00})
	}()

	_, err := reader.Read(make([]byte, 100))
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Read with oversized declared length: error = %v, want ErrFrameTooLarge", err)
	}
	if err != nil && !strings.Contains(err.Error(), framelimit.ErrCapExceeded.Error()) {
		t.Errorf("Read oversized: error %q does not carry the cap violation cause", err)
	}
}

func TestReadShortBuffer(t *testing.T) {
	writer, reader, _, _ := pipePair(t, 100)

	go func() {
		_, _ = writer.Write(make([]byte, 50))
	}()

	if _, err := reader.Read(make([]byte, 10)); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("Read into small buffer: error = %v, want io.ErrShortBuffer", err)
	}
}

func TestReadAwaitsIncompleteFrame(t *testing.T) {
	_, reader, raw, _ := pipePair(t, 100)

	payload := []byte("hello, tunnel")
	header := []byte{0x00, 0x00, 0x00, byte(len(payload))}

	// Send the header plus all but the final payload byte.
	go func() {
		_, _ = raw.Write(header)
		_, _ = raw.Write(payload[:len(payload)-1])
	}()

	type result struct {
		n   int
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		buffer := make([]byte, 100)
		n, err := reader.Read(buffer)
		resultCh <- result{n, err}
	}()

	// One byte short of a complete frame: the decoder must wait, not error.
	select {
	case r := <-resultCh:
		t.Fatalf("Read returned early: n=%d err=%v", r.n, r.err)
	case <-time.After(50 * time.Millisecond):
	}

	// Deliver the final byte; the read must now complete.
	if _, err := raw.Write(payload[len(payload)-1:]); err != nil {
		t.Fatalf("final byte write: %v", err)
	}
	select {
	case r := <-resultCh:
		if r.err != nil {
			t.Fatalf("Read after completion: %v", r.err)
		}
		if r.n != len(payload) {
			t.Fatalf("Read returned %d bytes, want %d", r.n, len(payload))
		}
	case <-time.After(time.Second):
		t.Fatal("Read did not complete after the frame arrived")
	}
}

func TestReadEOF(t *testing.T) {
	_, reader, raw, _ := pipePair(t, 100)
	_ = raw.Close()

	if _, err := reader.Read(make([]byte, 100)); err == nil {
		t.Error("Read on closed stream: expected error")
	}
}

func TestSetDeadlineForwards(t *testing.T) {
	writer, _, _, _ := pipePair(t, 100)
	if err := writer.SetDeadline(time.Now().Add(10 * time.Millisecond)); err != nil {
		t.Fatalf("SetDeadline: %v", err)
	}
	// The deadline is on the pipe, so the framed read must now time out.
	if _, err := writer.Read(make([]byte, 100)); err == nil {
		t.Error("Read past deadline: expected timeout error")
	}
}
