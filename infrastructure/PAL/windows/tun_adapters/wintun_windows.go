//go:build windows

package tun_adapters

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/windows"
	"golang.zx2c4.com/wintun"

	"whispertunnel/application"
)

const ringSize = 8 << 20 // 8 MiB

// WintunAdapter exposes a wintun ring session as a blocking TunDevice.
// Read parks on the session's read-wait event between packets.
type WintunAdapter struct {
	adapter   *wintun.Adapter
	session   wintun.Session
	closed    atomic.Bool
	closeOnce sync.Once
}

func NewWintunAdapter(adapter *wintun.Adapter) (application.TunDevice, error) {
	session, err := adapter.StartSession(ringSize)
	if err != nil {
		return nil, err
	}
	return &WintunAdapter{
		adapter: adapter,
		session: session,
	}, nil
}

func (t *WintunAdapter) Read(p []byte) (int, error) {
	for {
		if t.closed.Load() {
			return 0, os.ErrClosed
		}
		packet, err := t.session.ReceivePacket()
		if err == nil {
			n := copy(p, packet)
			t.session.ReleaseReceivePacket(packet)
			if n < len(packet) {
				return 0, errors.New("destination slice too small")
			}
			return n, nil
		}
		if !errors.Is(err, windows.ERROR_NO_MORE_ITEMS) {
			return 0, err
		}
		// Bounded wait so Close is noticed even without traffic.
		_, _ = windows.WaitForSingleObject(t.session.ReadWaitEvent(), 250)
	}
}

func (t *WintunAdapter) Write(p []byte) (int, error) {
	if t.closed.Load() {
		return 0, os.ErrClosed
	}
	buffer, err := t.session.AllocateSendPacket(len(p))
	if err != nil {
		return 0, err
	}
	copy(buffer, p)
	t.session.SendPacket(buffer)
	return len(p), nil
}

func (t *WintunAdapter) Close() error {
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		t.session.End()
		_ = t.adapter.Close()
	})
	return nil
}
