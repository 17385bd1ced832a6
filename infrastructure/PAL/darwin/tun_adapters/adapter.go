//go:build darwin

package tun_adapters

import (
	"encoding/binary"
	"errors"
	"syscall"

	wgtun "golang.zx2c4.com/wireguard/tun"

	"whispertunnel/application"
)

const utunHeaderSize = 4

// WgTunAdapter wraps a wireguard/tun utun device with pre-allocated read
// and write buffers. The kernel frames every packet with a 4-byte
// address-family header; Read strips it, Write prepends it.
type WgTunAdapter struct {
	device      wgtun.Device
	readBuffer  []byte
	writeBuffer []byte
}

func NewWgTunAdapter(device wgtun.Device, maxPacketSize int) application.TunDevice {
	return &WgTunAdapter{
		device:      device,
		readBuffer:  make([]byte, maxPacketSize+utunHeaderSize),
		writeBuffer: make([]byte, maxPacketSize+utunHeaderSize),
	}
}

// Read copies an IP packet from the utun device into p with the utun
// header stripped.
func (a *WgTunAdapter) Read(p []byte) (int, error) {
	bufs, sizes := [][]byte{a.readBuffer}, []int{0}

	// offset 4 tells the driver the first 4 bytes are the utun header
	if _, err := a.device.Read(bufs, sizes, utunHeaderSize); err != nil {
		return 0, err
	}
	n := sizes[0]
	if n > len(p) {
		return 0, errors.New("destination slice too small")
	}
	copy(p, a.readBuffer[utunHeaderSize:utunHeaderSize+n])
	return n, nil
}

// Write prepends the utun header to p and writes it to the kernel.
func (a *WgTunAdapter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errors.New("empty packet")
	}
	if len(p)+utunHeaderSize > len(a.writeBuffer) {
		return 0, errors.New("packet exceeds max size")
	}

	var family uint32
	if p[0]>>4 == 6 {
		family = syscall.AF_INET6
	} else {
		family = syscall.AF_INET
	}
	binary.BigEndian.PutUint32(a.writeBuffer[:utunHeaderSize], family)
	copy(a.writeBuffer[utunHeaderSize:], p)

	if _, err := a.device.Write([][]byte{a.writeBuffer[:len(p)+utunHeaderSize]}, utunHeaderSize); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the underlying utun device.
func (a *WgTunAdapter) Close() error { return a.device.Close() }
