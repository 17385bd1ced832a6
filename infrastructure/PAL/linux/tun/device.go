package tun

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	ifNamSiz  = 16         // Max if name size, bytes
	tunSetIff = 0x400454ca // Code to attach to a TUN/TAP if via ioctl
	iffTun    = 0x0001     // Enabling TUN flag
	iffNoPi   = 0x1000     // Disabling PI (Packet Information)

	devicePath = "/dev/net/tun"
)

type ifReq struct {
	Name  [ifNamSiz]byte
	Flags uint16
	pad   [24]byte
}

// Open attaches to the named TUN interface and returns its file handle.
// The interface must already exist (ip tuntap add); reads yield raw IP
// packets with no packet-information header.
func Open(name string) (*os.File, error) {
	if len(name) >= ifNamSiz {
		return nil, fmt.Errorf("interface name %q too long", name)
	}

	device, openErr := os.OpenFile(devicePath, os.O_RDWR, 0)
	if openErr != nil {
		return nil, fmt.Errorf("failed to open %s: %w", devicePath, openErr)
	}

	var req ifReq
	copy(req.Name[:], name)
	req.Flags = iffTun | iffNoPi

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, device.Fd(), uintptr(tunSetIff), uintptr(unsafe.Pointer(&req)))
	if errno != 0 {
		_ = device.Close()
		return nil, fmt.Errorf("TUNSETIFF ioctl failed: %v", errno)
	}

	return device, nil
}
