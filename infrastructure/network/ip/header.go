// Package ip performs minimal sanity checks on raw IP packets crossing the
// TUN boundary: version nibble and minimum header length only.
package ip

import (
	"errors"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

var (
	ErrEmptyPacket    = errors.New("empty packet")
	ErrTruncatedIP    = errors.New("packet shorter than IP header")
	ErrUnknownVersion = errors.New("unknown IP version")
)

// Version returns the IP version of packet (4 or 6) after checking that
// the buffer is at least one fixed header long.
func Version(packet []byte) (int, error) {
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	switch packet[0] >> 4 {
	case ipv4.Version:
		if len(packet) < ipv4.HeaderLen {
			return 0, ErrTruncatedIP
		}
		return ipv4.Version, nil
	case ipv6.Version:
		if len(packet) < ipv6.HeaderLen {
			return 0, ErrTruncatedIP
		}
		return ipv6.Version, nil
	default:
		return 0, ErrUnknownVersion
	}
}
