package ifconfig

import (
	"fmt"
	"net/netip"
	"strconv"

	"whispertunnel/infrastructure/PAL"
)

type Wrapper struct {
	commander PAL.Commander
}

func NewWrapper(commander PAL.Commander) Contract {
	return &Wrapper{commander: commander}
}

// SetInetAddress assigns a point-to-point address pair derived from the
// CIDR: the address itself as the local end, the subnet's first usable
// address as the destination.
func (w *Wrapper) SetInetAddress(devName string, cidr string) error {
	prefix, parseErr := netip.ParsePrefix(cidr)
	if parseErr != nil {
		return fmt.Errorf("invalid CIDR %q: %w", cidr, parseErr)
	}
	peer := prefix.Masked().Addr().Next()

	output, err := w.commander.CombinedOutput("ifconfig", devName, "inet", cidr, peer.String())
	if err != nil {
		return fmt.Errorf("failed to assign %s to %s: %w, output: %s", cidr, devName, err, output)
	}
	return nil
}

func (w *Wrapper) SetMTU(devName string, mtu int) error {
	output, err := w.commander.CombinedOutput("ifconfig", devName, "mtu", strconv.Itoa(mtu))
	if err != nil {
		return fmt.Errorf("failed to set MTU %d on %s: %w, output: %s", mtu, devName, err, output)
	}
	return nil
}

func (w *Wrapper) Up(devName string) error {
	output, err := w.commander.CombinedOutput("ifconfig", devName, "up")
	if err != nil {
		return fmt.Errorf("failed to bring %s up: %w, output: %s", devName, err, output)
	}
	return nil
}
