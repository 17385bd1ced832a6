package netsh

import (
	"fmt"
	"net"
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

func (w *Wrapper) SetStaticAddress(ifName string, cidr string) error {
	prefix, parseErr := netip.ParsePrefix(cidr)
	if parseErr != nil {
		return fmt.Errorf("invalid CIDR %q: %w", cidr, parseErr)
	}
	mask := net.IP(net.CIDRMask(prefix.Bits(), 32)).String()

	output, err := w.commander.CombinedOutput("netsh", "interface", "ip", "set", "address",
		fmt.Sprintf("name=%s", ifName), "static", prefix.Addr().String(), mask)
	if err != nil {
		return fmt.Errorf("failed to assign %s to %s: %w, output: %s", cidr, ifName, err, output)
	}
	return nil
}

func (w *Wrapper) SetMTU(ifName string, mtu int) error {
	output, err := w.commander.CombinedOutput("netsh", "interface", "ipv4", "set", "subinterface",
		ifName, "mtu="+strconv.Itoa(mtu), "store=persistent")
	if err != nil {
		return fmt.Errorf("failed to set MTU %d on %s: %w, output: %s", mtu, ifName, err, output)
	}
	return nil
}
