package ip

import (
	"fmt"
	"strconv"

	"whispertunnel/infrastructure/PAL"
)

type Wrapper struct {
	commander PAL.Commander
}

func NewWrapper(commander PAL.Commander) Contract {
	return &Wrapper{commander: commander}
}

func (w *Wrapper) TunTapAddDevTun(devName string) error {
	output, err := w.commander.CombinedOutput("ip", "tuntap", "add", "dev", devName, "mode", "tun")
	if err != nil {
		return fmt.Errorf("failed to create TUN %s: %w, output: %s", devName, err, output)
	}
	return nil
}

func (w *Wrapper) LinkDelete(devName string) error {
	output, err := w.commander.CombinedOutput("ip", "link", "delete", devName)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w, output: %s", devName, err, output)
	}
	return nil
}

func (w *Wrapper) LinkSetDevUp(devName string) error {
	output, err := w.commander.CombinedOutput("ip", "link", "set", "dev", devName, "up")
	if err != nil {
		return fmt.Errorf("failed to bring %s up: %w, output: %s", devName, err, output)
	}
	return nil
}

func (w *Wrapper) LinkSetDevMTU(devName string, mtu int) error {
	output, err := w.commander.CombinedOutput("ip", "link", "set", "dev", devName, "mtu", strconv.Itoa(mtu))
	if err != nil {
		return fmt.Errorf("failed to set MTU %d on %s: %w, output: %s", mtu, devName, err, output)
	}
	return nil
}

func (w *Wrapper) AddrAddDev(devName string, cidr string) error {
	output, err := w.commander.CombinedOutput("ip", "addr", "add", cidr, "dev", devName)
	if err != nil {
		return fmt.Errorf("failed to assign %s to %s: %w, output: %s", cidr, devName, err, output)
	}
	return nil
}
