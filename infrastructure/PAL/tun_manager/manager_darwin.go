//go:build darwin

package tun_manager

import (
	"fmt"

	wgtun "golang.zx2c4.com/wireguard/tun"

	"whispertunnel/application"
	"whispertunnel/infrastructure/PAL/darwin/network_tools/ifconfig"
	"whispertunnel/infrastructure/PAL/darwin/tun_adapters"
	"whispertunnel/infrastructure/PAL/exec_commander"
	"whispertunnel/infrastructure/settings"
)

type PlatformTunManager struct {
	settings settings.Settings
	ifconfig ifconfig.Contract
}

func NewPlatformTunManager(s settings.Settings) (application.TunManager, error) {
	return &PlatformTunManager{
		settings: s,
		ifconfig: ifconfig.NewWrapper(exec_commander.NewExecCommander()),
	}, nil
}

func (m *PlatformTunManager) CreateTunDevice() (application.TunDevice, error) {
	mtu := settings.ResolveMTU(m.settings.MTU)

	// "utun" with no index lets the kernel pick the next free unit.
	device, createErr := wgtun.CreateTUN("utun", mtu)
	if createErr != nil {
		return nil, fmt.Errorf("failed to create utun device: %w", createErr)
	}
	name, nameErr := device.Name()
	if nameErr != nil {
		_ = device.Close()
		return nil, fmt.Errorf("failed to resolve utun name: %w", nameErr)
	}

	if err := m.ifconfig.SetInetAddress(name, m.settings.TunAddress); err != nil {
		_ = device.Close()
		return nil, err
	}
	if err := m.ifconfig.SetMTU(name, mtu); err != nil {
		_ = device.Close()
		return nil, err
	}
	if err := m.ifconfig.Up(name); err != nil {
		_ = device.Close()
		return nil, err
	}

	return tun_adapters.NewWgTunAdapter(device, settings.MaxFrameSize(mtu)), nil
}

func (m *PlatformTunManager) DisposeTunDevices() error {
	// utun interfaces vanish when their control socket closes; nothing to
	// tear down beyond the device handle itself.
	return nil
}
