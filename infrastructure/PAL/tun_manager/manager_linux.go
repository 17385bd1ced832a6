//go:build linux

package tun_manager

import (
	"fmt"

	"whispertunnel/application"
	"whispertunnel/infrastructure/PAL/exec_commander"
	"whispertunnel/infrastructure/PAL/linux/network_tools/ip"
	"whispertunnel/infrastructure/PAL/linux/tun"
	"whispertunnel/infrastructure/settings"
)

type PlatformTunManager struct {
	settings settings.Settings
	ip       ip.Contract
}

func NewPlatformTunManager(s settings.Settings) (application.TunManager, error) {
	return &PlatformTunManager{
		settings: s,
		ip:       ip.NewWrapper(exec_commander.NewExecCommander()),
	}, nil
}

func (m *PlatformTunManager) CreateTunDevice() (application.TunDevice, error) {
	name := m.settings.TunName
	if err := m.ip.TunTapAddDevTun(name); err != nil {
		return nil, err
	}
	if err := m.ip.AddrAddDev(name, m.settings.TunAddress); err != nil {
		_ = m.ip.LinkDelete(name)
		return nil, err
	}
	if err := m.ip.LinkSetDevMTU(name, settings.ResolveMTU(m.settings.MTU)); err != nil {
		_ = m.ip.LinkDelete(name)
		return nil, err
	}
	if err := m.ip.LinkSetDevUp(name); err != nil {
		_ = m.ip.LinkDelete(name)
		return nil, err
	}

	device, openErr := tun.Open(name)
	if openErr != nil {
		_ = m.ip.LinkDelete(name)
		return nil, fmt.Errorf("failed to open TUN %s: %w", name, openErr)
	}
	return device, nil
}

func (m *PlatformTunManager) DisposeTunDevices() error {
	// The interface may be gone already (first run, or torn down by the
	// kernel); deletion failure is not fatal to disposal.
	_ = m.ip.LinkDelete(m.settings.TunName)
	return nil
}
