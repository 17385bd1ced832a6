//go:build windows

package tun_manager

import (
	"fmt"

	"golang.zx2c4.com/wintun"

	"whispertunnel/application"
	"whispertunnel/infrastructure/PAL/exec_commander"
	"whispertunnel/infrastructure/PAL/windows/network_tools/netsh"
	"whispertunnel/infrastructure/PAL/windows/tun_adapters"
	"whispertunnel/infrastructure/settings"
)

const tunnelType = "WhisperTunnel"

type PlatformTunManager struct {
	settings settings.Settings
	netsh    netsh.Contract
}

func NewPlatformTunManager(s settings.Settings) (application.TunManager, error) {
	return &PlatformTunManager{
		settings: s,
		netsh:    netsh.NewWrapper(exec_commander.NewExecCommander()),
	}, nil
}

func (m *PlatformTunManager) CreateTunDevice() (application.TunDevice, error) {
	adapter, createErr := wintun.CreateAdapter(m.settings.TunName, tunnelType, nil)
	if createErr != nil {
		return nil, fmt.Errorf("failed to create wintun adapter: %w", createErr)
	}

	if err := m.netsh.SetStaticAddress(m.settings.TunName, m.settings.TunAddress); err != nil {
		_ = adapter.Close()
		return nil, err
	}
	if err := m.netsh.SetMTU(m.settings.TunName, settings.ResolveMTU(m.settings.MTU)); err != nil {
		_ = adapter.Close()
		return nil, err
	}

	device, deviceErr := tun_adapters.NewWintunAdapter(adapter)
	if deviceErr != nil {
		_ = adapter.Close()
		return nil, fmt.Errorf("failed to start wintun session: %w", deviceErr)
	}
	return device, nil
}

func (m *PlatformTunManager) DisposeTunDevices() error {
	// The wintun adapter is destroyed when its handle closes.
	return nil
}
