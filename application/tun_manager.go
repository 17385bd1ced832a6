package application

// TunManager creates and disposes configured TUN devices
type TunManager interface {
	CreateTunDevice() (TunDevice, error)
	DisposeTunDevices() error
}
