package ifconfig

// Contract wraps the ifconfig invocations the TUN manager needs.
type Contract interface {
	SetInetAddress(devName string, cidr string) error
	SetMTU(devName string, mtu int) error
	Up(devName string) error
}
