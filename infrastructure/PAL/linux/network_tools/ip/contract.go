package ip

// Contract wraps the ip(8) invocations the TUN manager needs.
type Contract interface {
	TunTapAddDevTun(devName string) error
	LinkDelete(devName string) error
	LinkSetDevUp(devName string) error
	LinkSetDevMTU(devName string, mtu int) error
	AddrAddDev(devName string, cidr string) error
}
