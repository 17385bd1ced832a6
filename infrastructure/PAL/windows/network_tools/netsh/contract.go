package netsh

// Contract wraps the netsh invocations the TUN manager needs.
type Contract interface {
	SetStaticAddress(ifName string, cidr string) error
	SetMTU(ifName string, mtu int) error
}
