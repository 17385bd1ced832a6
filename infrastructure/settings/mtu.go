package settings

func ResolveMTU(mtu int) int {
	if mtu <= 0 {
		return DefaultTunnelMTU
	}
	return mtu
}

// MaxFrameSize is the largest frame payload the codec accepts for a given MTU.
func MaxFrameSize(mtu int) int {
	return ResolveMTU(mtu) + FrameSlack
}

func ResolveClockSkewSec(sec int) int {
	if sec <= 0 {
		return DefaultClockSkewSec
	}
	return sec
}
