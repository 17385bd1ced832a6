package elevation

// ProcessElevation reports whether the process holds the privileges TUN
// device management needs.
type ProcessElevation interface {
	IsElevated() bool
}
