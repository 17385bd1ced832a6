package mode_selection

import "whispertunnel/domain/mode"

// AppMode decides which run mode the process starts in, whether from
// arguments or by asking the operator.
type AppMode interface {
	Mode() (mode.Mode, error)
}
