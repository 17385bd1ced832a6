package settings

import "time"

type DialTimeoutMs int

func (d DialTimeoutMs) Int() int {
	return int(d)
}

func (d DialTimeoutMs) Duration() time.Duration {
	if d <= 0 {
		return DefaultDialTimeoutMs * time.Millisecond
	}
	return time.Duration(d) * time.Millisecond
}
