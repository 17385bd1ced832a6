package application

import "time"

// ConnectionAdapter provides a single and trivial API for any supported transports
type ConnectionAdapter interface {
	Write([]byte) (int, error)
	Read([]byte) (int, error)
	Close() error
}

// DeadlineSetter is implemented by transports that support I/O deadlines
// (net.Conn does). The handshake path uses it to time-bound the exchange.
type DeadlineSetter interface {
	SetDeadline(t time.Time) error
}
