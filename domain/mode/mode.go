package mode

type Mode int

const (
	Unknown Mode = iota
	// Client mode used to start the tunnel client
	Client
	// Server mode used to start the tunnel server
	Server
	// ConfGen mode used to generate a paired client/server configuration
	ConfGen
	// Version used to lookup version
	Version
)
