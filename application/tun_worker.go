package application

// TunHandler forwards packets read from a TUN-like interface to the transport
type TunHandler interface {
	HandleTun() error
}

// TransportHandler forwards frames read from the transport to the TUN-like interface
type TransportHandler interface {
	HandleTransport() error
}

// TunWorker does the TUN->CONN and CONN->TUN operations
type TunWorker interface {
	// HandleTun handles packets from TUN-like interface
	HandleTun() error
	// HandleTransport handles packets from transport connection
	HandleTransport() error
}
