package network

import (
	"fmt"
	"net"
	"strconv"
)

// Socket is a validated host:port pair.
type Socket struct {
	host string
	port int
}

func NewSocket(host string, port int) (Socket, error) {
	if host == "" {
		return Socket{}, fmt.Errorf("empty host")
	}
	if port < 1 || port > 65535 {
		return Socket{}, fmt.Errorf("invalid port: %d", port)
	}
	return Socket{host: host, port: port}, nil
}

func (s Socket) StringAddr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}
