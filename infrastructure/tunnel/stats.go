package tunnel

import "sync/atomic"

// Stats counts forwarded traffic per direction. All counters are atomic;
// both forwarding directions update them without locking.
type Stats struct {
	packetsSent     atomic.Uint64
	packetsReceived atomic.Uint64
	bytesSent       atomic.Uint64
	bytesReceived   atomic.Uint64
}

func (s *Stats) addSent(bytes int) {
	s.packetsSent.Add(1)
	s.bytesSent.Add(uint64(bytes))
}

func (s *Stats) addReceived(bytes int) {
	s.packetsReceived.Add(1)
	s.bytesReceived.Add(uint64(bytes))
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	PacketsSent     uint64
	PacketsReceived uint64
	BytesSent       uint64
	BytesReceived   uint64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		PacketsSent:     s.packetsSent.Load(),
		PacketsReceived: s.packetsReceived.Load(),
		BytesSent:       s.bytesSent.Load(),
		BytesReceived:   s.bytesReceived.Load(),
	}
}
