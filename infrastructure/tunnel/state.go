package tunnel

// State is the session lifecycle. Closed is terminal: a new Session must
// be constructed to retry.
type State int32

const (
	StateIdle State = iota
	StateHandshaking
	StateEstablished
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHandshaking:
		return "handshaking"
	case StateEstablished:
		return "established"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
