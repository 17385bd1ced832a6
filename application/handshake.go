package application

// Handshake performs the one-shot challenge/response exchange that gates
// whether a session may carry traffic. Both sides operate on an already
// framed connection: the token is the first frame on the stream.
type Handshake interface {
	ClientSideHandshake(conn ConnectionAdapter) error
	ServerSideHandshake(conn ConnectionAdapter) error
}
