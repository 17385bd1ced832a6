package handshake

import "errors"

// ErrHandshakeFailed covers bad tokens, clock skew beyond the window,
// malformed responses and handshake timeouts alike. The responder never
// tells the peer which condition fired.
var ErrHandshakeFailed = errors.New("handshake failed")
