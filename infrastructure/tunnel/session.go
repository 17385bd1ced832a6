// Package tunnel composes the frame codec, the AEAD transform and the
// handshake into one point-to-point session: one TUN handle, one stream
// transport, two independent forwarding directions.
package tunnel

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"whispertunnel/application"
	"whispertunnel/domain/network/framelimit"
	"whispertunnel/infrastructure/network/framing"
	"whispertunnel/infrastructure/settings"
)

// Session owns one authenticated peer relationship. It exclusively owns
// its two endpoint handles for its lifetime; no other component reads or
// writes them concurrently. Any number of sessions may coexist.
//
// Lifecycle: Idle -> Handshaking -> Established -> Closed. Closed is
// terminal; construct a new Session to retry. The session never
// reconnects on its own - that is the calling runner's concern.
type Session struct {
	tun       application.TunDevice
	transport application.ConnectionAdapter
	secret    Secret
	settings  settings.Settings

	state     atomic.Int32
	stats     Stats
	closeOnce sync.Once
}

func NewSession(
	tun application.TunDevice,
	transport application.ConnectionAdapter,
	secret Secret,
	s settings.Settings,
) *Session {
	return &Session{
		tun:       tun,
		transport: transport,
		secret:    secret,
		settings:  s,
	}
}

func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) Stats() Snapshot {
	return s.stats.Snapshot()
}

// Stop closes both endpoint handles, which unblocks any parked read and
// drives the session to Closed. Safe to call from any goroutine, any
// number of times.
func (s *Session) Stop() {
	s.close()
}

// RouteTraffic runs the session to completion: handshake first, then both
// forwarding directions until either fails, either handle closes, or ctx
// is cancelled. Both handles are closed by the time it returns.
func (s *Session) RouteTraffic(ctx context.Context) error {
	if !s.transition(StateIdle, StateHandshaking) {
		return fmt.Errorf("session is %s, expected idle", s.State())
	}
	defer s.close()

	frameCap, capErr := framelimit.NewCap(settings.MaxFrameSize(s.settings.MTU))
	if capErr != nil {
		return fmt.Errorf("invalid frame cap: %w", capErr)
	}
	framedTransport := framing.NewAdapter(s.transport, frameCap)

	cryptographyService, exchangeErr := s.secret.Exchange(framedTransport)
	if exchangeErr != nil {
		return exchangeErr
	}
	if !s.transition(StateHandshaking, StateEstablished) {
		return fmt.Errorf("session closed during handshake")
	}

	mtu := settings.ResolveMTU(s.settings.MTU)
	errGroup, errGroupCtx := errgroup.WithContext(ctx)

	worker := NewWorker(
		NewTunHandler(errGroupCtx, s.tun, framedTransport, cryptographyService, frameCap, mtu, &s.stats),
		NewTransportHandler(errGroupCtx, framedTransport, s.tun, cryptographyService, mtu, &s.stats),
	)

	// Closing the handles is the cancellation signal: it is what unblocks
	// a direction parked in a blocking read.
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		<-errGroupCtx.Done()
		s.close()
	}()

	// TUN -> Transport
	errGroup.Go(worker.HandleTun)
	// Transport -> TUN
	errGroup.Go(worker.HandleTransport)

	routeErr := errGroup.Wait()
	<-watcherDone

	snapshot := s.stats.Snapshot()
	log.Printf("session closed: %d packets (%d bytes) sent, %d packets (%d bytes) received",
		snapshot.PacketsSent, snapshot.BytesSent, snapshot.PacketsReceived, snapshot.BytesReceived)
	return routeErr
}

func (s *Session) transition(from, to State) bool {
	return s.state.CompareAndSwap(int32(from), int32(to))
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateClosed))
		if err := s.transport.Close(); err != nil {
			log.Printf("transport close: %v", err)
		}
		if err := s.tun.Close(); err != nil {
			log.Printf("tun close: %v", err)
		}
	})
}
