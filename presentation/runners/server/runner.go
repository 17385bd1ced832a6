package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"whispertunnel/application"
	"whispertunnel/infrastructure/handshake"
	"whispertunnel/infrastructure/network"
	"whispertunnel/infrastructure/settings"
	"whispertunnel/infrastructure/tunnel"
)

// Runner accepts one client at a time. A rejected or failed session never
// stops the listener; the runner returns to accepting.
type Runner struct {
	deps   AppDependencies
	listen func(network, address string) (net.Listener, error)
}

func NewRunner(deps AppDependencies) *Runner {
	return &Runner{
		deps:   deps,
		listen: net.Listen,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	conf := r.deps.Configuration()

	socket, socketErr := network.NewSocket(conf.Settings.Server, conf.Settings.Port)
	if socketErr != nil {
		return fmt.Errorf("invalid bind address: %w", socketErr)
	}

	listener, listenErr := r.listen("tcp", socket.StringAddr())
	if listenErr != nil {
		return fmt.Errorf("failed to listen on %s: %w", socket.StringAddr(), listenErr)
	}
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	defer func() {
		if err := r.deps.TunManager().DisposeTunDevices(); err != nil {
			log.Printf("error disposing tun devices on exit: %s", err)
		}
	}()

	log.Printf("listening on %s", socket.StringAddr())
	for {
		conn, acceptErr := listener.Accept()
		if acceptErr != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(acceptErr, net.ErrClosed) {
				return acceptErr
			}
			log.Printf("accept error: %v", acceptErr)
			continue
		}

		r.serveSession(ctx, conn)
	}
}

// serveSession runs one session to completion. Handshake rejections land
// here as session errors; the peer is never told why.
func (r *Runner) serveSession(ctx context.Context, conn net.Conn) {
	log.Printf("client connected: %s", conn.RemoteAddr())

	if err := r.deps.TunManager().DisposeTunDevices(); err != nil {
		log.Printf("error disposing tun devices: %v", err)
	}
	tunDevice, tunErr := r.deps.TunManager().CreateTunDevice()
	if tunErr != nil {
		log.Printf("failed to create tun device: %v", tunErr)
		_ = conn.Close()
		return
	}

	session, sessionErr := r.buildSession(tunDevice, conn)
	if sessionErr != nil {
		log.Printf("failed to build session: %v", sessionErr)
		_ = conn.Close()
		_ = tunDevice.Close()
		return
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-sessionCtx.Done()
		session.Stop()
	}()

	if err := session.RouteTraffic(sessionCtx); err != nil {
		log.Printf("session ended: %v", err)
	}
}

func (r *Runner) buildSession(
	tunDevice application.TunDevice,
	conn net.Conn,
) (*tunnel.Session, error) {
	conf := r.deps.Configuration()
	key := r.deps.SessionKey()
	skew := time.Duration(settings.ResolveClockSkewSec(conf.Settings.ClockSkewSec)) * time.Second
	secret := tunnel.NewDefaultSecret(
		conf.Settings,
		key,
		handshake.NewTokenHandshake(key, skew),
		tunnel.RoleResponder,
	)

	deadline, deadlineErr := network.NewDeadline(conf.Settings.DialTimeoutMs.Duration())
	if deadlineErr != nil {
		return nil, fmt.Errorf("invalid handshake deadline: %w", deadlineErr)
	}

	return tunnel.NewSession(
		tunDevice,
		conn,
		tunnel.NewSecretWithDeadline(secret, deadline),
		conf.Settings,
	), nil
}
