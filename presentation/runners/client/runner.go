package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"whispertunnel/application"
	clientConfiguration "whispertunnel/infrastructure/PAL/configuration/client"
	"whispertunnel/infrastructure/handshake"
	"whispertunnel/infrastructure/network"
	"whispertunnel/infrastructure/settings"
	"whispertunnel/infrastructure/tunnel"
)

const reconnectDelay = 500 * time.Millisecond

// Runner dials the server and keeps one session alive at a time,
// reconnecting with a short backoff after any session failure.
type Runner struct {
	deps AppDependencies
}

func NewRunner(deps AppDependencies) *Runner {
	return &Runner{deps: deps}
}

func (r *Runner) Run(ctx context.Context) error {
	defer func() {
		if err := r.deps.TunManager().DisposeTunDevices(); err != nil {
			log.Printf("error disposing tun devices on exit: %s", err)
		}
	}()

	for ctx.Err() == nil {
		err := r.runSession(ctx)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, context.Canceled):
			return context.Canceled
		default:
			log.Printf("session error: %v, reconnecting", err)
			timer := time.NewTimer(reconnectDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return context.Canceled
			case <-timer.C:
			}
		}
	}
	return context.Canceled
}

func (r *Runner) runSession(ctx context.Context) error {
	conf := r.deps.Configuration()

	socket, socketErr := network.NewSocket(conf.Settings.Server, conf.Settings.Port)
	if socketErr != nil {
		return fmt.Errorf("invalid server address: %w", socketErr)
	}

	if err := r.deps.TunManager().DisposeTunDevices(); err != nil {
		log.Printf("error disposing tun devices: %v", err)
	}
	tunDevice, tunErr := r.deps.TunManager().CreateTunDevice()
	if tunErr != nil {
		return fmt.Errorf("failed to create tun device: %w", tunErr)
	}

	dialer := net.Dialer{Timeout: conf.Settings.DialTimeoutMs.Duration()}
	conn, dialErr := dialer.DialContext(ctx, "tcp", socket.StringAddr())
	if dialErr != nil {
		_ = tunDevice.Close()
		return fmt.Errorf("failed to dial %s: %w", socket.StringAddr(), dialErr)
	}

	session, sessionErr := r.buildSession(tunDevice, conn, conf)
	if sessionErr != nil {
		_ = conn.Close()
		_ = tunDevice.Close()
		return sessionErr
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-sessionCtx.Done()
		session.Stop()
	}()

	log.Printf("tunneling traffic via %s", conf.Settings.TunName)
	return session.RouteTraffic(sessionCtx)
}

func (r *Runner) buildSession(
	tunDevice application.TunDevice,
	conn net.Conn,
	conf clientConfiguration.Configuration,
) (*tunnel.Session, error) {
	key := r.deps.SessionKey()
	skew := time.Duration(settings.ResolveClockSkewSec(conf.Settings.ClockSkewSec)) * time.Second
	secret := tunnel.NewDefaultSecret(
		conf.Settings,
		key,
		handshake.NewTokenHandshake(key, skew),
		tunnel.RoleInitiator,
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
