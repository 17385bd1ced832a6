package client

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"whispertunnel/application"
	clientConfiguration "whispertunnel/infrastructure/PAL/configuration/client"
	"whispertunnel/infrastructure/settings"
)

type fakeTun struct {
	inbound   chan []byte
	outbound  chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeTun() *fakeTun {
	return &fakeTun{
		inbound:  make(chan []byte, 8),
		outbound: make(chan []byte, 8),
		closed:   make(chan struct{}),
	}
}

func (f *fakeTun) Read(p []byte) (int, error) {
	select {
	case packet := <-f.inbound:
		return copy(p, packet), nil
	case <-f.closed:
		return 0, os.ErrClosed
	}
}

func (f *fakeTun) Write(p []byte) (int, error) {
	select {
	case f.outbound <- append([]byte(nil), p...):
		return len(p), nil
	case <-f.closed:
		return 0, os.ErrClosed
	}
}

func (f *fakeTun) Close() error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

type fakeTunManager struct {
	created  chan *fakeTun
	disposed int
	mu       sync.Mutex
}

func newFakeTunManager() *fakeTunManager {
	return &fakeTunManager{created: make(chan *fakeTun, 8)}
}

func (m *fakeTunManager) CreateTunDevice() (application.TunDevice, error) {
	device := newFakeTun()
	m.created <- device
	return device, nil
}

func (m *fakeTunManager) DisposeTunDevices() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disposed++
	return nil
}

type fakeDeps struct {
	conf clientConfiguration.Configuration
	key  []byte
	tun  application.TunManager
}

func (d *fakeDeps) Initialize() error { return nil }

func (d *fakeDeps) Configuration() clientConfiguration.Configuration { return d.conf }

func (d *fakeDeps) SessionKey() []byte { return d.key }

func (d *fakeDeps) TunManager() application.TunManager { return d.tun }

func testSettings(port int) settings.Settings {
	return settings.Settings{
		TunName:       "wtun-test",
		TunAddress:    "10.9.0.2/24",
		Server:        "127.0.0.1",
		Port:          port,
		MTU:           settings.DefaultTunnelMTU,
		Encryption:    settings.AESGCM,
		DialTimeoutMs: 1000,
		ClockSkewSec:  settings.DefaultClockSkewSec,
	}
}

func TestRunnerStopsOnCancelWhileReconnecting(t *testing.T) {
	manager := newFakeTunManager()
	deps := &fakeDeps{
		// Port 1 is expected to refuse connections.
		conf: clientConfiguration.Configuration{Settings: testSettings(1)},
		key:  make([]byte, 32),
		tun:  manager,
	}

	ctx, cancel := context.WithCancel(context.Background())
	resultCh := make(chan error, 1)
	go func() {
		resultCh <- NewRunner(deps).Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-resultCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want nil or context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.disposed == 0 {
		t.Error("expected tun devices to be disposed")
	}
}

func TestRunnerClosesTunOnDialFailure(t *testing.T) {
	manager := newFakeTunManager()
	deps := &fakeDeps{
		conf: clientConfiguration.Configuration{Settings: testSettings(1)},
		key:  make([]byte, 32),
		tun:  manager,
	}

	err := NewRunner(deps).runSession(context.Background())
	if err == nil {
		t.Fatal("expected dial error")
	}

	device := <-manager.created
	select {
	case <-device.closed:
	default:
		t.Error("tun device must be closed after a failed dial")
	}
}
