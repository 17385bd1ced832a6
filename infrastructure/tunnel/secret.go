package tunnel

import (
	"fmt"
	"time"

	"whispertunnel/application"
	"whispertunnel/infrastructure/cryptography/aead"
	"whispertunnel/infrastructure/network"
	"whispertunnel/infrastructure/settings"
)

// Role selects which side of the handshake this endpoint plays.
type Role int

const (
	RoleInitiator Role = iota
	RoleResponder
)

// Secret gates the session: it runs the handshake over a framed connection
// and, on success, yields the cryptography service sealing all traffic.
type Secret interface {
	Exchange(conn application.ConnectionAdapter) (application.CryptographyService, error)
}

type DefaultSecret struct {
	settings  settings.Settings
	key       []byte
	handshake application.Handshake
	role      Role
}

func NewDefaultSecret(s settings.Settings, key []byte, handshake application.Handshake, role Role) Secret {
	return &DefaultSecret{
		settings:  s,
		key:       key,
		handshake: handshake,
		role:      role,
	}
}

func (s *DefaultSecret) Exchange(conn application.ConnectionAdapter) (application.CryptographyService, error) {
	var handshakeErr error
	switch s.role {
	case RoleInitiator:
		handshakeErr = s.handshake.ClientSideHandshake(conn)
	case RoleResponder:
		handshakeErr = s.handshake.ServerSideHandshake(conn)
	default:
		return nil, fmt.Errorf("unknown handshake role: %d", s.role)
	}
	if handshakeErr != nil {
		return nil, handshakeErr
	}

	cryptographyService, cryptographyServiceErr := aead.NewService(s.key, s.settings.Encryption)
	if cryptographyServiceErr != nil {
		return nil, fmt.Errorf("failed to create cryptography service: %w", cryptographyServiceErr)
	}
	return cryptographyService, nil
}

// SecretWithDeadline bounds the wrapped exchange in time. Only the
// handshake is deadline-bounded; established forwarding loops are not.
type SecretWithDeadline struct {
	inner    Secret
	deadline network.Deadline
}

func NewSecretWithDeadline(inner Secret, deadline network.Deadline) Secret {
	return &SecretWithDeadline{
		inner:    inner,
		deadline: deadline,
	}
}

func (s *SecretWithDeadline) Exchange(conn application.ConnectionAdapter) (application.CryptographyService, error) {
	if setter, ok := conn.(application.DeadlineSetter); ok {
		if err := setter.SetDeadline(s.deadline.Time()); err != nil {
			return nil, fmt.Errorf("failed to set handshake deadline: %w", err)
		}
		defer func() {
			_ = setter.SetDeadline(time.Time{})
		}()
	}
	return s.inner.Exchange(conn)
}
