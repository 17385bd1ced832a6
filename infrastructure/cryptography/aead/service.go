// Package aead seals and opens single packet payloads with an authenticated
// cipher. A sealed buffer is nonce ‖ ciphertext ‖ tag; the nonce is drawn
// fresh from crypto/rand on every Encrypt call. The same key is used for
// both directions of a session and no subkeys are derived from it.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"whispertunnel/application"
	"whispertunnel/infrastructure/settings"
)

const (
	KeySize   = chacha20poly1305.KeySize
	NonceSize = chacha20poly1305.NonceSize
	Overhead  = chacha20poly1305.Overhead
)

type Service struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewService builds a CryptographyService for the given suite.
// The key must be exactly 32 bytes regardless of suite.
func NewService(key []byte, encryption settings.Encryption) (application.CryptographyService, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	var aead cipher.AEAD
	switch encryption {
	case settings.AESGCM:
		block, blockErr := aes.NewCipher(key)
		if blockErr != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", blockErr)
		}
		gcm, gcmErr := cipher.NewGCM(block)
		if gcmErr != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", gcmErr)
		}
		aead = gcm
	case settings.ChaCha20Poly1305:
		chacha, chachaErr := chacha20poly1305.New(key)
		if chachaErr != nil {
			return nil, fmt.Errorf("failed to create chacha20poly1305: %w", chachaErr)
		}
		aead = chacha
	default:
		return nil, fmt.Errorf("unsupported encryption suite: %v", encryption)
	}

	return &Service{
		aead: aead,
		rand: rand.Reader,
	}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns
// nonce ‖ ciphertext ‖ tag as one buffer ready for framing.
func (s *Service) Encrypt(plaintext []byte) ([]byte, error) {
	sealed := make([]byte, NonceSize, NonceSize+len(plaintext)+Overhead)
	if _, err := io.ReadFull(s.rand, sealed[:NonceSize]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return s.aead.Seal(sealed, sealed[:NonceSize], plaintext, nil), nil
}

// Decrypt splits a sealed buffer into nonce and ciphertext+tag and opens it.
// Any tampering, truncation or wrong-key condition reports the same
// ErrAuthenticationFailed.
func (s *Service) Decrypt(sealed []byte) ([]byte, error) {
	if len(sealed) < NonceSize+Overhead {
		return nil, ErrAuthenticationFailed
	}
	plaintext, err := s.aead.Open(nil, sealed[:NonceSize], sealed[NonceSize:], nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
