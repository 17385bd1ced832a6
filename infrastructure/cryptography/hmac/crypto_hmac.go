package hmac

import (
	"crypto/hmac"
	"crypto/sha256"

	"whispertunnel/application"
)

// Size is the length of a generated signature in bytes.
const Size = sha256.Size

// CryptoHMAC signs and verifies handshake tokens with HMAC-SHA256. An
// instance is single-caller: ioBuf is reused across calls, and a returned
// signature stays valid only until the next Generate or Verify on the
// same instance. The handshake runs one exchange at a time and every
// session builds its own instance, so calls never overlap in practice.
type CryptoHMAC struct {
	secret []byte
	ioBuf  [sha256.Size]byte
}

func NewHMAC(secret []byte) application.HMAC {
	return &CryptoHMAC{
		secret: secret,
	}
}

// Generate signs data, writing the signature into the shared ioBuf.
func (d *CryptoHMAC) Generate(data []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(data)
	sum := mac.Sum(d.ioBuf[:0])
	return sum, nil
}

// Verify recomputes the signature over data and constant-time compares
// it against signature. It reuses ioBuf, invalidating any slice a prior
// Generate returned.
func (d *CryptoHMAC) Verify(data, signature []byte) error {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(data)
	expected := mac.Sum(d.ioBuf[:0])
	equal := hmac.Equal(expected, signature)
	if !equal {
		return ErrUnexpectedSignature
	}

	return nil
}
