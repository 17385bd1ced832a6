package application

// CryptographyService seals and opens single packet payloads.
// Encrypt returns a self-contained nonce-prefixed sealed buffer,
// Decrypt consumes one and returns the plaintext.
type CryptographyService interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(sealed []byte) ([]byte, error)
}
