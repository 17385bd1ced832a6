package configuration

import (
	"encoding/base64"
	"fmt"

	"whispertunnel/infrastructure/cryptography/aead"
)

// EncodeKey renders a session key for JSON storage.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey decodes a stored session key and enforces the 256-bit length.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("key is not valid base64: %w", err)
	}
	if len(key) != aead.KeySize {
		return nil, fmt.Errorf("decoded key is %d bytes, expected %d", len(key), aead.KeySize)
	}
	return key, nil
}
