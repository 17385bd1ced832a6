package configuration

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestKeyRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}

	decoded, err := DecodeKey(EncodeKey(key))
	if err != nil {
		t.Fatalf("DecodeKey: %v", err)
	}
	if !bytes.Equal(decoded, key) {
		t.Error("key mismatch after round trip")
	}
}

func TestDecodeKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"empty", ""},
		{"wrong length", EncodeKey(make([]byte, 16))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeKey(tt.encoded); err == nil {
				t.Error("expected error")
			}
		})
	}
}
