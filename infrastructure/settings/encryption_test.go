package settings

import (
	"encoding/json"
	"testing"
)

func TestEncryptionJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		enc  Encryption
		want string
	}{
		{"aes-gcm", AESGCM, `"AESGCM"`},
		{"chacha20-poly1305", ChaCha20Poly1305, `"ChaCha20Poly1305"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.enc)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var got Encryption = -1
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got != tt.enc {
				t.Errorf("round trip = %v, want %v", got, tt.enc)
			}
		})
	}
}

func TestEncryptionMarshalInvalid(t *testing.T) {
	if _, err := json.Marshal(Encryption(42)); err == nil {
		t.Error("expected error marshalling invalid encryption")
	}
}

func TestEncryptionUnmarshalInvalid(t *testing.T) {
	var e Encryption
	if err := json.Unmarshal([]byte(`"DES"`), &e); err == nil {
		t.Error("expected error unmarshalling unknown suite")
	}
	if err := json.Unmarshal([]byte(`7`), &e); err == nil {
		t.Error("expected error unmarshalling non-string")
	}
}
