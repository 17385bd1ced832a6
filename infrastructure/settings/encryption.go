package settings

import (
	"encoding/json"
	"errors"
)

// Encryption specifies the AEAD suite sealing tunnel traffic
type Encryption int

const (
	// AESGCM is the default suite and the original wire format
	AESGCM Encryption = iota
	ChaCha20Poly1305
)

func (e Encryption) String() string {
	switch e {
	case AESGCM:
		return "AESGCM"
	case ChaCha20Poly1305:
		return "ChaCha20Poly1305"
	default:
		return "unknown"
	}
}

func (e Encryption) MarshalJSON() ([]byte, error) {
	switch e {
	case AESGCM, ChaCha20Poly1305:
		return json.Marshal(e.String())
	default:
		return nil, errors.New("invalid encryption")
	}
}

func (e *Encryption) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "AESGCM":
		*e = AESGCM
		return nil
	case "ChaCha20Poly1305":
		*e = ChaCha20Poly1305
		return nil
	default:
		return errors.New("invalid encryption")
	}
}
