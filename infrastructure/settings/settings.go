package settings

import (
	"fmt"
	"net/netip"
	"strings"
)

// Settings describes one tunnel endpoint: its TUN interface identity,
// the peer (or bind) address, and the immutable session parameters.
type Settings struct {
	TunName       string        `json:"TunName"`
	TunAddress    string        `json:"TunAddress"` // CIDR, e.g. "10.8.0.2/24"
	Server        string        `json:"Server"`
	Port          int           `json:"Port"`
	MTU           int           `json:"MTU"`
	Encryption    Encryption    `json:"Encryption"`
	DialTimeoutMs DialTimeoutMs `json:"DialTimeoutMs"`
	ClockSkewSec  int           `json:"ClockSkewSec"`
}

// Validate checks that the settings have the minimum required fields set.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.TunName) == "" {
		return fmt.Errorf("TunName is not configured")
	}
	if _, err := netip.ParsePrefix(s.TunAddress); err != nil {
		return fmt.Errorf("invalid TunAddress %q: %w", s.TunAddress, err)
	}
	if strings.TrimSpace(s.Server) == "" {
		return fmt.Errorf("Server is not configured")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("invalid Port %d", s.Port)
	}
	if s.MTU != 0 && (s.MTU < MinimumIPv4MTU || s.MTU > DefaultEthernetMTU) {
		return fmt.Errorf("invalid MTU %d: must be within [%d, %d]", s.MTU, MinimumIPv4MTU, DefaultEthernetMTU)
	}
	if s.ClockSkewSec < 0 {
		return fmt.Errorf("invalid ClockSkewSec %d", s.ClockSkewSec)
	}
	return nil
}

// TunAddressPrefix returns the parsed TunAddress.
func (s Settings) TunAddressPrefix() (netip.Prefix, error) {
	return netip.ParsePrefix(s.TunAddress)
}
