package network

import "testing"

func TestNewSocket(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		port    int
		want    string
		wantErr bool
	}{
		{"ipv4 host", "203.0.113.7", 8000, "203.0.113.7:8000", false},
		{"hostname", "vpn.example.org", 443, "vpn.example.org:443", false},
		{"ipv6 host", "fd00::1", 8000, "[fd00::1]:8000", false},
		{"empty host", "", 8000, "", true},
		{"port zero", "203.0.113.7", 0, "", true},
		{"port too high", "203.0.113.7", 65536, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			socket, err := NewSocket(tt.host, tt.port)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSocket error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := socket.StringAddr(); got != tt.want {
				t.Errorf("StringAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}
