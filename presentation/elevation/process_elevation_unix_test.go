//go:build linux || darwin

package elevation

import (
	"os"
	"testing"
)

func TestIsElevated(t *testing.T) {
	want := os.Geteuid() == 0
	if got := NewProcessElevation().IsElevated(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
