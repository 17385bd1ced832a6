package bubble_tea

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSelectorMovesAndChooses(t *testing.T) {
	var model tea.Model = NewSelector("Please select mode", []string{"client", "server"})

	model, _ = model.Update(keyMsg(tea.KeyDown))
	model, _ = model.Update(keyMsg(tea.KeyEnter))

	selector, ok := model.(Selector)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if selector.Choice() != "server" {
		t.Errorf("Choice() = %q, want %q", selector.Choice(), "server")
	}
}

func TestSelectorCursorStaysInBounds(t *testing.T) {
	var model tea.Model = NewSelector("Please select mode", []string{"client", "server"})

	model, _ = model.Update(keyMsg(tea.KeyUp))
	model, _ = model.Update(keyMsg(tea.KeyDown))
	model, _ = model.Update(keyMsg(tea.KeyDown))
	model, _ = model.Update(keyMsg(tea.KeyDown))
	model, _ = model.Update(keyMsg(tea.KeyEnter))

	selector := model.(Selector)
	if selector.Choice() != "server" {
		t.Errorf("Choice() = %q, want %q", selector.Choice(), "server")
	}
}

func TestSelectorQuitWithoutChoice(t *testing.T) {
	var model tea.Model = NewSelector("Please select mode", []string{"client", "server"})

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	selector := model.(Selector)
	if selector.Choice() != "" {
		t.Errorf("Choice() = %q, want empty", selector.Choice())
	}
}

func TestSelectorView(t *testing.T) {
	selector := NewSelector("Please select mode", []string{"client", "server"})
	view := selector.View()
	if !strings.Contains(view, "Please select mode") {
		t.Error("view does not contain the placeholder")
	}
	if !strings.Contains(view, "client") || !strings.Contains(view, "server") {
		t.Error("view does not list the options")
	}
}
