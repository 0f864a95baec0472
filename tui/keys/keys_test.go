package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewLowercasesConfiguredKeys(t *testing.T) {
	km := New("Z", "X")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}
	if !key.Matches(msg, km.Settings) {
		t.Error("expected z to match the settings binding")
	}
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if !key.Matches(msg, km.Analyze) {
		t.Error("expected x to match the analyze binding")
	}
}

func TestPlayIsSpace(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if !key.Matches(msg, DefaultKeyMap.Play) {
		t.Errorf("expected space to toggle playback, key string %q", msg.String())
	}
}
