package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Tab    key.Binding
	Quit   key.Binding
	Help   key.Binding

	// Playback
	Play        key.Binding
	StepBack    key.Binding
	StepForward key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
	Start       key.Binding
	End         key.Binding

	// Overlay and analysis
	Settings key.Binding
	Analyze  key.Binding
	Window   key.Binding
	Overlay  key.Binding
	Delete   key.Binding
	Models   key.Binding
	Restore  key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = New("z", "x")

// New builds the key map with the configurable settings and analysis keys.
// Config stores them the way they are shown ("Z"); bindings match lower case.
func New(settings, analyze string) KeyMap {
	settings = strings.ToLower(settings)
	analyze = strings.ToLower(analyze)
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "right")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		Play:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		StepBack:    key.NewBinding(key.WithKeys(","), key.WithHelp(",", "frame back")),
		StepForward: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "frame forward")),
		SeekBack:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "-5s")),
		SeekForward: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "+5s")),
		Start:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "start")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "end")),

		Settings: key.NewBinding(key.WithKeys(settings), key.WithHelp(settings, "settings")),
		Analyze:  key.NewBinding(key.WithKeys(analyze), key.WithHelp(analyze, "analyze")),
		Window:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "analysis window")),
		Overlay:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overlay on/off")),
		Delete:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete analysis")),
		Models:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "model setup")),
		Restore:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restore defaults")),
	}
}
