package views

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/internal/overlay"
	"github.com/tonhe/replaylens/internal/preset"
	"github.com/tonhe/replaylens/tui/keys"
	"github.com/tonhe/replaylens/tui/styles"
)

// SettingsAction describes what the app should do after a settings update.
type SettingsAction int

const (
	// SettingsNone means continue in the settings view.
	SettingsNone SettingsAction = iota
	// SettingsClose means the user cancelled without saving.
	SettingsClose
	// SettingsSaved means the config was saved; the app should apply changes.
	SettingsSaved
)

type toggleField struct {
	label string
	get   func(*config.OverlayConfig) *bool
}

type intField struct {
	label       string
	placeholder string
	get         func(*config.OverlayConfig) *int
}

var toggleFields = []toggleField{
	{"Overlay", func(o *config.OverlayConfig) *bool { return &o.Enabled }},
	{"Advantage bars", func(o *config.OverlayConfig) *bool { return &o.ShowTopBars }},
	{"Eval chart", func(o *config.OverlayConfig) *bool { return &o.ShowMainEval }},
	{"Chart background", func(o *config.OverlayConfig) *bool { return &o.ShowMainBackground }},
	{"Title", func(o *config.OverlayConfig) *bool { return &o.ShowTitle }},
	{"Hotkey reminders", func(o *config.OverlayConfig) *bool { return &o.ShowHotkeyReminders }},
	{"Debug grid", func(o *config.OverlayConfig) *bool { return &o.DebugGrid }},
	{"Open on replay", func(o *config.OverlayConfig) *bool { return &o.OpenWindowOnReplay }},
}

var intFields = []intField{
	{"Chart alpha", "165", func(o *config.OverlayConfig) *int { return &o.MainEvalAlpha }},
	{"Bar bg alpha", "180", func(o *config.OverlayConfig) *int { return &o.BarBackgroundAlpha }},
	{"Past frames", "150", func(o *config.OverlayConfig) *int { return &o.PastFrames }},
	{"Future frames", "150", func(o *config.OverlayConfig) *int { return &o.FutureFrames }},
	{"Smoothing", "0", func(o *config.OverlayConfig) *int { return &o.SmoothingWindow }},
}

// Row layout: theme, preset, toggles, then numeric inputs.
const (
	settingsRowTheme  = 0
	settingsRowPreset = 1
	settingsRowFirst  = 2
)

// SettingsView edits the overlay settings, with live theme and preset
// previews. Nothing is written until the user saves.
type SettingsView struct {
	theme      styles.Theme
	sty        *styles.Styles
	config     *config.Config
	configPath string
	presetsDir string

	themeSlug   string
	presets     []string
	presetIndex int // -1 while the values do not come from a preset
	cursor      int

	draft  config.OverlayConfig
	layout overlay.Fractions
	inputs []textinput.Model

	width  int
	height int

	err        string
	SavedTheme string // theme slug after save, so the app can apply it
}

// NewSettingsView creates a SettingsView populated from the current config.
func NewSettingsView(theme styles.Theme, cfg *config.Config, configPath, presetsDir string) SettingsView {
	slug := cfg.Theme
	if _, ok := styles.Lookup(slug); !ok {
		slug = styles.FallbackTheme
	}

	inputs := make([]textinput.Model, len(intFields))
	for i, f := range intFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = 6
		in.Width = 12
		inputs[i] = in
	}

	s := SettingsView{
		theme:       theme,
		sty:         styles.NewStyles(theme),
		config:      cfg,
		configPath:  configPath,
		presetsDir:  presetsDir,
		themeSlug:   slug,
		presets:     presetNames(presetsDir),
		presetIndex: -1,
		inputs:      inputs,
	}
	s.loadDraft(cfg.Overlay, cfg.Layout)
	return s
}

func presetNames(dir string) []string {
	seen := make(map[string]bool)
	var names []string
	user, _ := preset.List(dir)
	for _, n := range append(preset.BuiltinNames(), user...) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func (s *SettingsView) loadDraft(o config.OverlayConfig, layout overlay.Fractions) {
	s.draft = o
	s.layout = layout
	for i, f := range intFields {
		s.inputs[i].SetValue(strconv.Itoa(*f.get(&s.draft)))
	}
}

func (s SettingsView) rowCount() int {
	return settingsRowFirst + len(toggleFields) + len(intFields)
}

// toggleAt returns the toggle index for a row, or -1.
func (s SettingsView) toggleAt(row int) int {
	i := row - settingsRowFirst
	if i >= 0 && i < len(toggleFields) {
		return i
	}
	return -1
}

// inputAt returns the numeric input index for a row, or -1.
func (s SettingsView) inputAt(row int) int {
	i := row - settingsRowFirst - len(toggleFields)
	if i >= 0 && i < len(intFields) {
		return i
	}
	return -1
}

// SetSize updates the available dimensions for the settings view.
func (s *SettingsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// focusInput blurs all inputs and focuses the one at the cursor position.
func (s *SettingsView) focusInput() {
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	if i := s.inputAt(s.cursor); i >= 0 {
		s.inputs[i].Focus()
	}
}

func (s *SettingsView) move(delta int) {
	n := s.rowCount()
	s.cursor = (s.cursor + delta + n) % n
	s.focusInput()
}

// cycle handles left/right on the theme, preset and toggle rows.
func (s *SettingsView) cycle(delta int) bool {
	switch {
	case s.cursor == settingsRowTheme:
		s.themeSlug = styles.Step(s.themeSlug, delta)
		s.theme = styles.Resolve(s.themeSlug)
		s.sty = styles.NewStyles(s.theme)
		return true
	case s.cursor == settingsRowPreset:
		if len(s.presets) == 0 {
			return true
		}
		n := len(s.presets)
		s.presetIndex = ((s.presetIndex+delta)%n + n) % n
		s.applyPreset(s.presets[s.presetIndex])
		return true
	case s.toggleAt(s.cursor) >= 0:
		p := toggleFields[s.toggleAt(s.cursor)].get(&s.draft)
		*p = !*p
		return true
	}
	return false
}

func (s *SettingsView) applyPreset(name string) {
	p, err := preset.Find(s.presetsDir, name)
	if err != nil {
		s.err = err.Error()
		return
	}
	tmp := *s.config
	tmp.Overlay = s.draft
	tmp.Layout = s.layout
	p.Apply(&tmp)
	s.loadDraft(tmp.Overlay, tmp.Layout)
	s.err = ""
}

func (s *SettingsView) restoreDefaults() {
	d := config.DefaultConfig()
	s.loadDraft(d.Overlay, d.Layout)
	s.presetIndex = -1
	s.err = ""
}

// Update handles messages for the settings view.
func (s SettingsView) Update(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	km := keys.DefaultKeyMap
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.Escape):
			return s, nil, SettingsClose
		case key.Matches(msg, km.Enter):
			return s.save()
		case key.Matches(msg, km.Restore):
			s.restoreDefaults()
			return s, nil, SettingsNone
		case msg.Type == tea.KeyUp, msg.String() == "shift+tab":
			s.move(-1)
			return s, nil, SettingsNone
		case msg.Type == tea.KeyDown, msg.Type == tea.KeyTab:
			s.move(1)
			return s, nil, SettingsNone
		case msg.Type == tea.KeyLeft, msg.Type == tea.KeyRight:
			delta := 1
			if msg.Type == tea.KeyLeft {
				delta = -1
			}
			if s.cycle(delta) {
				return s, nil, SettingsNone
			}
		case msg.Type == tea.KeySpace && s.toggleAt(s.cursor) >= 0:
			s.cycle(1)
			return s, nil, SettingsNone
		}
		return s.updateTextInput(msg)
	}
	return s, nil, SettingsNone
}

func (s SettingsView) updateTextInput(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	i := s.inputAt(s.cursor)
	if i < 0 {
		return s, nil, SettingsNone
	}
	var cmd tea.Cmd
	s.inputs[i], cmd = s.inputs[i].Update(msg)
	s.presetIndex = -1
	return s, cmd, SettingsNone
}

// save validates the inputs and persists the config to disk.
func (s SettingsView) save() (SettingsView, tea.Cmd, SettingsAction) {
	draft := s.draft
	for i, f := range intFields {
		str := strings.TrimSpace(s.inputs[i].Value())
		if str == "" {
			str = f.placeholder
		}
		v, err := strconv.Atoi(str)
		if err != nil || v < 0 {
			s.err = fmt.Sprintf("%s must be a non-negative whole number", f.label)
			return s, nil, SettingsNone
		}
		*f.get(&draft) = v
	}

	s.config.Theme = s.themeSlug
	s.config.Overlay = draft
	s.config.Layout = s.layout
	s.config.Sanitize()

	if err := config.SaveConfig(s.config, s.configPath); err != nil {
		s.err = fmt.Sprintf("Failed to save config: %v", err)
		return s, nil, SettingsNone
	}

	s.loadDraft(s.config.Overlay, s.config.Layout)
	s.SavedTheme = s.config.Theme
	s.err = ""
	return s, nil, SettingsSaved
}

// View renders the settings screen.
func (s SettingsView) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(s.theme.Base0D).Bold(true)
	activeLabel := lipgloss.NewStyle().Foreground(s.theme.Base0D).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(s.theme.Base06)

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Overlay Settings") + "\n\n")

	if s.err != "" {
		errStyle := lipgloss.NewStyle().Foreground(s.theme.Base08)
		b.WriteString("  " + errStyle.Render(s.err) + "\n\n")
	}

	themeName := styles.Resolve(s.themeSlug).Name
	presetName := "(custom)"
	if s.presetIndex >= 0 && s.presetIndex < len(s.presets) {
		presetName = s.presets[s.presetIndex]
	}

	for row := 0; row < s.rowCount(); row++ {
		var label, value string
		switch {
		case row == settingsRowTheme:
			label = "Theme"
			value = valStyle.Render(fmt.Sprintf("< %s >  (%d/%d)", themeName, styles.Position(s.themeSlug), len(styles.Themes)))
		case row == settingsRowPreset:
			label = "Preset"
			value = valStyle.Render("< " + presetName + " >")
		case s.toggleAt(row) >= 0:
			f := toggleFields[s.toggleAt(row)]
			label = f.label
			if *f.get(&s.draft) {
				value = s.sty.ToggleOn.Render("[x] on")
			} else {
				value = s.sty.ToggleOff.Render("[ ] off")
			}
		default:
			i := s.inputAt(row)
			label = intFields[i].label
			value = s.inputs[i].View()
		}

		indicator := "  "
		lbl := s.sty.FormLabel
		if row == s.cursor {
			indicator = activeLabel.Render("> ")
			lbl = activeLabel
		}
		b.WriteString(fmt.Sprintf("  %s%s%s\n", indicator, lbl.Render(padRight(label+":", 20)), value))
	}

	b.WriteString("\n  " + s.renderHelp() + "\n")
	return b.String()
}

func (s SettingsView) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(s.theme.Base04)
	keyStyle := lipgloss.NewStyle().Foreground(s.theme.Base0D).Bold(true)

	hint := fmt.Sprintf("%s/%s navigate  ", keyStyle.Render("[up]"), keyStyle.Render("[down]"))
	if s.inputAt(s.cursor) < 0 {
		hint += fmt.Sprintf("%s/%s change  ", keyStyle.Render("[left]"), keyStyle.Render("[right]"))
	}
	hint += fmt.Sprintf("%s save  %s defaults  %s cancel",
		keyStyle.Render("[enter]"),
		keyStyle.Render("[ctrl+r]"),
		keyStyle.Render("[esc]"),
	)
	return helpStyle.Render(hint)
}
