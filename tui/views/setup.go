package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/internal/analysis"
	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/tui/keys"
	"github.com/tonhe/replaylens/tui/styles"
)

// SetupAction describes what the app should do after a setup key press.
type SetupAction int

const (
	// SetupNone means stay on the setup page.
	SetupNone SetupAction = iota
	// SetupClose means the user left without changing the model.
	SetupClose
	// SetupReady means a verified model was selected and saved.
	SetupReady
)

// SetupView lists the installed model folders and verifies the one the user
// selects before it is used for analysis.
type SetupView struct {
	theme      styles.Theme
	sty        *styles.Styles
	config     *config.Config
	configPath string
	models     analysis.Models

	statuses []analysis.InstallStatus
	cursor   int
	err      string

	width  int
	height int
}

// NewSetupView creates the setup page and scans the models folder.
func NewSetupView(theme styles.Theme, cfg *config.Config, configPath string, models analysis.Models) SetupView {
	v := SetupView{
		theme:      theme,
		sty:        styles.NewStyles(theme),
		config:     cfg,
		configPath: configPath,
		models:     models,
	}
	v.Refresh()
	return v
}

// Refresh rescans the models folder, keeping the configured model selected.
func (v *SetupView) Refresh() {
	v.statuses = nil
	v.err = ""
	names, err := v.models.List()
	if err != nil {
		v.err = err.Error()
		return
	}
	for i, n := range names {
		// Not-ready models are listed with their reason.
		st, _ := v.models.Check(n)
		v.statuses = append(v.statuses, st)
		if n == v.config.Model {
			v.cursor = i
		}
	}
	if v.cursor >= len(v.statuses) {
		v.cursor = max(len(v.statuses)-1, 0)
	}
}

// SetSize updates the available dimensions.
func (v *SetupView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles key messages for the setup page.
func (v SetupView) Update(msg tea.Msg) (SetupView, tea.Cmd, SetupAction) {
	km := keys.DefaultKeyMap
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.Escape):
			return v, nil, SetupClose
		case key.Matches(msg, km.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, km.Down):
			if v.cursor < len(v.statuses)-1 {
				v.cursor++
			}
		case msg.String() == "r":
			v.Refresh()
		case key.Matches(msg, km.Enter):
			return v.verify()
		}
	}
	return v, nil, SetupNone
}

// verify re-checks the selected model and, when it is installed, makes it
// the configured model.
func (v SetupView) verify() (SetupView, tea.Cmd, SetupAction) {
	if len(v.statuses) == 0 {
		v.err = "No models installed in " + v.models.Root
		return v, nil, SetupNone
	}
	name := v.statuses[v.cursor].Model
	st, _ := v.models.Check(name)
	v.statuses[v.cursor] = st
	if !st.Ready() {
		v.err = fmt.Sprintf("%s is not ready: %s", name, st.Reason)
		return v, nil, SetupNone
	}

	v.config.Model = name
	v.config.ModelReady = true
	if err := config.SaveConfig(v.config, v.configPath); err != nil {
		v.err = fmt.Sprintf("Failed to save config: %v", err)
		return v, nil, SetupNone
	}
	v.err = ""
	return v, nil, SetupReady
}

// View renders the setup page.
func (v SetupView) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	dim := v.sty.TableCellDim

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Model Setup") + "\n\n")
	b.WriteString("  " + dim.Render("Models folder: "+v.models.Root) + "\n")
	b.WriteString("  " + dim.Render("Each model needs <name>_applet and an _internal folder.") + "\n\n")

	if v.err != "" {
		b.WriteString("  " + v.sty.StatusFail.Render(v.err) + "\n\n")
	}

	if len(v.statuses) == 0 {
		b.WriteString("  " + dim.Render("No model folders found.") + "\n")
	}
	for i, st := range v.statuses {
		cursor := "  "
		row := v.sty.TableRow
		if i == v.cursor {
			cursor = "> "
			row = v.sty.TableRowSel
		}
		status := v.sty.StatusOK.Render("ready")
		if !st.Ready() {
			status = v.sty.StatusFail.Render(st.Reason)
		}
		current := "  "
		if st.Model == v.config.Model {
			current = "* "
		}
		b.WriteString("  " + row.Render(cursor+current+padRight(st.Model, 24)) + status + "\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)
	keyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	b.WriteString("\n  " + helpStyle.Render(fmt.Sprintf("%s verify and use  %s rescan  %s back",
		keyStyle.Render("[enter]"), keyStyle.Render("[r]"), keyStyle.Render("[esc]"))) + "\n")
	return b.String()
}
