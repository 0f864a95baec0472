package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/internal/analysis"
	"github.com/tonhe/replaylens/tui/keys"
	"github.com/tonhe/replaylens/tui/styles"
)

// BrowserAction describes what the app should do after a browser key press.
type BrowserAction int

const (
	// BrowserNone means no action needed.
	BrowserNone BrowserAction = iota
	// BrowserOpen means the user picked a replay to play.
	BrowserOpen
	// BrowserRefresh asks the app to rescan the replay folders.
	BrowserRefresh
)

// BrowserItem is one replay in the list.
type BrowserItem struct {
	Replay      analysis.Replay
	HasAnalysis bool
}

// BrowserView lists the replays found in the replay folders and marks the
// ones that already have an analysis for the current model.
type BrowserView struct {
	theme  styles.Theme
	sty    *styles.Styles
	items  []BrowserItem
	cursor int
	offset int
	width  int
	height int
	err    string
}

// NewBrowserView creates a new BrowserView with the given theme.
func NewBrowserView(theme styles.Theme) BrowserView {
	return BrowserView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Refresh rescans dirs and matches replays against the model's analyses.
func (v *BrowserView) Refresh(dirs []string, models analysis.Models, model string) {
	v.items = nil
	v.err = ""

	replays, err := analysis.ListReplays(dirs)
	if err != nil {
		v.err = err.Error()
		return
	}
	analyzed := make(map[string]bool)
	if files, err := models.Analyses(model); err == nil {
		for _, f := range files {
			analyzed[f.ReplayID] = true
		}
	}
	for _, r := range replays {
		v.items = append(v.items, BrowserItem{Replay: r, HasAnalysis: analyzed[r.ID]})
	}

	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.ensureVisible()
}

// SetSize updates the available dimensions for the view.
func (v *BrowserView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.ensureVisible()
}

// SelectedItem returns the highlighted replay, or nil if the list is empty.
func (v *BrowserView) SelectedItem() *BrowserItem {
	if len(v.items) == 0 {
		return nil
	}
	return &v.items[v.cursor]
}

// Len is the number of replays listed.
func (v BrowserView) Len() int { return len(v.items) }

// Update handles key messages for the browser.
func (v BrowserView) Update(msg tea.Msg) (BrowserView, tea.Cmd, BrowserAction) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if v.cursor > 0 {
				v.cursor--
				v.ensureVisible()
			}
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			if v.cursor < len(v.items)-1 {
				v.cursor++
				v.ensureVisible()
			}
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			if len(v.items) > 0 {
				return v, nil, BrowserOpen
			}
		case msg.String() == "r":
			return v, nil, BrowserRefresh
		}
	}
	return v, nil, BrowserNone
}

func (v *BrowserView) ensureVisible() {
	visible := max(v.height-3, 1)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
}

// View renders the replay list.
func (v BrowserView) View() string {
	if v.err != "" || len(v.items) == 0 {
		return v.renderEmpty()
	}

	nameWidth := max(v.width-36, 12)
	var b strings.Builder
	b.WriteString(" " + v.sty.TableHeader.Render(
		padRight("Replay", nameWidth)+padRight("Modified", 20)+"Analysis") + "\n")

	visible := max(v.height-3, 1)
	end := min(v.offset+visible, len(v.items))
	for i := v.offset; i < end; i++ {
		b.WriteString(v.renderItem(v.items[i], i == v.cursor, nameWidth) + "\n")
	}

	b.WriteString("\n " + v.sty.TableCellDim.Render(fmt.Sprintf("%d replays", len(v.items))))
	return b.String()
}

func (v BrowserView) renderItem(item BrowserItem, selected bool, nameWidth int) string {
	rowStyle := v.sty.TableRow
	if selected {
		rowStyle = v.sty.TableRowSel
	}
	cursor := "  "
	if selected {
		cursor = "> "
	}

	status := v.sty.TableCellDim.Render("o none")
	if item.HasAnalysis {
		status = v.sty.StatusOK.Render("* ready")
	}

	name := padRight(truncate(item.Replay.ID, nameWidth-3), nameWidth-2)
	modified := padRight(item.Replay.ModTime.Format("2006-01-02 15:04"), 20)
	return rowStyle.Render(cursor+name+modified) + status
}

func (v BrowserView) renderEmpty() string {
	msgStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Align(lipgloss.Center)
	keyStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)

	headline := "No replays found"
	if v.err != "" {
		headline = v.err
	}
	msg := lipgloss.JoinVertical(lipgloss.Center,
		"",
		msgStyle.Render(headline),
		"",
		msgStyle.Render("Check replay_dirs in the config file,"),
		msgStyle.Render(fmt.Sprintf("then press %s to rescan", keyStyle.Render("[r]"))),
		"",
	)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}
