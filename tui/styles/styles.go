package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the themed lipgloss styles shared by the views.
type Styles struct {
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Footer      lipgloss.Style
	FooterKey   lipgloss.Style
	FooterDesc  lipgloss.Style

	// Lists
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableRowSel  lipgloss.Style
	TableCellDim lipgloss.Style

	// Job and install status
	StatusOK   lipgloss.Style
	StatusFail lipgloss.Style
	StatusBusy lipgloss.Style

	// Analysis readouts
	ReadoutLabel lipgloss.Style
	ReadoutValue lipgloss.Style
	TrailStyle   lipgloss.Style

	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style

	// Form
	FormLabel       lipgloss.Style
	FormInput       lipgloss.Style
	FormInputActive lipgloss.Style
	ToggleOn        lipgloss.Style
	ToggleOff       lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base01).
			Bold(true).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Base04).
			Background(theme.Base01).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		FooterDesc: lipgloss.NewStyle().
			Foreground(theme.Base04),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		TableRow: lipgloss.NewStyle().
			Foreground(theme.Base05),
		TableRowSel: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base02),
		TableCellDim: lipgloss.NewStyle().
			Foreground(theme.Base03),

		StatusOK: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		StatusFail: lipgloss.NewStyle().
			Foreground(theme.Base08),
		StatusBusy: lipgloss.NewStyle().
			Foreground(theme.Base0A),

		ReadoutLabel: lipgloss.NewStyle().
			Foreground(theme.Base04),
		ReadoutValue: lipgloss.NewStyle().
			Foreground(theme.Base06).
			Bold(true),
		TrailStyle: lipgloss.NewStyle().
			Foreground(theme.Base0C),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		FormLabel: lipgloss.NewStyle().
			Foreground(theme.Base04),
		FormInput: lipgloss.NewStyle().
			Foreground(theme.Base05),
		FormInputActive: lipgloss.NewStyle().
			Foreground(theme.Base06).
			Background(theme.Base02),
		ToggleOn: lipgloss.NewStyle().
			Foreground(theme.Base0B).
			Bold(true),
		ToggleOff: lipgloss.NewStyle().
			Foreground(theme.Base03),
	}
}
