package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tonhe/replaylens/internal/analysis"
	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/internal/dataset"
	"github.com/tonhe/replaylens/internal/overlay"
	"github.com/tonhe/replaylens/internal/session"
	"github.com/tonhe/replaylens/internal/storage"
	"github.com/tonhe/replaylens/tui/components"
	"github.com/tonhe/replaylens/tui/keys"
	"github.com/tonhe/replaylens/tui/styles"
	"github.com/tonhe/replaylens/tui/views"
)

// AppState represents the current screen of the application.
type AppState int

const (
	StateBrowser AppState = iota
	StateReplay
	StateSettings
	StateSetup
)

// seekSeconds is how far left/right jump in the replay.
const seekSeconds = 5

// TickMsg advances the replay clock and the session lifecycle.
type TickMsg time.Time

// datasetLoadedMsg carries a parsed analysis back to Update, which stores
// it only if it still belongs to the open replay and the latest request.
type datasetLoadedMsg struct {
	replayID string
	gen      int
	ds       *dataset.Dataset
	err      error
}

type analysisResultMsg analysis.Result

type analysisChangeMsg struct {
	change analysis.Change
	ch     <-chan analysis.Change
}

// Options carries everything the app needs from the command line.
type Options struct {
	Config     *config.Config
	ConfigPath string
	PresetsDir string
	Manager    *analysis.Manager
	Holder     *dataset.Holder
	// Catalog is optional; when set, deleting an analysis drops its runs.
	Catalog *storage.DB
	Version string
	// Replay opens this replay id at start instead of the replay list.
	Replay string
	// Frames is the replay length in frames, zero when unknown.
	Frames int
}

// AppModel is the root Bubble Tea model that manages all views and state.
type AppModel struct {
	state     AppState
	prevState AppState
	theme     styles.Theme
	km        keys.KeyMap
	opts      Options
	cfg       *config.Config
	mgr       *analysis.Manager
	holder    *dataset.Holder

	ctx     context.Context
	cancel  context.CancelFunc
	results <-chan analysis.Result
	watcher *analysis.Watcher

	session  *session.State
	clock    *session.Clock
	replay   analysis.Replay
	inReplay bool
	lastTick time.Time
	// loadGen identifies the latest dataset load; older results are dropped.
	loadGen int

	browser  views.BrowserView
	screen   views.ReplayView
	window   views.AnalysisWindow
	settings views.SettingsView
	setup    views.SetupView
	help     views.HelpView

	message string
	failed  bool
	width   int
	height  int
}

// NewAppModel creates the app. The manager's results are consumed by the
// app from here on.
func NewAppModel(opts Options) AppModel {
	cfg := opts.Config
	if opts.Holder == nil {
		opts.Holder = &dataset.Holder{}
	}
	theme := styles.Resolve(cfg.Theme)
	ctx, cancel := context.WithCancel(context.Background())

	m := AppModel{
		state:   StateBrowser,
		theme:   theme,
		km:      keys.New(cfg.Keys.Settings, cfg.Keys.Analysis),
		opts:    opts,
		cfg:     cfg,
		mgr:     opts.Manager,
		holder:  opts.Holder,
		ctx:     ctx,
		cancel:  cancel,
		results: opts.Manager.Subscribe(),
		session: session.NewState(),
		clock:   session.NewClock(opts.Frames, session.DefaultFPS),
	}
	m.applyTheme(theme)
	m.startWatcher()

	if opts.Replay != "" {
		path, _ := analysis.FindReplay(cfg.ReplayDirs, opts.Replay)
		m.openReplay(analysis.Replay{ID: opts.Replay, Path: path})
	}
	return m
}

func (m *AppModel) applyTheme(theme styles.Theme) {
	m.theme = theme
	m.browser = views.NewBrowserView(theme)
	m.screen = views.NewReplayView(theme)
	visible := m.window.IsVisible()
	m.window = views.NewAnalysisWindow(theme)
	if visible {
		m.window.Open()
	}
	m.help = views.NewHelpView(theme, m.cfg.Keys.Settings, m.cfg.Keys.Analysis)
	m.browser.Refresh(m.cfg.ReplayDirs, m.mgr.Models(), m.cfg.Model)
	m.relayout()
}

// startWatcher follows the current model's analysis folder, replacing any
// previous watcher.
func (m *AppModel) startWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	w, err := analysis.NewWatcher(m.mgr.Models().AnalysisDir(m.cfg.Model))
	if err != nil {
		log.WithError(err).Warn("analysis folder not watched")
		return
	}
	m.watcher = w
	go w.Run(m.ctx)
}

// Init starts the tick loop and the result and file listeners.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), waitForResult(m.results)}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher.Changes()))
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/session.DefaultFPS, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForResult(ch <-chan analysis.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return analysisResultMsg(res)
	}
}

func waitForChange(ch <-chan analysis.Change) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return analysisChangeMsg{change: c, ch: ch}
	}
}

// loadDataset reads the open replay's analysis off the UI goroutine.
func (m AppModel) loadDataset() tea.Cmd {
	id := m.replay.ID
	path := m.mgr.Models().AnalysisPath(m.cfg.Model, id)
	header := m.cfg.CSVHeader
	gen := m.loadGen
	return func() tea.Msg {
		ds, err := dataset.ParseFile(path, header)
		return datasetLoadedMsg{replayID: id, gen: gen, ds: ds, err: err}
	}
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case TickMsg:
		return m.tick(time.Time(msg))

	case datasetLoadedMsg:
		if !m.inReplay || msg.replayID != m.replay.ID || msg.gen != m.loadGen {
			return m, nil
		}
		if msg.err != nil {
			m.holder.Clear()
		} else {
			m.holder.Store(msg.ds)
		}
		m.session.MarkLoaded(msg.err == nil)
		entry := log.WithFields(log.Fields{"replay": msg.replayID, "model": m.cfg.Model})
		switch {
		case msg.err == nil:
			if m.opts.Frames == 0 {
				m.clock.SetTotal(msg.ds.Frames())
			}
			entry.Info("analysis loaded")
		case errors.Is(msg.err, dataset.ErrNoDataset):
			entry.Debug("no analysis for replay")
		default:
			entry.WithError(msg.err).Warn("analysis unreadable")
			m.flash("analysis unreadable: "+msg.err.Error(), true)
		}
		return m, nil

	case analysisResultMsg:
		res := analysis.Result(msg)
		if res.OK() {
			m.flash("analysis ready for "+res.ReplayID, false)
			if m.inReplay && res.ReplayID == m.replay.ID && res.Model == m.cfg.Model {
				m.holder.Clear()
				m.session.RequestReload()
			}
		} else {
			m.flash(res.Reason(), true)
		}
		m.browser.Refresh(m.cfg.ReplayDirs, m.mgr.Models(), m.cfg.Model)
		return m, waitForResult(m.results)

	case analysisChangeMsg:
		if m.watcher == nil || msg.ch != m.watcher.Changes() {
			return m, nil
		}
		// The applet writes the file in pieces; the job result triggers the
		// reload once it is complete.
		if m.inReplay && msg.change.ReplayID == m.replay.ID && !m.mgr.Busy() {
			if msg.change.Removed {
				m.holder.Clear()
			}
			m.session.RequestReload()
		}
		return m, waitForChange(msg.ch)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) tick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.clock.Advance(now.Sub(m.lastTick))
	}
	m.lastTick = now

	cmds := []tea.Cmd{tickCmd()}
	acts := m.session.Tick(m.inReplay, m.window.IsVisible(), m.cfg.Overlay.OpenWindowOnReplay)
	if acts.LoadDataset {
		m.loadGen++
		cmds = append(cmds, m.loadDataset())
	}
	if acts.OpenWindow {
		m.window.Open()
		m.relayout()
	}
	if acts.CloseWindow {
		m.window.Close()
		m.relayout()
	}
	return m, tea.Batch(cmds...)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.help.IsVisible() {
		if key.Matches(msg, m.km.Help) || key.Matches(msg, m.km.Escape) {
			m.help.Toggle()
		}
		return m, nil
	}

	switch m.state {
	case StateSettings:
		var cmd tea.Cmd
		var action views.SettingsAction
		m.settings, cmd, action = m.settings.Update(msg)
		switch action {
		case views.SettingsClose:
			m.state = m.prevState
		case views.SettingsSaved:
			m.km = keys.New(m.cfg.Keys.Settings, m.cfg.Keys.Analysis)
			m.applyTheme(styles.Resolve(m.settings.SavedTheme))
			m.flash("settings saved", false)
			m.state = m.prevState
		}
		return m, cmd

	case StateSetup:
		var action views.SetupAction
		prevModel := m.cfg.Model
		m.setup, _, action = m.setup.Update(msg)
		switch action {
		case views.SetupClose:
			m.state = m.prevState
		case views.SetupReady:
			m.flash("using model "+m.cfg.Model, false)
			if m.cfg.Model != prevModel {
				m.switchedModel()
			}
			m.state = m.prevState
			if m.watcher != nil && m.cfg.Model != prevModel {
				return m, waitForChange(m.watcher.Changes())
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.km.Quit):
		return m.quit()
	case key.Matches(msg, m.km.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.km.Settings):
		m.openSettings()
		return m, nil
	case key.Matches(msg, m.km.Models):
		m.openSetup()
		return m, nil
	}

	if m.state == StateBrowser {
		var action views.BrowserAction
		m.browser, _, action = m.browser.Update(msg)
		switch action {
		case views.BrowserOpen:
			if item := m.browser.SelectedItem(); item != nil {
				m.openReplay(item.Replay)
			}
		case views.BrowserRefresh:
			m.browser.Refresh(m.cfg.ReplayDirs, m.mgr.Models(), m.cfg.Model)
		}
		return m, nil
	}

	fps := m.clock.FPS()
	switch {
	case key.Matches(msg, m.km.Escape):
		m.closeReplay()
	case key.Matches(msg, m.km.Play):
		m.clock.Toggle()
	case key.Matches(msg, m.km.SeekBack):
		m.clock.Step(-seekSeconds * fps)
	case key.Matches(msg, m.km.SeekForward):
		m.clock.Step(seekSeconds * fps)
	case key.Matches(msg, m.km.StepBack):
		m.clock.Step(-1)
	case key.Matches(msg, m.km.StepForward):
		m.clock.Step(1)
	case key.Matches(msg, m.km.Start):
		m.clock.Seek(0)
	case key.Matches(msg, m.km.End):
		if m.clock.Total() > 0 {
			m.clock.Seek(m.clock.Total() - 1)
		}
	case key.Matches(msg, m.km.Analyze):
		m.analyze()
	case key.Matches(msg, m.km.Window):
		m.window.Toggle()
		m.relayout()
	case key.Matches(msg, m.km.Overlay):
		m.cfg.Overlay.Enabled = !m.cfg.Overlay.Enabled
		m.persist()
	case key.Matches(msg, m.km.Delete):
		m.deleteAnalysis()
	}
	return m, nil
}

func (m *AppModel) openReplay(r analysis.Replay) {
	log.WithFields(log.Fields{"replay": r.ID, "path": r.Path}).Info("opening replay")
	m.replay = r
	m.inReplay = true
	m.holder.Clear()
	m.session.RequestReload()
	m.loadGen++
	m.clock = session.NewClock(m.opts.Frames, session.DefaultFPS)
	m.state = StateReplay
	m.message = ""
}

func (m *AppModel) closeReplay() {
	m.inReplay = false
	m.state = StateBrowser
	m.browser.Refresh(m.cfg.ReplayDirs, m.mgr.Models(), m.cfg.Model)
}

func (m *AppModel) openSettings() {
	m.prevState = m.state
	m.settings = views.NewSettingsView(m.theme, m.cfg, m.opts.ConfigPath, m.opts.PresetsDir)
	m.settings.SetSize(m.width, m.bodyHeight())
	m.state = StateSettings
}

func (m *AppModel) openSetup() {
	m.prevState = m.state
	m.setup = views.NewSetupView(m.theme, m.cfg, m.opts.ConfigPath, m.mgr.Models())
	m.setup.SetSize(m.width, m.bodyHeight())
	m.state = StateSetup
}

// switchedModel drops everything tied to the previous model.
func (m *AppModel) switchedModel() {
	m.holder.Clear()
	m.session.RequestReload()
	m.startWatcher()
	m.browser.Refresh(m.cfg.ReplayDirs, m.mgr.Models(), m.cfg.Model)
}

func (m *AppModel) analyze() {
	if !m.cfg.ModelReady {
		m.openSetup()
		return
	}
	err := m.mgr.Generate(m.ctx, analysis.Request{
		Model:      m.cfg.Model,
		ReplayID:   m.replay.ID,
		ReplayDirs: m.cfg.ReplayDirs,
	})
	switch {
	case errors.Is(err, analysis.ErrBusy):
		m.flash("analysis already running", true)
	case err != nil:
		m.flash(err.Error(), true)
	default:
		m.flash("", false)
	}
}

func (m *AppModel) deleteAnalysis() {
	deleted, err := m.mgr.Models().DeleteAnalysis(m.cfg.Model, m.replay.ID)
	if err != nil {
		m.flash(err.Error(), true)
		return
	}
	if m.opts.Catalog != nil {
		if _, err := m.opts.Catalog.DeleteRuns(m.cfg.Model, m.replay.ID); err != nil {
			log.WithError(err).Warn("dropping catalog runs")
		}
	}
	m.holder.Clear()
	m.session.RequestReload()
	if deleted {
		m.flash("analysis deleted", false)
	} else {
		m.flash("no analysis to delete", false)
	}
}

// persist saves session-level toggles; failures are only logged.
func (m *AppModel) persist() {
	if err := config.SaveConfig(m.cfg, m.opts.ConfigPath); err != nil {
		log.WithError(err).Warn("saving config")
	}
}

func (m *AppModel) flash(msg string, failed bool) {
	m.message = msg
	m.failed = failed
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.mgr.Wait()
	return m, tea.Quit
}

// bodyHeight is the space between the header and the two status lines.
func (m AppModel) bodyHeight() int {
	return max(m.height-3, 1)
}

// relayout sizes the views; the analysis window takes a side panel.
func (m *AppModel) relayout() {
	if m.width == 0 {
		return
	}
	h := m.bodyHeight()
	m.browser.SetSize(m.width, h)
	m.settings.SetSize(m.width, h)
	m.setup.SetSize(m.width, h)
	m.help.SetSize(m.width, h)

	screenW := m.width
	if m.window.IsVisible() {
		panel := min(max(m.width*2/5, 44), m.width-20)
		if panel > 0 {
			screenW = m.width - panel
			m.window.SetSize(panel, h)
		}
	}
	m.screen.SetSize(screenW, h)
}

func (m AppModel) scene() overlay.Scene {
	var eval overlay.Series
	if ds, ok := m.holder.Current(); ok {
		eval = ds.Column(dataset.ColumnWinProbability)
	}
	return overlay.Scene{
		Series:   eval,
		Playhead: m.clock.Playhead(),
		Config:   m.cfg.Display(),
		Status:   overlay.Status{InReplay: m.session.InReplay, Busy: m.mgr.Busy()},
		Keys:     m.cfg.OverlayKeys(),
	}
}

func (m AppModel) windowData() views.WindowData {
	d := views.WindowData{
		ReplayID: m.replay.ID,
		Playhead: m.clock.Playhead(),
		Options:  m.cfg.Display().ChartOptions(),
	}
	if ds, ok := m.holder.Current(); ok {
		d.Loaded = true
		d.Eval = ds.Column(dataset.ColumnWinProbability)
		d.Imminence = ds.Column(dataset.ColumnGoalImminence)
	}
	return d
}

// View renders the full application UI by composing header, body, and status.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := components.RenderHeader(m.theme, components.HeaderInfo{
		ReplayID:   m.replay.ID,
		InReplay:   m.inReplay,
		Loaded:     m.holder.IsLoaded(),
		Model:      m.cfg.Model,
		ModelReady: m.cfg.ModelReady,
		Version:    m.opts.Version,
	}, m.width)

	var body string
	switch {
	case m.help.IsVisible():
		body = m.help.View()
	case m.state == StateSettings:
		body = m.settings.View()
	case m.state == StateSetup:
		body = m.setup.View()
	case m.state == StateReplay:
		body = m.screen.View(m.scene())
		if m.window.IsVisible() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.window.View(m.windowData()))
		}
	default:
		body = m.browser.View()
	}

	status := components.StatusInfo{
		Frame:   m.clock.Frame(),
		Total:   m.clock.Total(),
		Elapsed: m.clock.Elapsed(),
		Playing: m.clock.Playing(),
		Busy:    m.mgr.Busy(),
		Message: m.message,
		Failed:  m.failed,
	}
	statusBar := components.RenderStatusBar(m.theme, status, m.hints(), m.width)

	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.bodyHeight()).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}

func (m AppModel) hints() []components.KeyHint {
	hint := func(b key.Binding) components.KeyHint {
		h := b.Help()
		return components.KeyHint{Key: h.Key, Desc: h.Desc}
	}
	switch m.state {
	case StateReplay:
		return []components.KeyHint{
			hint(m.km.Play), hint(m.km.SeekForward), hint(m.km.Analyze),
			hint(m.km.Window), hint(m.km.Settings), hint(m.km.Delete),
			{Key: "esc", Desc: "close replay"}, hint(m.km.Help), hint(m.km.Quit),
		}
	case StateSettings, StateSetup:
		return []components.KeyHint{
			{Key: "enter", Desc: "save"}, {Key: "esc", Desc: "cancel"},
		}
	default:
		return []components.KeyHint{
			{Key: "enter", Desc: "open replay"}, {Key: "r", Desc: "rescan"},
			hint(m.km.Models), hint(m.km.Settings), hint(m.km.Help), hint(m.km.Quit),
		}
	}
}
