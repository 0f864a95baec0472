// Package session tracks the replay the host is showing: whether a replay is
// open, whether its analysis is loaded, and where the playhead is.
package session

// State holds the replay lifecycle flags. The host owns it and passes it by
// reference; the overlay never reads it directly.
type State struct {
	InReplay     bool
	WasInReplay  bool
	ReplayLoaded bool
	// LoadPending is set when the next tick inside a replay should try to
	// load its analysis.
	LoadPending bool
}

// NewState returns the state of a host outside any replay.
func NewState() *State {
	return &State{LoadPending: true}
}

// Actions are the side effects a tick asks the host to perform.
type Actions struct {
	LoadDataset bool
	OpenWindow  bool
	CloseWindow bool
}

// Tick advances the lifecycle by one host tick. inReplay is whether a
// replay is open now, windowOpen whether the analysis window is showing and
// openOnReplay the user's auto-open setting. The dataset load is requested
// once per replay; the window opens only on the tick the replay is entered.
func (s *State) Tick(inReplay, windowOpen, openOnReplay bool) Actions {
	var a Actions
	justEntered := inReplay && !s.WasInReplay
	s.WasInReplay = inReplay

	if !inReplay {
		s.InReplay = false
		s.ReplayLoaded = false
		s.LoadPending = true
		a.CloseWindow = windowOpen
		return a
	}

	s.InReplay = true
	if !s.ReplayLoaded && s.LoadPending {
		a.LoadDataset = true
		s.LoadPending = false
	}
	if justEntered && openOnReplay && !windowOpen {
		a.OpenWindow = true
	}
	return a
}

// MarkLoaded records the outcome of a dataset load.
func (s *State) MarkLoaded(ok bool) {
	s.ReplayLoaded = ok
}

// RequestReload drops the loaded flag so the next tick loads again. Used
// after regeneration, deletion or a model switch.
func (s *State) RequestReload() {
	s.ReplayLoaded = false
	s.LoadPending = true
}
