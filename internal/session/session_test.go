package session

import "testing"

func TestTickEnteringReplay(t *testing.T) {
	s := NewState()

	a := s.Tick(true, false, true)
	if !a.LoadDataset || !a.OpenWindow || a.CloseWindow {
		t.Errorf("expected load and open on entry, got %+v", a)
	}
	if !s.InReplay || s.LoadPending {
		t.Errorf("unexpected state after entry %+v", s)
	}

	// The load is attempted once even when it found nothing.
	s.MarkLoaded(false)
	a = s.Tick(true, true, true)
	if a.LoadDataset || a.OpenWindow {
		t.Errorf("expected no repeated actions, got %+v", a)
	}
}

func TestTickOpenOnReplayDisabled(t *testing.T) {
	s := NewState()
	if a := s.Tick(true, false, false); a.OpenWindow {
		t.Error("window should not open when auto-open is off")
	}
}

func TestTickWindowAlreadyOpen(t *testing.T) {
	s := NewState()
	if a := s.Tick(true, true, true); a.OpenWindow {
		t.Error("window should not reopen when already showing")
	}
}

func TestTickLeavingReplay(t *testing.T) {
	s := NewState()
	s.Tick(true, false, true)
	s.MarkLoaded(true)

	a := s.Tick(false, true, true)
	if !a.CloseWindow {
		t.Error("expected window closed on exit")
	}
	if s.InReplay || s.ReplayLoaded || !s.LoadPending {
		t.Errorf("expected reset state after exit, got %+v", s)
	}

	a = s.Tick(true, false, true)
	if !a.LoadDataset || !a.OpenWindow {
		t.Errorf("expected fresh load and open on re-entry, got %+v", a)
	}
}

func TestRequestReload(t *testing.T) {
	s := NewState()
	s.Tick(true, false, false)
	s.MarkLoaded(true)

	s.RequestReload()
	if a := s.Tick(true, false, false); !a.LoadDataset {
		t.Error("expected load after reload request")
	}
}
