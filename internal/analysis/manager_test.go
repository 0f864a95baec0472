package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestManagerRunSuccess(t *testing.T) {
	m := Models{Root: t.TempDir()}
	installModel(t, m, "rl", scriptOK)
	mgr := NewManager(m, nil, 5, time.Minute)

	var seen []Result
	mgr.OnResult = func(r Result) { seen = append(seen, r) }

	res := mgr.Run(context.Background(), Request{Model: "rl", ReplayID: "R1"})
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
	if res.Path != m.AnalysisPath("rl", "R1") {
		t.Errorf("unexpected path %q", res.Path)
	}
	if res.Duration <= 0 {
		t.Error("expected a positive duration")
	}
	if len(seen) != 1 {
		t.Errorf("expected OnResult called once, got %d", len(seen))
	}
	if last, ok := mgr.Last(); !ok || last.ReplayID != "R1" {
		t.Errorf("expected R1 in history, got %+v", last)
	}
}

func TestManagerModelNotInstalled(t *testing.T) {
	mgr := NewManager(Models{Root: t.TempDir()}, nil, 5, 0)
	res := mgr.Run(context.Background(), Request{Model: "rl", ReplayID: "R1"})
	if !errors.Is(res.Err, ErrModelNotInstalled) {
		t.Errorf("expected ErrModelNotInstalled, got %v", res.Err)
	}
	if res.Reason() == "" {
		t.Error("expected a failure reason")
	}
}

func TestManagerGenerateBusy(t *testing.T) {
	m := Models{Root: t.TempDir()}
	installModel(t, m, "rl", scriptSlow)
	mgr := NewManager(m, nil, 5, time.Minute)
	results := mgr.Subscribe()

	if err := mgr.Generate(context.Background(), Request{Model: "rl", ReplayID: "R1"}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !mgr.Busy() {
		t.Error("expected busy while the job runs")
	}
	if err := mgr.Generate(context.Background(), Request{Model: "rl", ReplayID: "R2"}); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	select {
	case res := <-results:
		if !res.OK() || res.ReplayID != "R1" {
			t.Errorf("expected R1 success, got %+v", res)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for result")
	}
	mgr.Wait()
	if mgr.Busy() {
		t.Error("expected busy flag cleared after the job")
	}
}

func TestManagerHistoryBounded(t *testing.T) {
	mgr := NewManager(Models{Root: t.TempDir()}, nil, 2, 0)
	for _, id := range []string{"A", "B", "C"} {
		mgr.Run(context.Background(), Request{Model: "rl", ReplayID: id})
	}
	h := mgr.History()
	if len(h) != 2 {
		t.Fatalf("expected 2 results, got %d", len(h))
	}
	if h[0].ReplayID != "B" || h[1].ReplayID != "C" {
		t.Errorf("expected [B C], got [%s %s]", h[0].ReplayID, h[1].ReplayID)
	}
}
