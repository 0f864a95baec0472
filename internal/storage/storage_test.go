package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/tonhe/replaylens/internal/analysis"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertAndLatest(t *testing.T) {
	db := openMemDB(t)
	base := time.UnixMilli(1_700_000_000_000)

	runs := []Run{
		{ReplayID: "R1", Model: "rl", OK: false, Reason: "boom", StartedAt: base},
		{ReplayID: "R1", Model: "rl", OK: true, AnalysisPath: "/a/R1.csv", StartedAt: base.Add(time.Minute), Duration: 1500 * time.Millisecond},
		{ReplayID: "R1", Model: "other", OK: true, StartedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if _, err := db.InsertRun(r); err != nil {
			t.Fatalf("InsertRun: %v", err)
		}
	}

	got, err := db.LatestRun("rl", "R1")
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if !got.OK || got.AnalysisPath != "/a/R1.csv" {
		t.Errorf("expected latest successful run, got %+v", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("expected duration 1.5s, got %v", got.Duration)
	}
	if !got.StartedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("expected start %v, got %v", base.Add(time.Minute), got.StartedAt)
	}
}

func TestLatestRunNotFound(t *testing.T) {
	db := openMemDB(t)
	if _, err := db.LatestRun("rl", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	db := openMemDB(t)
	base := time.UnixMilli(1_700_000_000_000)
	for i, id := range []string{"A", "B", "C"} {
		if _, err := db.InsertRun(Run{ReplayID: id, Model: "rl", OK: true, StartedAt: base.Add(time.Duration(i) * time.Second)}); err != nil {
			t.Fatalf("InsertRun: %v", err)
		}
	}

	all, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(all) != 3 || all[0].ReplayID != "C" || all[2].ReplayID != "A" {
		t.Errorf("expected [C B A], got %+v", all)
	}

	two, _ := db.ListRuns(2)
	if len(two) != 2 {
		t.Errorf("expected 2 runs with limit, got %d", len(two))
	}
}

func TestDeleteAndCount(t *testing.T) {
	db := openMemDB(t)
	now := time.Now()
	db.InsertRun(Run{ReplayID: "R1", Model: "rl", OK: true, StartedAt: now})
	db.InsertRun(Run{ReplayID: "R1", Model: "rl", OK: false, StartedAt: now})
	db.InsertRun(Run{ReplayID: "R2", Model: "rl", OK: false, StartedAt: now})

	ok, failed, err := db.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns: %v", err)
	}
	if ok != 1 || failed != 2 {
		t.Errorf("expected 1 ok 2 failed, got %d/%d", ok, failed)
	}

	n, err := db.DeleteRuns("rl", "R1")
	if err != nil || n != 2 {
		t.Errorf("expected 2 deleted, got %d err=%v", n, err)
	}
}

func TestRunFromResult(t *testing.T) {
	res := analysis.Result{
		Model:    "rl",
		ReplayID: "R1",
		Err:      errors.New("applet exited with code 2"),
		Started:  time.Now(),
	}
	r := RunFromResult(res)
	if r.OK || r.Reason != "applet exited with code 2" {
		t.Errorf("unexpected run %+v", r)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := db.InsertRun(Run{ReplayID: "R1", Model: "rl", StartedAt: time.Now()}); err != nil {
		t.Fatalf("InsertRun: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	runs, _ := db.ListRuns(0)
	if len(runs) != 1 {
		t.Errorf("expected run to persist, got %d", len(runs))
	}
}
