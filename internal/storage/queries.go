package storage

import (
	"database/sql"
	"time"

	"github.com/tonhe/replaylens/internal/analysis"
)

// Run is one recorded analysis attempt.
type Run struct {
	ID           int64
	ReplayID     string
	Model        string
	ReplayPath   string
	AnalysisPath string
	OK           bool
	Reason       string
	StartedAt    time.Time
	Duration     time.Duration
}

// RunFromResult converts a finished job into a catalog row.
func RunFromResult(r analysis.Result) Run {
	return Run{
		ReplayID:     r.ReplayID,
		Model:        r.Model,
		ReplayPath:   r.ReplayPath,
		AnalysisPath: r.Path,
		OK:           r.OK(),
		Reason:       r.Reason(),
		StartedAt:    r.Started,
		Duration:     r.Duration,
	}
}

// InsertRun stores a run and returns its id.
func (db *DB) InsertRun(r Run) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO runs(replay_id, model, replay_path, analysis_path, ok, reason, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ReplayID, r.Model, r.ReplayPath, r.AnalysisPath,
		boolInt(r.OK), r.Reason, r.StartedAt.UnixMilli(), r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const runColumns = `id, replay_id, model, replay_path, analysis_path, ok, reason, started_at, duration_ms`

// ListRuns returns the most recent runs, newest first. A limit of zero or
// less returns every run.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.Query(`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestRun returns the newest run for one replay under one model.
func (db *DB) LatestRun(model, replayID string) (*Run, error) {
	row := db.conn.QueryRow(`SELECT `+runColumns+` FROM runs
		WHERE model = ? AND replay_id = ? ORDER BY started_at DESC, id DESC LIMIT 1`, model, replayID)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRuns removes every run for one replay under one model and returns
// how many were removed.
func (db *DB) DeleteRuns(model, replayID string) (int64, error) {
	res, err := db.conn.Exec(`DELETE FROM runs WHERE model = ? AND replay_id = ?`, model, replayID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountRuns returns the number of successful and failed runs.
func (db *DB) CountRuns() (ok, failed int, err error) {
	err = db.conn.QueryRow(`
		SELECT COALESCE(SUM(ok), 0), COALESCE(SUM(1 - ok), 0) FROM runs`).Scan(&ok, &failed)
	return ok, failed, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var r Run
	var okInt int
	var startedMs, durMs int64
	if err := s.Scan(&r.ID, &r.ReplayID, &r.Model, &r.ReplayPath, &r.AnalysisPath,
		&okInt, &r.Reason, &startedMs, &durMs); err != nil {
		return Run{}, err
	}
	r.OK = okInt != 0
	r.StartedAt = time.UnixMilli(startedMs)
	r.Duration = time.Duration(durMs) * time.Millisecond
	return r, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
