package analysis

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Manager runs at most one regeneration job at a time and publishes each
// Result to its subscribers.
type Manager struct {
	models  Models
	runner  *Runner
	timeout time.Duration

	busy atomic.Bool
	wg   sync.WaitGroup

	mu          sync.RWMutex
	subscribers []chan Result
	history     *history[Result]

	// OnResult, when set, is called with every result before subscribers
	// are notified.
	OnResult func(Result)
}

// NewManager creates a Manager. A zero timeout means jobs only end when the
// caller's context does.
func NewManager(models Models, runner *Runner, maxHistory int, timeout time.Duration) *Manager {
	if runner == nil {
		runner = &Runner{}
	}
	return &Manager{
		models:  models,
		runner:  runner,
		timeout: timeout,
		history: newHistory[Result](maxHistory),
	}
}

// Models returns the model layout the manager works on.
func (m *Manager) Models() Models { return m.models }

// Busy reports whether a job is running.
func (m *Manager) Busy() bool {
	return m.busy.Load()
}

// Generate starts a job in the background. It returns ErrBusy when another
// job is still running; otherwise the outcome arrives on Subscribe.
func (m *Manager) Generate(ctx context.Context, req Request) error {
	if !m.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		res := m.execute(ctx, req)
		m.busy.Store(false)
		m.publish(res)
	}()
	return nil
}

// Run executes a job synchronously, still honoring the busy flag.
func (m *Manager) Run(ctx context.Context, req Request) Result {
	if !m.busy.CompareAndSwap(false, true) {
		return Result{Model: req.Model, ReplayID: req.ReplayID, Err: ErrBusy}
	}
	res := m.execute(ctx, req)
	m.busy.Store(false)
	m.publish(res)
	return res
}

// Wait blocks until background jobs have finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) execute(ctx context.Context, req Request) (res Result) {
	res = Result{Model: req.Model, ReplayID: req.ReplayID, Started: time.Now()}
	defer func() { res.Duration = time.Since(res.Started) }()

	if err := validName(req.ReplayID); err != nil {
		res.Err = err
		return res
	}
	if _, err := m.models.Check(req.Model); err != nil {
		res.Err = err
		return res
	}

	replayPath, found := FindReplay(req.ReplayDirs, req.ReplayID)
	res.ReplayPath = replayPath
	if !found {
		log.WithField("replay", replayPath).Warn("replay file not found, passing default path")
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	out := m.models.AnalysisPath(req.Model, req.ReplayID)
	if err := m.runner.Run(ctx, m.models.AppletPath(req.Model), replayPath, out); err != nil {
		res.Err = errors.Wrapf(err, "analyzing %s", req.ReplayID)
		return res
	}
	res.Path = out
	return res
}

func (m *Manager) publish(res Result) {
	m.history.push(res)
	if m.OnResult != nil {
		m.OnResult(res)
	}

	entry := log.WithFields(log.Fields{"replay": res.ReplayID, "model": res.Model})
	if res.OK() {
		entry.Info("analysis finished")
	} else {
		entry.WithError(res.Err).Warn("analysis failed")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subscribers {
		select {
		case ch <- res:
		default:
		}
	}
}

// Subscribe returns a channel that receives every result. Slow readers miss
// results rather than stall the manager.
func (m *Manager) Subscribe() <-chan Result {
	ch := make(chan Result, 4)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// History returns recent results, oldest first.
func (m *Manager) History() []Result {
	return m.history.snapshot()
}

// Last returns the most recent result.
func (m *Manager) Last() (Result, bool) {
	return m.history.latest()
}
