package biodatajob

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	job "github.com/goliatone/go-job"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

const (
	DefaultAutosaveTaskID   = "biodata:autosave"
	DefaultAutosaveTaskPath = "biodata:autosave"

	// DefaultAutosaveInterval is used when the runner is started
	// without an explicit interval.
	DefaultAutosaveInterval = 30 * time.Second
)

// TaskConfig configures the autosave task.
type TaskConfig struct {
	ID             string
	Path           string
	Config         job.Config
	HandlerOptions job.HandlerOptions
	Service        *biodata.FormService
	Repository     biodata.FormRepository
	Logger         biodata.Logger
}

// AutosaveTask periodically persists the form snapshot. Unchanged
// snapshots are skipped so an idle session does not rewrite the slot.
type AutosaveTask struct {
	id             string
	path           string
	config         job.Config
	handlerOptions job.HandlerOptions
	service        *biodata.FormService
	repo           biodata.FormRepository
	logger         biodata.Logger

	mu        sync.Mutex
	lastSaved []byte
}

// NewAutosaveTask creates a new autosave task.
func NewAutosaveTask(cfg TaskConfig) *AutosaveTask {
	logger := cfg.Logger
	if logger == nil {
		logger = biodata.NopLogger{}
	}
	id := cfg.ID
	if id == "" {
		id = DefaultAutosaveTaskID
	}
	path := cfg.Path
	if path == "" {
		path = DefaultAutosaveTaskPath
	}
	return &AutosaveTask{
		id:             id,
		path:           path,
		config:         cfg.Config,
		handlerOptions: cfg.HandlerOptions,
		service:        cfg.Service,
		repo:           cfg.Repository,
		logger:         logger,
	}
}

// GetID returns the task identifier.
func (t *AutosaveTask) GetID() string { return t.id }

// GetHandler returns a handler for scheduler execution paths.
func (t *AutosaveTask) GetHandler() func() error {
	return func() error {
		if t == nil {
			return biodata.NewError(biodata.KindInternal, "task is nil", nil)
		}
		return t.Execute(context.Background())
	}
}

// GetHandlerConfig returns scheduler options for the task.
func (t *AutosaveTask) GetHandlerConfig() job.HandlerOptions { return t.handlerOptions }

// GetConfig returns task config defaults.
func (t *AutosaveTask) GetConfig() job.Config { return t.config }

// GetPath returns the task path.
func (t *AutosaveTask) GetPath() string { return t.path }

// GetEngine returns nil because this task is code-driven.
func (t *AutosaveTask) GetEngine() job.Engine { return nil }

// Execute persists the current form snapshot once.
func (t *AutosaveTask) Execute(ctx context.Context) error {
	if t == nil {
		return biodata.NewError(biodata.KindInternal, "task is nil", nil)
	}
	if t.service == nil || t.repo == nil {
		return biodata.NewError(biodata.KindNotImpl, "autosave service or repository not configured", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	snapshot := t.service.Snapshot()
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return biodata.NewError(biodata.KindInternal, "snapshot is not serializable", err)
	}

	t.mu.Lock()
	unchanged := t.lastSaved != nil && bytes.Equal(t.lastSaved, encoded)
	t.mu.Unlock()
	if unchanged {
		t.logger.Debugf("autosave skipped, snapshot unchanged")
		return nil
	}

	if err := t.repo.Save(ctx, snapshot); err != nil {
		return biodata.NewError(biodata.KindInternal, "autosave failed", err)
	}

	t.mu.Lock()
	t.lastSaved = encoded
	t.mu.Unlock()
	t.logger.Debugf("autosave persisted %d bytes", len(encoded))
	return nil
}

// Runner drives the autosave task on a fixed interval.
type Runner struct {
	task     *AutosaveTask
	interval time.Duration
	logger   biodata.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates an interval runner for the task.
func NewRunner(task *AutosaveTask, interval time.Duration, logger biodata.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	if logger == nil {
		logger = biodata.NopLogger{}
	}
	return &Runner{task: task, interval: interval, logger: logger}
}

// Start launches the autosave loop. A second call is a no-op until
// Stop is called.
func (r *Runner) Start(ctx context.Context) {
	if r == nil || r.task == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				if err := r.task.Execute(loopCtx); err != nil {
					r.logger.Errorf("autosave tick failed: %v", err)
				}
			}
		}
	}()
	r.logger.Infof("autosave running every %s", r.interval)
}

// Stop halts the loop and waits for the in-flight tick to finish.
func (r *Runner) Stop() {
	if r == nil {
		return
	}
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
