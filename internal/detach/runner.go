package detach

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Runner spawns tracked background tasks with panic and error isolation.
type Runner struct {
	logger   *zap.Logger
	wg       sync.WaitGroup
	failures atomic.Uint64
}

// NewRunner creates a [Runner] that logs task failures to the given logger.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Go runs fn on a new goroutine. The name labels log entries for the task.
// Go returns immediately; fn's error or panic is absorbed here.
func (r *Runner) Go(name string, fn func() error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.failures.Add(1)
				r.logger.Error("detached task panicked",
					zap.String("task", name),
					zap.Any("panic", rec),
				)
			}
		}()

		if err := fn(); err != nil {
			r.failures.Add(1)
			r.logger.Warn("detached task failed",
				zap.String("task", name),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until all spawned tasks have returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Failures returns the count of tasks that errored or panicked.
func (r *Runner) Failures() uint64 {
	return r.failures.Load()
}
