package slotrunner

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/huangjunwen/seqrunner/logr"
	"github.com/huangjunwen/seqrunner/logr/zerologr"
	"github.com/huangjunwen/seqrunner/taskrunner"
)

var (
	defaultZerolog = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// DefaultLogger is used when no Logger option is given. It reports
	// failures to the process' standard error stream.
	DefaultLogger logr.Logger = (*zerologr.Logger)(&defaultZerolog)
)

var (
	_ taskrunner.SlotRunner = (*SlotRunner)(nil)
)

// SlotRunner implements taskrunner.SlotRunner. The zero value is not
// usable, use New/Must.
//
// Submit and Shutdown only write flags under the mutex and start the
// driver loop goroutine if none is running; they never execute task code
// themselves. The loop alternates between draining the settled task's
// cleanup and starting the most recently submitted task, until neither a
// pending task nor a pending shutdown is left.
type SlotRunner struct {
	id     string
	logger logr.Logger

	mu          sync.Mutex
	pendingTask taskrunner.Task    // most recently submitted task, not yet started
	shutdown    bool               // shutdown requested, not yet serviced
	cleanup     taskrunner.Cleanup // the settled task's cleanup, not yet started
	loopRunning bool               // at most one loop goroutine at any time
}

// Must creates a SlotRunner or panic.
func Must(opts ...Option) *SlotRunner {
	ret, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

// New creates a new SlotRunner.
func New(opts ...Option) (*SlotRunner, error) {
	r := &SlotRunner{}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.id == "" {
		r.id = uuid.NewV4().String()
	}
	if r.logger == nil {
		r.logger = DefaultLogger
	}
	r.logger = r.logger.WithValues("runner_id", r.id)

	return r, nil
}

// Id returns the runner's identifier.
func (r *SlotRunner) Id() string {
	return r.id
}

// Submit implements taskrunner.SlotRunner interface. It records task as
// the pending task, superseding any not-yet-started task and clearing any
// pending shutdown, then returns immediately.
func (r *SlotRunner) Submit(task taskrunner.Task) {
	if task == nil {
		panic(fmt.Errorf("SlotRunner.Submit(nil)"))
	}

	r.mu.Lock()
	r.pendingTask = task
	r.shutdown = false
	r.ensureLoopLocked()
	r.mu.Unlock()
}

// Shutdown implements taskrunner.SlotRunner interface. It discards the
// pending task (if any), requests the settled task's cleanup to be
// drained, then returns immediately.
func (r *SlotRunner) Shutdown() {
	r.mu.Lock()
	r.pendingTask = nil
	r.shutdown = true
	r.ensureLoopLocked()
	r.mu.Unlock()
}

// ensureLoopLocked starts the driver loop goroutine unless one is already
// running. Must be called with mu held.
func (r *SlotRunner) ensureLoopLocked() {
	if r.loopRunning {
		return
	}
	r.loopRunning = true
	go r.loop()
}

// loop is the driver loop. Exactly one instance runs at any time
// (guarded by loopRunning). It suspends only inside task/cleanup bodies,
// never while holding the mutex, and re-reads pending state after every
// such suspension.
func (r *SlotRunner) loop() {
	for {
		r.mu.Lock()
		if r.pendingTask == nil && !r.shutdown {
			// Idle. A cleanup left by the settled task stays stored: it
			// is drained by whichever Submit/Shutdown arrives next.
			r.loopRunning = false
			r.mu.Unlock()
			return
		}
		cleanup := r.cleanup
		r.cleanup = nil
		r.mu.Unlock()

		// Cleanup phase: the settled task's cleanup runs to completion
		// before anything newer starts. Failure never blocks progress.
		if cleanup != nil {
			if err := invokeCleanup(cleanup); err != nil {
				r.logger.Error(err, "cleanup failed")
			}
		}

		// Take the latest request only now: a Submit that landed while
		// the cleanup above was running supersedes anything older, so an
		// earlier snapshot would start a stale task.
		r.mu.Lock()
		task := r.pendingTask
		shutdown := r.shutdown
		r.pendingTask = nil
		r.shutdown = false
		r.mu.Unlock()

		// Shutdown skips the setup phase. Re-check from the top: a task
		// submitted during the cleanup above has cleared the shutdown
		// flag already and still runs.
		if shutdown || task == nil {
			continue
		}

		cleanup, err := invokeTask(task)
		if err != nil {
			// Setup failure: the task acquired nothing, register no
			// cleanup for it.
			r.logger.Error(err, "task failed")
			continue
		}
		if cleanup == nil {
			continue
		}

		r.mu.Lock()
		r.cleanup = cleanup
		r.mu.Unlock()
	}
}

// invokeTask runs a task's setup, converting a panic to a setup failure.
func invokeTask(task taskrunner.Task) (cleanup taskrunner.Cleanup, err error) {
	defer func() {
		if v := recover(); v != nil {
			cleanup = nil
			err = errors.Errorf("task panic: %v", v)
		}
	}()
	return task()
}

// invokeCleanup runs a cleanup, converting a panic to a cleanup failure.
func invokeCleanup(cleanup taskrunner.Cleanup) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Errorf("cleanup panic: %v", v)
		}
	}()
	return cleanup()
}
