// Package taskrunner defines the types and interface of the single-slot
// sequential task runner.
package taskrunner

// Cleanup releases whatever its task's setup acquired. A non-nil return
// is a cleanup failure; the cleanup is considered done either way and is
// never retried.
type Cleanup func() error

// Task sets up some resource and returns the Cleanup releasing it, or a
// nil Cleanup if there is nothing to release. A non-nil error is a setup
// failure: the task is treated as having acquired nothing, and any
// Cleanup returned alongside the error is ignored.
type Task func() (Cleanup, error)

// SlotRunner runs tasks sequentially in a single slot: at most one
// setup-then-cleanup cycle is active at once, a newer submission always
// supersedes an older one that has not yet started, and cleanup of the
// settled task completes strictly before the next task's setup begins.
type SlotRunner interface {
	// Submit records task as the pending task, superseding any pending
	// task or pending shutdown. The call must not block and never fails;
	// task and cleanup failures are reported asynchronously through the
	// runner's logger.
	Submit(task Task)

	// Shutdown discards the pending task (if any, without starting it),
	// drains the settled task's cleanup and lets the runner go idle.
	// The call must not block. The runner stays reusable: a later Submit
	// restarts it.
	Shutdown()
}
