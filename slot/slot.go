// Package slot binds a taskrunner.SlotRunner to a host lifecycle
// expressed as a channel of task submissions: each value received is
// submitted to the runner, and closing the channel retires the runner.
package slot

import (
	"sync"

	"github.com/huangjunwen/seqrunner/taskrunner"
)

// Binding forwards a host's task feed to a SlotRunner.
type Binding struct {
	runner taskrunner.SlotRunner
	wg     sync.WaitGroup
}

// Bind starts a go routine submitting every task received from tasks to
// runner, in arrival order. When tasks is closed, a final Shutdown is
// delivered and the go routine exits. The caller keeps ownership of the
// runner and may still call Submit/Shutdown on it directly.
func Bind(runner taskrunner.SlotRunner, tasks <-chan taskrunner.Task) *Binding {
	b := &Binding{runner: runner}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for task := range tasks {
			runner.Submit(task)
		}
		runner.Shutdown()
	}()
	return b
}

// Runner returns the bound runner.
func (b *Binding) Runner() taskrunner.SlotRunner {
	return b.runner
}

// Wait blocks until the task feed is closed and the final Shutdown has
// been delivered. It does not wait for the runner to drain: the runner's
// own guarantees cover that.
func (b *Binding) Wait() {
	b.wg.Wait()
}
