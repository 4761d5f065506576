package slotrunner

import (
	"fmt"

	"github.com/huangjunwen/seqrunner/logr"
)

// Option is the option in creating SlotRunner.
type Option func(*SlotRunner) error

// Logger sets the logger to which task/cleanup failures are reported.
// Use logr.Nop to discard them. Default is DefaultLogger.
func Logger(logger logr.Logger) Option {
	return func(r *SlotRunner) error {
		if logger == nil {
			return fmt.Errorf("Logger is nil")
		}
		r.logger = logger
		return nil
	}
}

// Id sets the runner's identifier, attached as "runner_id" to every
// failure report. Default is a random uuid.
func Id(id string) Option {
	return func(r *SlotRunner) error {
		if id == "" {
			return fmt.Errorf("Id is empty")
		}
		r.id = id
		return nil
	}
}
