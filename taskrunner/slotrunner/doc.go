// Package slotrunner implements taskrunner.SlotRunner: a single-slot
// sequential task runner.
//
// A runner owns one "slot". Each submitted task sets the slot up and may
// return a cleanup tearing it down again. The runner guarantees:
//
//   - At most one setup or cleanup body executes at any time.
//   - Cleanup of the settled task completes (success or failure) strictly
//     before the next task's setup starts.
//   - Latest wins: a submission supersedes any pending task that has not
//     started yet; superseded tasks never execute at all.
//   - Submit/Shutdown never block and never fail; task and cleanup
//     failures are reported through the runner's logger instead.
//
// As a state machine the slot moves between Idle, CleaningUp and
// SettingUp. There is no terminal state: Shutdown drains the slot and
// returns it to Idle, and a later Submit restarts it.
//
// There is no cancellation: a setup or cleanup that has started always
// runs to completion. "Latest wins" only prevents new overlapping starts.
package slotrunner
