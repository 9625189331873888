// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package move

// Outcome is the single terminal result of an executed move.
type Outcome struct {
	// Succeeded reports whether the block and its settings were relocated.
	Succeeded bool
	// Message explains a failure. It is non-empty whenever Succeeded is
	// false and empty on success.
	Message string
}

// Listener observes a move session. StateChanged fires after every mutation
// of the model's proposal, valid or not; the listener is expected to re-read
// the model. MoveCompleted fires exactly once per launched task and may be
// invoked from the task's goroutine.
type Listener interface {
	StateChanged()
	MoveCompleted(Outcome)
}

// Monitor lets a running task report progress and observe a cooperative
// cancellation request. A task checks Cancelled at least once per settings
// entry and before each irreversible step.
type Monitor interface {
	// ReportProgress receives the completed fraction of the move, in [0, 1].
	ReportProgress(fraction float64)
	// Cancelled reports whether the caller asked the task to abort.
	Cancelled() bool
}

// NopMonitor discards progress and never cancels.
type NopMonitor struct{}

func (NopMonitor) ReportProgress(float64) {}

func (NopMonitor) Cancelled() bool { return false }
