// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package move

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/hexwell/memmove/address"
	"github.com/hexwell/memmove/mem"
	"github.com/hexwell/memmove/settings"
)

// Task executes one validated move proposal. It is built by Model.MakeTask,
// runs on its own goroutine once started, and produces exactly one terminal
// Outcome, delivered through the listener and through Wait. A Task is used
// once and discarded.
type Task struct {
	program  mem.Program
	log      logging.Logger
	listener Listener
	monitor  Monitor

	block    mem.Block
	original address.Range
	newStart address.Address

	launched  atomic.Bool
	completed atomic.Bool
	outcome   Outcome
	done      chan struct{}
}

// Start launches the move on a new goroutine. The caller does not block; it
// observes completion through the listener or Wait. Starting a task twice is
// a no-op.
func (t *Task) Start() {
	if !t.launched.CompareAndSwap(false, true) {
		return
	}
	go func() {
		t.complete(t.execute(context.Background()))
	}()
}

// Run executes the move on the calling goroutine and returns its outcome.
// The context bounds the exclusive-lock acquisition; cancellation of the
// move itself is the monitor's job.
func (t *Task) Run(ctx context.Context) Outcome {
	if !t.launched.CompareAndSwap(false, true) {
		<-t.done
		return t.outcome
	}
	t.complete(t.execute(ctx))
	return t.outcome
}

// Wait blocks until the task completes or the context is done.
func (t *Task) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	case <-t.done:
		return t.outcome, nil
	}
}

// complete records the terminal outcome and notifies the listener exactly
// once, regardless of which path produced it.
func (t *Task) complete(out Outcome) {
	if !t.completed.CompareAndSwap(false, true) {
		return
	}
	t.outcome = out
	close(t.done)

	if out.Succeeded {
		t.log.Info("block moved",
			zap.String("block", t.block.Name()),
			zap.Stringer("from", t.original),
			zap.Stringer("to", t.newStart),
		)
	} else {
		t.log.Warn("block move failed",
			zap.String("block", t.block.Name()),
			zap.String("reason", out.Message),
		)
	}
	if t.listener != nil {
		t.listener.MoveCompleted(out)
	}
}

func (t *Task) execute(ctx context.Context) Outcome {
	if t.block.IsOverlay() {
		return failure("overlay block %q is a view of other memory and cannot be moved", t.block.Name())
	}

	if err := t.program.Lock(ctx); err != nil {
		return failure("could not acquire exclusive access to the program: %v", err)
	}
	defer t.program.Unlock()

	store := t.program.Settings()
	entries, err := store.EntriesIn(t.original)
	if err != nil {
		return failure("could not enumerate settings in %s: %v", t.original, err)
	}

	tx, err := t.program.Begin("move block " + t.block.Name())
	if err != nil {
		return failure("could not start transaction: %v", err)
	}

	out := t.moveAndMigrate(ctx, store, entries)
	if !out.Succeeded {
		if rbErr := tx.Rollback(); rbErr != nil {
			t.log.Error("rollback failed",
				zap.String("block", t.block.Name()),
				zap.Error(rbErr),
			)
		}
		return out
	}
	if err := tx.Commit(); err != nil {
		return failure("could not commit move: %v", err)
	}
	return out
}

// moveAndMigrate performs the storage relocation and the settings migration
// under an open transaction. Any failure here is answered with a rollback by
// the caller, so the move is all-or-nothing across storage and metadata.
func (t *Task) moveAndMigrate(ctx context.Context, store settings.Store, entries []settings.Entry) Outcome {
	// One step for the storage move plus one per migrated entry.
	total := 1 + 2*len(entries)
	step := 0
	progress := func() {
		step++
		t.monitor.ReportProgress(float64(step) / float64(total))
	}

	if t.monitor.Cancelled() {
		return failure("move of block %q cancelled", t.block.Name())
	}
	if err := t.program.Memory().MoveBlock(ctx, t.block, t.newStart); err != nil {
		return failure("could not move block %q: %v", t.block.Name(), err)
	}
	progress()

	// Remove every captured entry before re-inserting any, so source and
	// destination ranges may overlap without clobbering unmigrated entries.
	for _, e := range entries {
		if t.monitor.Cancelled() {
			return failure("move of block %q cancelled", t.block.Name())
		}
		if err := store.Remove(e.Address, e.Key); err != nil {
			return failure("could not remove setting %q at %s: %v", e.Key, e.Address, err)
		}
		progress()
	}
	origStart := t.original.Start()
	for _, e := range entries {
		if t.monitor.Cancelled() {
			return failure("move of block %q cancelled", t.block.Name())
		}
		offset, err := e.Address.Diff(origStart)
		if err != nil {
			return failure("setting %q at %s is outside the moved range: %v", e.Key, e.Address, err)
		}
		target, err := t.newStart.Add(offset)
		if err != nil {
			return failure("could not relocate setting %q at %s: %v", e.Key, e.Address, err)
		}
		if err := store.Set(target, e.Key, e.Value); err != nil {
			return failure("could not write setting %q at %s: %v", e.Key, target, err)
		}
		progress()
	}

	t.monitor.ReportProgress(1)
	return Outcome{Succeeded: true}
}

func failure(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}
