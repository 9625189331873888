// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package move implements the block-relocation model: a validator that keeps
// a caller's proposed new location for a memory block internally consistent
// and classifies it as executable or not, and a task that performs the
// validated move atomically under a cancellable, progress-reporting context.
package move

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/hexwell/memmove/address"
	"github.com/hexwell/memmove/mem"
)

// Model validates a proposed relocation of one block. It owns the proposal
// for the lifetime of a session: whenever one endpoint is set, the opposite
// endpoint is re-derived so that the block's length in addressable units is
// preserved. Validation never mutates the program.
//
// Model is not safe for concurrent use; it is driven by a single caller.
type Model struct {
	program  mem.Program
	log      logging.Logger
	listener Listener

	block    mem.Block
	original address.Range
	newStart address.Address
	newEnd   address.Address
	msg      string
}

// NewModel creates a model for moves within the given program.
func NewModel(program mem.Program, log logging.Logger) *Model {
	return &Model{program: program, log: log}
}

// SetListener registers the session's listener. A nil listener is allowed.
func (m *Model) SetListener(l Listener) {
	m.listener = l
}

// Initialize starts a move session for the block. The proposal starts as the
// identity move: new range equals the block's current range.
func (m *Model) Initialize(b mem.Block) {
	m.block = b
	m.original = b.Range()
	m.newStart = m.original.Start()
	m.newEnd = m.original.End()
	m.msg = ""
	m.stateChanged()
}

// Name returns the block's name.
func (m *Model) Name() string {
	return m.block.Name()
}

// StartAddress returns the block's current (pre-move) start address.
func (m *Model) StartAddress() address.Address {
	return m.original.Start()
}

// EndAddress returns the block's current (pre-move) end address.
func (m *Model) EndAddress() address.Address {
	return m.original.End()
}

// NewStartAddress returns the proposed start address.
func (m *Model) NewStartAddress() address.Address {
	return m.newStart
}

// NewEndAddress returns the proposed end address.
func (m *Model) NewEndAddress() address.Address {
	return m.newEnd
}

// Length returns the block's length in addressable units. Length is
// invariant across a move.
func (m *Model) Length() uint64 {
	return m.original.Length()
}

// LengthString renders the length for display, decimal and hex.
func (m *Model) LengthString() string {
	l := m.Length()
	return fmt.Sprintf("%d (0x%x)", l, l)
}

// Message returns the current validation error. An empty message means the
// proposal is executable.
func (m *Model) Message() string {
	return m.msg
}

// SetNewStart proposes a new start address and re-derives the end address.
// The address may lie in any space of the program; the block's length in
// addressable units is preserved in the target space. On failure the message
// is set and the previous valid endpoints are retained for display.
func (m *Model) SetNewStart(addr address.Address) {
	end, err := address.EndFor(addr, m.original.Length())
	if err != nil {
		m.msg = "end of range exceeds address space"
		m.stateChanged()
		return
	}
	m.newStart = addr
	m.newEnd = end
	m.msg = ""
	m.checkOverlap()
	m.stateChanged()
}

// SetNewEnd proposes a new end address and re-derives the start address.
func (m *Model) SetNewEnd(addr address.Address) {
	start, err := address.StartFor(addr, m.original.Length())
	if err != nil {
		m.msg = "start of range is below the address space minimum"
		m.stateChanged()
		return
	}
	m.newStart = start
	m.newEnd = addr
	m.msg = ""
	m.checkOverlap()
	m.stateChanged()
}

// checkOverlap eagerly flags collisions with sibling blocks. The task's
// MoveBlock call remains the authoritative check; the catalog may mutate
// between validation and execution.
func (m *Model) checkOverlap() {
	proposed, err := address.NewRange(m.newStart, m.newEnd)
	if err != nil {
		m.msg = err.Error()
		return
	}
	for _, b := range m.program.Memory().Blocks() {
		if b == m.block || b.IsOverlay() {
			continue
		}
		if proposed.Intersects(b.Range()) {
			m.msg = fmt.Sprintf("block would overlap block %q at %s", b.Name(), b.Range())
			return
		}
	}
}

// MakeTask builds the executor for the current proposal. Calling MakeTask
// while Message is non-empty is a caller error; the proposal is not
// re-validated here.
func (m *Model) MakeTask(monitor Monitor) *Task {
	if monitor == nil {
		monitor = NopMonitor{}
	}
	m.log.Debug("created move task",
		zap.String("block", m.block.Name()),
		zap.Stringer("from", m.original),
		zap.Stringer("to", m.newStart),
	)
	return &Task{
		program:  m.program,
		log:      m.log,
		listener: m.listener,
		monitor:  monitor,
		block:    m.block,
		original: m.original,
		newStart: m.newStart,
		done:     make(chan struct{}),
	}
}

func (m *Model) stateChanged() {
	if m.listener != nil {
		m.listener.StateChanged()
	}
}
