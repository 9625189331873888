// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mem declares the memory-map collaborators of the move model: the
// block catalog, the owning program with its transaction and exclusive-lock
// primitives, and the block abstraction itself.
package mem

import (
	"context"

	"github.com/hexwell/memmove/address"
	"github.com/hexwell/memmove/settings"
)

// Block is a named contiguous region within a single address space. Blocks
// belonging to one memory never overlap, except overlay blocks, which are
// read-only views over addresses owned elsewhere and are never relocatable.
type Block interface {
	// Name returns the block's name. Names are not necessarily unique.
	Name() string
	// Range returns the block's current address range.
	Range() address.Range
	// IsOverlay reports whether the block is an overlay view rather than
	// owned storage.
	IsOverlay() bool
}

// Memory is the block catalog of a program.
type Memory interface {
	// Blocks returns every block in the memory, overlays included.
	Blocks() []Block

	// BlockAt returns the non-overlay block containing the address.
	BlockAt(addr address.Address) (Block, bool)

	// MoveBlock atomically relocates a block's storage so that it starts at
	// newStart, preserving its length in addressable units. This is the
	// authoritative placement check: it fails with ErrBlockOverlap if the
	// target range intersects any other non-overlay block, with
	// address.ErrPastSpaceEnd if the target range does not fit the space,
	// and with ErrOverlayBlock for overlay blocks. On failure nothing is
	// modified.
	MoveBlock(ctx context.Context, b Block, newStart address.Address) error
}

// Transaction wraps a unit of program mutation with commit-or-rollback
// semantics. Exactly one of Commit or Rollback must be called.
type Transaction interface {
	Commit() error
	Rollback() error
}

// Program is the owning container of a memory map and its settings.
type Program interface {
	// Memory returns the program's block catalog.
	Memory() Memory

	// Settings returns the program's per-address metadata store.
	Settings() settings.Store

	// Space resolves an address space by name.
	Space(name string) (*address.Space, bool)

	// Begin opens a transaction covering blocks, storage, and settings.
	Begin(name string) (Transaction, error)

	// Lock acquires exclusive write access to the program, blocking until
	// it is available or the context is done.
	Lock(ctx context.Context) error

	// Unlock releases exclusive write access.
	Unlock()

	// CanLock reports, without blocking, whether exclusive access could be
	// acquired right now.
	CanLock() bool
}
