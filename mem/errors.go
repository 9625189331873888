// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import "errors"

var (
	// ErrBlockOverlap indicates that a block placement would overlap an
	// existing non-overlay block.
	ErrBlockOverlap = errors.New("block overlaps an existing block")
	// ErrBlockNotFound indicates that a block does not belong to the memory
	// it was used with.
	ErrBlockNotFound = errors.New("block not found")
	// ErrOverlayBlock indicates an attempt to relocate an overlay block.
	ErrOverlayBlock = errors.New("overlay blocks cannot be moved")
	// ErrSpaceNotFound indicates that no address space has the given name.
	ErrSpaceNotFound = errors.New("address space not found")
	// ErrTransactionOpen indicates that a transaction is already open.
	ErrTransactionOpen = errors.New("another transaction is already open")
	// ErrTransactionDone indicates a commit or rollback of a finished
	// transaction.
	ErrTransactionDone = errors.New("transaction already committed or rolled back")
)
