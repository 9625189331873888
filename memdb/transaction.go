// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"github.com/hexwell/memmove/address"
	"github.com/hexwell/memmove/mem"
)

// transaction is a whole-program snapshot. Rollback restores block ranges,
// block storage, and every setting to their state at Begin. Only one
// transaction may be open at a time, matching the single-writer lock model.
type transaction struct {
	p    *Program
	name string
	snap *snapshot
	done bool
}

type snapshot struct {
	blocks   []blockState
	settings map[settingKey][]byte
}

type blockState struct {
	b    *Block
	rng  address.Range
	data []byte
}

// Begin opens a transaction covering blocks, storage, and settings.
func (p *Program) Begin(name string) (mem.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tx != nil {
		return nil, mem.ErrTransactionOpen
	}
	tx := &transaction{p: p, name: name, snap: p.snapshotLocked()}
	p.tx = tx
	return tx, nil
}

func (p *Program) snapshotLocked() *snapshot {
	snap := &snapshot{
		blocks:   make([]blockState, 0, len(p.blocks)),
		settings: p.settings.clone(),
	}
	for _, b := range p.blocks {
		data := make([]byte, len(b.data))
		copy(data, b.data)
		snap.blocks = append(snap.blocks, blockState{b: b, rng: b.rng, data: data})
	}
	return snap
}

// Commit keeps all changes made since Begin.
func (tx *transaction) Commit() error {
	tx.p.mu.Lock()
	defer tx.p.mu.Unlock()

	if tx.done {
		return mem.ErrTransactionDone
	}
	tx.done = true
	tx.p.tx = nil
	tx.snap = nil
	return nil
}

// Rollback restores the program to its state at Begin. Blocks created after
// Begin are removed.
func (tx *transaction) Rollback() error {
	tx.p.mu.Lock()
	defer tx.p.mu.Unlock()

	if tx.done {
		return mem.ErrTransactionDone
	}
	tx.done = true
	tx.p.tx = nil

	kept := make(map[*Block]bool, len(tx.snap.blocks))
	for _, st := range tx.snap.blocks {
		st.b.rng = st.rng
		st.b.data = st.data
		kept[st.b] = true
	}
	blocks := tx.p.blocks[:0]
	for _, b := range tx.p.blocks {
		if kept[b] {
			blocks = append(blocks, b)
		}
	}
	tx.p.blocks = blocks
	tx.p.settings.restore(tx.snap.settings)
	tx.snap = nil
	return nil
}
