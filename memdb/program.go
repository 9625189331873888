// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memdb is an in-memory implementation of the mem collaborators: a
// program with named address spaces, blocks backed by owned byte storage,
// a borsh-encoded settings store, snapshot transactions, and a semaphore
// exclusive lock. It backs the move model's tests and serves as the
// reference backend for embedders without their own catalog.
package memdb

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/hexwell/memmove/address"
	"github.com/hexwell/memmove/mem"
	"github.com/hexwell/memmove/settings"
)

// Program is an in-memory mem.Program.
type Program struct {
	mu       sync.RWMutex
	name     string
	spaces   map[string]*address.Space
	blocks   []*Block
	settings *settingsStore
	sem      *semaphore.Weighted
	tx       *transaction
}

// Block is an in-memory mem.Block with owned storage.
type Block struct {
	p       *Program
	name    string
	rng     address.Range
	overlay bool
	data    []byte
}

// NewProgram creates an empty program.
func NewProgram(name string) *Program {
	return &Program{
		name:     name,
		spaces:   make(map[string]*address.Space),
		settings: newSettingsStore(),
		sem:      semaphore.NewWeighted(1),
	}
}

// Name returns the program's name.
func (p *Program) Name() string {
	return p.name
}

// AddSpace registers a new address space with the program.
func (p *Program) AddSpace(name string, minOffset, maxOffset uint64, unitBits int) (*address.Space, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.spaces[name]; ok {
		return nil, fmt.Errorf("space %q already exists", name)
	}
	s, err := address.NewSpace(name, minOffset, maxOffset, unitBits)
	if err != nil {
		return nil, err
	}
	p.spaces[name] = s
	return s, nil
}

// Space resolves an address space by name.
func (p *Program) Space(name string) (*address.Space, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok := p.spaces[name]
	return s, ok
}

// AddBlock creates a block with zero-filled storage covering the given range.
func (p *Program) AddBlock(name string, rng address.Range) (*Block, error) {
	return p.addBlock(name, rng, false)
}

// AddOverlay creates an overlay block over the given range. Overlays may
// share addresses with existing blocks and are never relocatable.
func (p *Program) AddOverlay(name string, rng address.Range) (*Block, error) {
	return p.addBlock(name, rng, true)
}

func (p *Program) addBlock(name string, rng address.Range, overlay bool) (*Block, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !overlay {
		for _, b := range p.blocks {
			if !b.overlay && b.rng.Intersects(rng) {
				return nil, fmt.Errorf("%w: %q at %s collides with %q at %s",
					mem.ErrBlockOverlap, name, rng, b.name, b.rng)
			}
		}
	}
	b := &Block{
		p:       p,
		name:    name,
		rng:     rng,
		overlay: overlay,
		data:    make([]byte, rng.Space().ByteLength(rng.Length())),
	}
	p.blocks = append(p.blocks, b)
	return b, nil
}

// Memory returns the program's block catalog.
func (p *Program) Memory() mem.Memory {
	return p
}

// Settings returns the program's per-address metadata store.
func (p *Program) Settings() settings.Store {
	return p.settings
}

// Blocks returns every block, overlays included.
func (p *Program) Blocks() []mem.Block {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]mem.Block, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b
	}
	return out
}

// BlockAt returns the non-overlay block containing the address.
func (p *Program) BlockAt(addr address.Address) (mem.Block, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, b := range p.blocks {
		if !b.overlay && b.rng.Contains(addr) {
			return b, true
		}
	}
	return nil, false
}

// MoveBlock relocates a block so that it starts at newStart. The length in
// addressable units is preserved; storage is resized when the target space
// has a different unit width.
func (p *Program) MoveBlock(ctx context.Context, blk mem.Block, newStart address.Address) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := blk.(*Block)
	if !ok || b.p != p {
		return mem.ErrBlockNotFound
	}
	if b.overlay {
		return fmt.Errorf("%w: %q", mem.ErrOverlayBlock, b.name)
	}

	newRange, err := address.RangeFrom(newStart, b.rng.Length())
	if err != nil {
		return err
	}
	for _, other := range p.blocks {
		if other == b || other.overlay {
			continue
		}
		if other.rng.Intersects(newRange) {
			return fmt.Errorf("%w: target %s collides with %q at %s",
				mem.ErrBlockOverlap, newRange, other.name, other.rng)
		}
	}

	if want := newRange.Space().ByteLength(newRange.Length()); uint64(len(b.data)) != want {
		resized := make([]byte, want)
		copy(resized, b.data)
		b.data = resized
	}
	b.rng = newRange
	return nil
}

// Bytes returns a copy of the block's backing storage.
func (b *Block) Bytes() []byte {
	b.p.mu.RLock()
	defer b.p.mu.RUnlock()

	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// SetBytes overwrites the block's storage starting at the given byte offset.
func (b *Block) SetBytes(off int, data []byte) error {
	b.p.mu.Lock()
	defer b.p.mu.Unlock()

	if off < 0 || off+len(data) > len(b.data) {
		return fmt.Errorf("write of %d bytes at offset %d exceeds block %q size %d",
			len(data), off, b.name, len(b.data))
	}
	copy(b.data[off:], data)
	return nil
}

// Name returns the block's name.
func (b *Block) Name() string {
	return b.name
}

// Range returns the block's current range.
func (b *Block) Range() address.Range {
	b.p.mu.RLock()
	defer b.p.mu.RUnlock()

	return b.rng
}

// IsOverlay reports whether the block is an overlay view.
func (b *Block) IsOverlay() bool {
	return b.overlay
}

// Lock acquires exclusive write access, blocking until available.
func (p *Program) Lock(ctx context.Context) error {
	return p.sem.Acquire(ctx, 1)
}

// Unlock releases exclusive write access.
func (p *Program) Unlock() {
	p.sem.Release(1)
}

// CanLock reports whether exclusive access could be acquired right now.
func (p *Program) CanLock() bool {
	if !p.sem.TryAcquire(1) {
		return false
	}
	p.sem.Release(1)
	return true
}

var _ mem.Program = (*Program)(nil)

var _ mem.Memory = (*Program)(nil)

var _ mem.Block = (*Block)(nil)
