// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"fmt"

	"github.com/hexwell/memmove/address"
)

// Builder assembles a Program from spaces and blocks given as plain offsets.
// It stays usable after Program() so tests can mutate the catalog mid-flight.
type Builder struct {
	p *Program
}

// NewBuilder starts building a program with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{p: NewProgram(name)}
}

// AddSpace registers an address space.
func (b *Builder) AddSpace(name string, minOffset, maxOffset uint64, unitBits int) (*address.Space, error) {
	return b.p.AddSpace(name, minOffset, maxOffset, unitBits)
}

// AddByteSpace registers a byte-addressable space spanning [0, maxOffset].
func (b *Builder) AddByteSpace(name string, maxOffset uint64) (*address.Space, error) {
	return b.p.AddSpace(name, 0, maxOffset, 8)
}

// AddBlock creates a block of the given length in addressable units starting
// at the offset within the named space.
func (b *Builder) AddBlock(name, space string, start, length uint64) (*Block, error) {
	rng, err := b.rangeFor(space, start, length)
	if err != nil {
		return nil, err
	}
	return b.p.AddBlock(name, rng)
}

// AddOverlay creates an overlay block; it may share addresses with existing
// blocks.
func (b *Builder) AddOverlay(name, space string, start, length uint64) (*Block, error) {
	rng, err := b.rangeFor(space, start, length)
	if err != nil {
		return nil, err
	}
	return b.p.AddOverlay(name, rng)
}

func (b *Builder) rangeFor(space string, start, length uint64) (address.Range, error) {
	spc, ok := b.p.Space(space)
	if !ok {
		return address.Range{}, fmt.Errorf("space %q is not defined", space)
	}
	addr, err := spc.Address(start)
	if err != nil {
		return address.Range{}, err
	}
	return address.RangeFrom(addr, length)
}

// Program returns the assembled program.
func (b *Builder) Program() *Program {
	return b.p
}
