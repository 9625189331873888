// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import "fmt"

// Space is an addressing domain: a named, bounded run of offsets together
// with the size of one addressable unit. Byte-addressable spaces have
// UnitBits == 8; a bit-addressable space has UnitBits == 1.
type Space struct {
	// Name identifies the space within its program.
	Name string

	// MinOffset is the smallest representable offset.
	MinOffset uint64

	// MaxOffset is the largest representable offset.
	MaxOffset uint64

	// UnitBits is the width of one addressable unit in bits.
	UnitBits int
}

// NewSpace creates a space after checking its bounds and unit size.
func NewSpace(name string, minOffset, maxOffset uint64, unitBits int) (*Space, error) {
	if maxOffset < minOffset {
		return nil, fmt.Errorf("space %q: max offset %#x below min offset %#x", name, maxOffset, minOffset)
	}
	if unitBits < 1 || unitBits > 64 {
		return nil, fmt.Errorf("space %q: unit size %d bits out of range", name, unitBits)
	}
	return &Space{
		Name:      name,
		MinOffset: minOffset,
		MaxOffset: maxOffset,
		UnitBits:  unitBits,
	}, nil
}

// Address returns the address at the given offset within the space.
func (s *Space) Address(offset uint64) (Address, error) {
	if offset < s.MinOffset || offset > s.MaxOffset {
		return Address{}, fmt.Errorf("%w: %#x not in %s:[%#x, %#x]",
			ErrOffsetOutOfBounds, offset, s.Name, s.MinOffset, s.MaxOffset)
	}
	return Address{space: s, offset: offset}, nil
}

// Min returns the smallest address in the space.
func (s *Space) Min() Address {
	return Address{space: s, offset: s.MinOffset}
}

// Max returns the largest address in the space.
func (s *Space) Max() Address {
	return Address{space: s, offset: s.MaxOffset}
}

// Size returns the number of addressable units in the space.
func (s *Space) Size() uint64 {
	return s.MaxOffset - s.MinOffset + 1
}

// ByteLength converts a count of addressable units to the number of storage
// bytes needed to back them.
func (s *Space) ByteLength(units uint64) uint64 {
	return (units*uint64(s.UnitBits) + 7) / 8
}
