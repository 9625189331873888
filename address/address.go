// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address provides bounds-checked address arithmetic over addressing
// domains with arbitrary addressable-unit sizes. Overflow and underflow are
// reported as errors instead of wrapping silently.
package address

import "fmt"

// Address is an offset within a single Space. The zero Address belongs to no
// space and compares unequal to every real address.
type Address struct {
	space  *Space
	offset uint64
}

// Space returns the space the address belongs to, or nil for the zero value.
func (a Address) Space() *Space {
	return a.space
}

// Offset returns the address's offset within its space.
func (a Address) Offset() uint64 {
	return a.offset
}

// Add advances the address by n addressable units. It fails with
// ErrPastSpaceEnd when the result would exceed the space's maximum offset.
func (a Address) Add(n uint64) (Address, error) {
	if n > a.space.MaxOffset-a.offset {
		return Address{}, fmt.Errorf("%w: %s + %#x units", ErrPastSpaceEnd, a, n)
	}
	return Address{space: a.space, offset: a.offset + n}, nil
}

// Sub backs the address up by n addressable units. It fails with
// ErrBeforeSpaceStart when the result would fall below the space's minimum
// offset.
func (a Address) Sub(n uint64) (Address, error) {
	if n > a.offset-a.space.MinOffset {
		return Address{}, fmt.Errorf("%w: %s - %#x units", ErrBeforeSpaceStart, a, n)
	}
	return Address{space: a.space, offset: a.offset - n}, nil
}

// Diff returns the distance a − b in addressable units. Both addresses must
// be in the same space and a must not precede b.
func (a Address) Diff(b Address) (uint64, error) {
	if a.space != b.space {
		return 0, ErrSpaceMismatch
	}
	if a.offset < b.offset {
		return 0, fmt.Errorf("%w: %s precedes %s", ErrBeforeSpaceStart, a, b)
	}
	return a.offset - b.offset, nil
}

// Before reports whether a precedes b within the same space.
func (a Address) Before(b Address) bool {
	return a.space == b.space && a.offset < b.offset
}

func (a Address) String() string {
	if a.space == nil {
		return "<no address>"
	}
	return fmt.Sprintf("%s:%08x", a.space.Name, a.offset)
}
