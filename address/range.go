// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import "fmt"

// Range is a contiguous, non-empty run of addresses within one space.
// Invariants: start and end share a space, start ≤ end, and the range never
// wraps past the space's maximum offset.
type Range struct {
	start Address
	end   Address
}

// NewRange builds a range from its two endpoints.
func NewRange(start, end Address) (Range, error) {
	if start.space != end.space {
		return Range{}, ErrSpaceMismatch
	}
	if end.offset < start.offset {
		return Range{}, fmt.Errorf("%w: end %s before start %s", ErrBeforeSpaceStart, end, start)
	}
	return Range{start: start, end: end}, nil
}

// RangeFrom builds a range of the given length in addressable units starting
// at start.
func RangeFrom(start Address, length uint64) (Range, error) {
	end, err := EndFor(start, length)
	if err != nil {
		return Range{}, err
	}
	return Range{start: start, end: end}, nil
}

// EndFor computes the inclusive end address of a range of the given length
// that starts at start.
func EndFor(start Address, length uint64) (Address, error) {
	if length == 0 {
		return Address{}, ErrZeroLength
	}
	return start.Add(length - 1)
}

// StartFor computes the start address of a range of the given length whose
// inclusive end is end.
func StartFor(end Address, length uint64) (Address, error) {
	if length == 0 {
		return Address{}, ErrZeroLength
	}
	return end.Sub(length - 1)
}

// Start returns the first address of the range.
func (r Range) Start() Address {
	return r.start
}

// End returns the last address of the range.
func (r Range) End() Address {
	return r.end
}

// Space returns the space both endpoints live in.
func (r Range) Space() *Space {
	return r.start.space
}

// Length returns the number of addressable units covered by the range.
func (r Range) Length() uint64 {
	return r.end.offset - r.start.offset + 1
}

// Contains reports whether the address lies within the range.
func (r Range) Contains(a Address) bool {
	return a.space == r.start.space &&
		a.offset >= r.start.offset && a.offset <= r.end.offset
}

// Intersects reports whether the two ranges share at least one address.
// Ranges in different spaces never intersect.
func (r Range) Intersects(o Range) bool {
	return r.start.space == o.start.space &&
		r.start.offset <= o.end.offset && o.start.offset <= r.end.offset
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.start, r.end)
}
