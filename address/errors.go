// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import "errors"

var (
	// ErrPastSpaceEnd indicates that an address computation ran past the
	// maximum representable address of its space.
	ErrPastSpaceEnd = errors.New("end of range exceeds address space")
	// ErrBeforeSpaceStart indicates that an address computation ran below the
	// minimum representable address of its space.
	ErrBeforeSpaceStart = errors.New("start of range is below the address space minimum")
	// ErrSpaceMismatch indicates that two addresses from different spaces
	// were combined in an operation that requires a single space.
	ErrSpaceMismatch = errors.New("addresses belong to different address spaces")
	// ErrZeroLength indicates a range of zero addressable units.
	ErrZeroLength = errors.New("range length must be at least one addressable unit")
	// ErrOffsetOutOfBounds indicates an offset outside a space's bounds.
	ErrOffsetOutOfBounds = errors.New("offset is outside the address space")
)
