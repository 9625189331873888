// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAddr(t *testing.T, s *Space, offset uint64) Address {
	t.Helper()
	a, err := s.Address(offset)
	require.NoError(t, err)
	return a
}

func TestRangeEndpoints(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffffffff)

	rng, err := RangeFrom(mustAddr(t, s, 0x1001000), 0x6600)
	r.NoError(err)
	r.Equal(uint64(0x1001000), rng.Start().Offset())
	r.Equal(uint64(0x10075ff), rng.End().Offset())
	r.Equal(uint64(0x6600), rng.Length())

	end, err := EndFor(mustAddr(t, s, 0x1000000), 0x6600)
	r.NoError(err)
	r.Equal(uint64(0x10065ff), end.Offset())

	start, err := StartFor(mustAddr(t, s, 0x1001000), 0x6600)
	r.NoError(err)
	r.Equal(uint64(0xffaa01), start.Offset())

	_, err = EndFor(s.Max(), 2)
	r.ErrorIs(err, ErrPastSpaceEnd)

	_, err = StartFor(mustAddr(t, s, 0x1007), 0x6600)
	r.ErrorIs(err, ErrBeforeSpaceStart)

	_, err = RangeFrom(mustAddr(t, s, 0), 0)
	r.ErrorIs(err, ErrZeroLength)
}

func TestNewRangeInvariants(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffff)
	other := newByteSpace(t, "rom", 0xffff)

	_, err := NewRange(mustAddr(t, s, 0x10), mustAddr(t, s, 0x5))
	r.Error(err)

	_, err = NewRange(mustAddr(t, s, 0x10), mustAddr(t, other, 0x20))
	r.ErrorIs(err, ErrSpaceMismatch)

	rng, err := NewRange(mustAddr(t, s, 0x10), mustAddr(t, s, 0x10))
	r.NoError(err)
	r.Equal(uint64(1), rng.Length())
}

func TestRangeContains(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffff)
	other := newByteSpace(t, "rom", 0xffff)

	rng, err := RangeFrom(mustAddr(t, s, 0x100), 0x100)
	r.NoError(err)

	r.True(rng.Contains(mustAddr(t, s, 0x100)))
	r.True(rng.Contains(mustAddr(t, s, 0x1ff)))
	r.False(rng.Contains(mustAddr(t, s, 0xff)))
	r.False(rng.Contains(mustAddr(t, s, 0x200)))
	r.False(rng.Contains(mustAddr(t, other, 0x100)))
}

func TestRangeIntersects(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffff)
	other := newByteSpace(t, "rom", 0xffff)

	a, err := RangeFrom(mustAddr(t, s, 0x100), 0x100)
	r.NoError(err)
	b, err := RangeFrom(mustAddr(t, s, 0x1ff), 0x10)
	r.NoError(err)
	c, err := RangeFrom(mustAddr(t, s, 0x200), 0x10)
	r.NoError(err)
	d, err := RangeFrom(mustAddr(t, other, 0x100), 0x100)
	r.NoError(err)

	r.True(a.Intersects(b))
	r.True(b.Intersects(a))
	r.False(a.Intersects(c))
	// Identical offsets in different spaces never intersect.
	r.False(a.Intersects(d))
}
