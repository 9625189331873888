// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newByteSpace(t *testing.T, name string, max uint64) *Space {
	t.Helper()
	s, err := NewSpace(name, 0, max, 8)
	require.NoError(t, err)
	return s
}

func TestSpaceBounds(t *testing.T) {
	r := require.New(t)

	_, err := NewSpace("bad", 10, 5, 8)
	r.Error(err)

	_, err = NewSpace("bad", 0, 10, 0)
	r.Error(err)

	s := newByteSpace(t, "ram", 0xffffffff)
	_, err = s.Address(0x100000000)
	r.ErrorIs(err, ErrOffsetOutOfBounds)

	a, err := s.Address(0x1000)
	r.NoError(err)
	r.Equal(uint64(0x1000), a.Offset())
	r.Equal(s, a.Space())
}

func TestAddressAdd(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffffffff)

	a, err := s.Address(0x1000000)
	r.NoError(err)

	b, err := a.Add(0x6600 - 1)
	r.NoError(err)
	r.Equal(uint64(0x10065ff), b.Offset())

	_, err = s.Max().Add(1)
	r.ErrorIs(err, ErrPastSpaceEnd)

	// A huge count must not wrap around uint64.
	_, err = a.Add(^uint64(0))
	r.ErrorIs(err, ErrPastSpaceEnd)
}

func TestAddressSub(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffffffff)

	a, err := s.Address(0x1001000)
	r.NoError(err)

	b, err := a.Sub(0x6600 - 1)
	r.NoError(err)
	r.Equal(uint64(0xffaa01), b.Offset())

	_, err = s.Min().Sub(1)
	r.ErrorIs(err, ErrBeforeSpaceStart)

	_, err = a.Sub(^uint64(0))
	r.ErrorIs(err, ErrBeforeSpaceStart)
}

func TestAddressDiff(t *testing.T) {
	r := require.New(t)
	s := newByteSpace(t, "ram", 0xffff)
	other := newByteSpace(t, "rom", 0xffff)

	a, err := s.Address(0x100)
	r.NoError(err)
	b, err := s.Address(0x10)
	r.NoError(err)

	d, err := a.Diff(b)
	r.NoError(err)
	r.Equal(uint64(0xf0), d)

	_, err = b.Diff(a)
	r.Error(err)

	c, err := other.Address(0x10)
	r.NoError(err)
	_, err = a.Diff(c)
	r.ErrorIs(err, ErrSpaceMismatch)
}

func TestMinAddressOfNonZeroBasedSpace(t *testing.T) {
	r := require.New(t)
	s, err := NewSpace("sfr", 0x80, 0xff, 8)
	r.NoError(err)

	r.Equal(uint64(0x80), s.Min().Offset())
	_, err = s.Min().Sub(1)
	r.ErrorIs(err, ErrBeforeSpaceStart)
	r.Equal(uint64(0x80), s.Size())
}

func TestByteLength(t *testing.T) {
	r := require.New(t)

	bytes := newByteSpace(t, "ram", 0xffff)
	r.Equal(uint64(0x80), bytes.ByteLength(0x80))

	bits, err := NewSpace("BITS", 0, 0xff, 1)
	r.NoError(err)
	r.Equal(uint64(0x10), bits.ByteLength(0x80))
	r.Equal(uint64(1), bits.ByteLength(3))
}
