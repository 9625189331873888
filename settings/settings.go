// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package settings defines per-address metadata: scalar values keyed by an
// address and a setting name. Entries attached to a memory block travel with
// the block when it is relocated.
package settings

import (
	"github.com/hexwell/memmove/address"
)

// Kind identifies the scalar kind held by a Value.
type Kind uint8

const (
	// KindString is a text value.
	KindString Kind = iota + 1
	// KindInt is a signed 64-bit integer value.
	KindInt
	// KindBytes is an opaque byte-sequence value.
	KindBytes
)

// Value is a tagged scalar. Exactly one of the payload fields is meaningful,
// selected by Kind. Fields are exported so the value round-trips through a
// binary codec unchanged.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Bytes []byte
}

// StringValue wraps a text value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IntValue wraps an integer value.
func IntValue(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// BytesValue wraps a byte-sequence value.
func BytesValue(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: b}
}

// Entry is one setting: a value stored at an address under a name.
type Entry struct {
	Address address.Address
	Key     string
	Value   Value
}

// Store is the per-address metadata collaborator.
type Store interface {
	// Set writes a value at the address under the given key, replacing any
	// previous value for that key.
	Set(addr address.Address, key string, v Value) error

	// Get reads the value stored at the address under the given key. The
	// second result is false when no such setting exists.
	Get(addr address.Address, key string) (Value, bool, error)

	// Remove deletes the setting at the address under the given key.
	// Removing a setting that does not exist is not an error.
	Remove(addr address.Address, key string) error

	// EntriesIn returns every entry whose address lies within r, ordered by
	// address and then by key.
	EntriesIn(r address.Range) ([]Entry, error)
}
