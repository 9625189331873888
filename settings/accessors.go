// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package settings

import (
	"github.com/hexwell/memmove/address"
)

// Typed accessors over a Store. Reads return false when the setting is
// missing or holds a different kind.

// SetString stores a text setting.
func SetString(st Store, addr address.Address, key, v string) error {
	return st.Set(addr, key, StringValue(v))
}

// GetString reads a text setting.
func GetString(st Store, addr address.Address, key string) (string, bool, error) {
	v, ok, err := st.Get(addr, key)
	if err != nil || !ok || v.Kind != KindString {
		return "", false, err
	}
	return v.Str, true, nil
}

// SetInt stores an integer setting.
func SetInt(st Store, addr address.Address, key string, v int64) error {
	return st.Set(addr, key, IntValue(v))
}

// GetInt reads an integer setting.
func GetInt(st Store, addr address.Address, key string) (int64, bool, error) {
	v, ok, err := st.Get(addr, key)
	if err != nil || !ok || v.Kind != KindInt {
		return 0, false, err
	}
	return v.Int, true, nil
}

// SetBytes stores a byte-sequence setting.
func SetBytes(st Store, addr address.Address, key string, v []byte) error {
	return st.Set(addr, key, BytesValue(v))
}

// GetBytes reads a byte-sequence setting.
func GetBytes(st Store, addr address.Address, key string) ([]byte, bool, error) {
	v, ok, err := st.Get(addr, key)
	if err != nil || !ok || v.Kind != KindBytes {
		return nil, false, err
	}
	return v.Bytes, true, nil
}
