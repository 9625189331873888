// Copyright (C) 2025, Hexwell, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"fmt"
	"sort"
	"sync"

	"github.com/near/borsh-go"

	"github.com/hexwell/memmove/address"
	"github.com/hexwell/memmove/settings"
)

// settingsStore keeps per-address settings in a map keyed by space, offset,
// and setting name. Values are borsh-encoded so every scalar kind
// round-trips byte-exactly.
type settingsStore struct {
	mu   sync.RWMutex
	data map[settingKey][]byte
}

type settingKey struct {
	space  string
	offset uint64
	key    string
}

func newSettingsStore() *settingsStore {
	return &settingsStore{data: make(map[settingKey][]byte)}
}

func makeKey(addr address.Address, key string) settingKey {
	return settingKey{space: addr.Space().Name, offset: addr.Offset(), key: key}
}

// Set writes a value at the address under the given key.
func (s *settingsStore) Set(addr address.Address, key string, v settings.Value) error {
	raw, err := borsh.Serialize(v)
	if err != nil {
		return fmt.Errorf("failed to encode setting %q at %s: %w", key, addr, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[makeKey(addr, key)] = raw
	return nil
}

// Get reads the value stored at the address under the given key.
func (s *settingsStore) Get(addr address.Address, key string) (settings.Value, bool, error) {
	s.mu.RLock()
	raw, ok := s.data[makeKey(addr, key)]
	s.mu.RUnlock()

	if !ok {
		return settings.Value{}, false, nil
	}
	var v settings.Value
	if err := borsh.Deserialize(&v, raw); err != nil {
		return settings.Value{}, false, fmt.Errorf("failed to decode setting %q at %s: %w", key, addr, err)
	}
	return v, true, nil
}

// Remove deletes the setting at the address under the given key.
func (s *settingsStore) Remove(addr address.Address, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, makeKey(addr, key))
	return nil
}

// EntriesIn returns every entry within r, ordered by address then key.
func (s *settingsStore) EntriesIn(r address.Range) ([]settings.Entry, error) {
	spc := r.Space()

	s.mu.RLock()
	keys := make([]settingKey, 0)
	for k := range s.data {
		if k.space == spc.Name && k.offset >= r.Start().Offset() && k.offset <= r.End().Offset() {
			keys = append(keys, k)
		}
	}
	s.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].offset != keys[j].offset {
			return keys[i].offset < keys[j].offset
		}
		return keys[i].key < keys[j].key
	})

	out := make([]settings.Entry, 0, len(keys))
	for _, k := range keys {
		addr, err := spc.Address(k.offset)
		if err != nil {
			return nil, err
		}
		v, ok, err := s.Get(addr, k.key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, settings.Entry{Address: addr, Key: k.key, Value: v})
	}
	return out, nil
}

func (s *settingsStore) clone() map[settingKey][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[settingKey][]byte, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

func (s *settingsStore) restore(data map[settingKey][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
}

var _ settings.Store = (*settingsStore)(nil)
