// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"sort"

	"github.com/luxfi/scale"
)

// Map is the key/value collection codec: a compact pair count followed by
// the key and value encodings pair by pair, in encounter order. Iteration
// preserves insertion order; duplicate keys are a construction error.
type Map struct {
	keyType   string
	valueType string
	keys      []scale.Codec
	values    []scale.Codec
	reg       scale.Registry
}

// NewMap returns a constructor for BTreeMap<key, value>.
func NewMap(keyType, valueType string) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		m := &Map{keyType: keyType, valueType: valueType, reg: reg}
		keyCtor, err := reg.Resolve(keyType)
		if err != nil {
			return nil, fmt.Errorf("%s: key: %w", m.TypeName(), err)
		}
		valCtor, err := reg.Resolve(valueType)
		if err != nil {
			return nil, fmt.Errorf("%s: value: %w", m.TypeName(), err)
		}

		if other, ok := input.(*Map); ok &&
			other.keyType == keyType && other.valueType == valueType {
			m.keys = other.keys
			m.values = other.values
			return m, nil
		}

		seen := make(map[string]struct{})
		add := func(kin, vin any) error {
			key, err := keyCtor(reg, kin)
			if err != nil {
				return fmt.Errorf("%s: key: %w", m.TypeName(), err)
			}
			enc := string(key.Encode())
			if _, dup := seen[enc]; dup {
				return fmt.Errorf("%w: %s key %s", scale.ErrDuplicateKey, m.TypeName(), key)
			}
			val, err := valCtor(reg, vin)
			if err != nil {
				return fmt.Errorf("%s: value for key %s: %w", m.TypeName(), key, err)
			}
			seen[enc] = struct{}{}
			m.keys = append(m.keys, key)
			m.values = append(m.values, val)
			return nil
		}

		if input == nil {
			return m, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			n := p.UnpackCompactUint()
			if p.Err != nil {
				return nil, fmt.Errorf("%s: %w", m.TypeName(), p.Err)
			}
			if n > DefaultMaxVecLen {
				return nil, fmt.Errorf("%s: %w: %d entries", m.TypeName(), scale.ErrBadLength, n)
			}
			for i := 0; i < int(n); i++ {
				if err := add(p, p); err != nil {
					return nil, err
				}
			}
			return m, nil
		}
		if obj, ok := asMap(input); ok {
			// plain-object input has no encounter order; sort keys so
			// construction stays deterministic
			keys := make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if err := add(k, obj[k]); err != nil {
					return nil, err
				}
			}
			return m, nil
		}
		return nil, inputErr(m.TypeName(), input)
	}
}

// Len returns the entry count.
func (m *Map) Len() int { return len(m.keys) }

// KeyAt returns the key at insertion position i.
func (m *Map) KeyAt(i int) scale.Codec { return m.keys[i] }

// ValueAt returns the value at insertion position i.
func (m *Map) ValueAt(i int) scale.Codec { return m.values[i] }

// Get returns the value stored under a key equal to input, or nil.
func (m *Map) Get(input any) scale.Codec {
	for i, k := range m.keys {
		if k.Eq(input) {
			return m.values[i]
		}
	}
	return nil
}

func (m *Map) Encode() []byte {
	p := scale.NewPacker(m.EncodedLength())
	p.PackCompactUint(uint64(len(m.keys)))
	for i := range m.keys {
		p.PackFixedBytes(m.keys[i].Encode())
		p.PackFixedBytes(m.values[i].Encode())
	}
	return p.Bytes
}

func (m *Map) EncodedLength() int {
	total := scale.CompactLen(uint64(len(m.keys)))
	for i := range m.keys {
		total += m.keys[i].EncodedLength() + m.values[i].EncodedLength()
	}
	return total
}

func (m *Map) IsEmpty() bool { return len(m.keys) == 0 }

func (m *Map) Eq(other any) bool {
	return compositeEq(m, NewMap(m.keyType, m.valueType), m.reg, other)
}

func (m *Map) ToHuman() any {
	out := make(map[string]any, len(m.keys))
	for i, k := range m.keys {
		out[k.String()] = m.values[i].ToHuman()
	}
	return out
}

func (m *Map) ToJSON() any {
	out := make(map[string]any, len(m.keys))
	for i, k := range m.keys {
		out[k.String()] = m.values[i].ToJSON()
	}
	return out
}

func (m *Map) TypeName() string {
	return fmt.Sprintf("BTreeMap<%s, %s>", m.keyType, m.valueType)
}

func (m *Map) String() string { return fmt.Sprintf("%v", m.ToHuman()) }
