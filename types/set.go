// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/scale"
)

// Set is an ordered-set codec: a compact element count followed by the
// elements in encounter order. Iteration preserves insertion order.
// Duplicate elements are rejected at construction, not deduplicated, so a
// decoded set always re-encodes to the same bytes.
type Set struct {
	elem   string
	values []scale.Codec
	reg    scale.Registry
}

// NewSet returns a constructor for BTreeSet<elem>.
func NewSet(elem string) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		s := &Set{elem: elem, reg: reg}
		ctor, err := reg.Resolve(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.TypeName(), err)
		}

		if other, ok := input.(*Set); ok && other.elem == elem {
			s.values = other.values
			return s, nil
		}

		seen := make(map[string]struct{})
		add := func(i int, in any) error {
			val, err := ctor(reg, in)
			if err != nil {
				return fmt.Errorf("%s: element %d: %w", s.TypeName(), i, err)
			}
			key := string(val.Encode())
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w: %s element %d", scale.ErrDuplicateElement, s.TypeName(), i)
			}
			seen[key] = struct{}{}
			s.values = append(s.values, val)
			return nil
		}

		if input == nil {
			return s, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			n := p.UnpackCompactUint()
			if p.Err != nil {
				return nil, fmt.Errorf("%s: %w", s.TypeName(), p.Err)
			}
			if n > DefaultMaxVecLen {
				return nil, fmt.Errorf("%s: %w: %d elements", s.TypeName(), scale.ErrBadLength, n)
			}
			for i := 0; i < int(n); i++ {
				if err := add(i, p); err != nil {
					return nil, err
				}
			}
			return s, nil
		}
		if list, ok := asList(input); ok {
			for i, item := range list {
				if err := add(i, item); err != nil {
					return nil, err
				}
			}
			return s, nil
		}
		return nil, inputErr(s.TypeName(), input)
	}
}

// Len returns the element count.
func (s *Set) Len() int { return len(s.values) }

// At returns the element at insertion position i.
func (s *Set) At(i int) scale.Codec { return s.values[i] }

// Has reports whether the set contains an element equal to input.
func (s *Set) Has(input any) bool {
	for _, v := range s.values {
		if v.Eq(input) {
			return true
		}
	}
	return false
}

func (s *Set) Encode() []byte {
	p := scale.NewPacker(s.EncodedLength())
	p.PackCompactUint(uint64(len(s.values)))
	for _, v := range s.values {
		p.PackFixedBytes(v.Encode())
	}
	return p.Bytes
}

func (s *Set) EncodedLength() int {
	total := scale.CompactLen(uint64(len(s.values)))
	for _, v := range s.values {
		total += v.EncodedLength()
	}
	return total
}

func (s *Set) IsEmpty() bool { return len(s.values) == 0 }

func (s *Set) Eq(other any) bool {
	return compositeEq(s, NewSet(s.elem), s.reg, other)
}

func (s *Set) ToHuman() any {
	out := make([]any, len(s.values))
	for i, v := range s.values {
		out[i] = v.ToHuman()
	}
	return out
}

func (s *Set) ToJSON() any {
	out := make([]any, len(s.values))
	for i, v := range s.values {
		out[i] = v.ToJSON()
	}
	return out
}

func (s *Set) TypeName() string { return fmt.Sprintf("BTreeSet<%s>", s.elem) }

func (s *Set) String() string { return fmt.Sprintf("%v", s.ToHuman()) }
