// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/scale"
)

// DefaultMaxVecLen caps decoded element counts (2 MiB of elements).
const DefaultMaxVecLen = 2 * 1024 * 1024

// Vec is a homogeneous sequence codec: a compact element count followed by
// that many back-to-back elements. A non-negative fixed length turns it
// into the unprefixed fixed-array form.
type Vec struct {
	elem   string
	fixed  int // -1 for the length-prefixed form
	values []scale.Codec
	reg    scale.Registry
}

// NewVec returns a constructor for a length-prefixed sequence of elem.
func NewVec(elem string) scale.Constructor {
	return newVec(elem, -1)
}

// NewVecFixed returns a constructor for an unprefixed array of exactly
// length elements of elem.
func NewVecFixed(elem string, length int) scale.Constructor {
	return newVec(elem, length)
}

func newVec(elem string, fixed int) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		v := &Vec{elem: elem, fixed: fixed, reg: reg}
		ctor, err := reg.Resolve(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.TypeName(), err)
		}

		if other, ok := input.(*Vec); ok && other.elem == elem && other.fixed == fixed {
			v.values = other.values
			return v, nil
		}

		build := func(count int, in func(i int) any) error {
			v.values = make([]scale.Codec, count)
			for i := 0; i < count; i++ {
				val, err := ctor(reg, in(i))
				if err != nil {
					return fmt.Errorf("%s: element %d: %w", v.TypeName(), i, err)
				}
				v.values[i] = val
			}
			return nil
		}

		if input == nil {
			count := 0
			if fixed > 0 {
				count = fixed
			}
			return v, build(count, func(int) any { return nil })
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			count := fixed
			if fixed < 0 {
				n := p.UnpackCompactUint()
				if p.Err != nil {
					return nil, fmt.Errorf("%s: %w", v.TypeName(), p.Err)
				}
				if n > DefaultMaxVecLen {
					return nil, fmt.Errorf("%s: %w: %d elements", v.TypeName(), scale.ErrBadLength, n)
				}
				count = int(n)
			}
			return v, build(count, func(int) any { return p })
		}
		if list, ok := asList(input); ok {
			if fixed >= 0 && len(list) != fixed {
				return nil, fmt.Errorf("%w: %s wants %d elements, got %d",
					scale.ErrWrongArity, v.TypeName(), fixed, len(list))
			}
			return v, build(len(list), func(i int) any { return list[i] })
		}
		return nil, inputErr(v.TypeName(), input)
	}
}

// Len returns the element count.
func (v *Vec) Len() int { return len(v.values) }

// At returns the element at position i.
func (v *Vec) At(i int) scale.Codec { return v.values[i] }

func (v *Vec) Encode() []byte {
	p := scale.NewPacker(v.EncodedLength())
	if v.fixed < 0 {
		p.PackCompactUint(uint64(len(v.values)))
	}
	for _, val := range v.values {
		p.PackFixedBytes(val.Encode())
	}
	return p.Bytes
}

func (v *Vec) EncodedLength() int {
	total := 0
	if v.fixed < 0 {
		total = scale.CompactLen(uint64(len(v.values)))
	}
	for _, val := range v.values {
		total += val.EncodedLength()
	}
	return total
}

func (v *Vec) IsEmpty() bool {
	for _, val := range v.values {
		if !val.IsEmpty() {
			return false
		}
	}
	return true
}

func (v *Vec) Eq(other any) bool {
	return compositeEq(v, newVec(v.elem, v.fixed), v.reg, other)
}

func (v *Vec) ToHuman() any {
	out := make([]any, len(v.values))
	for i, val := range v.values {
		out[i] = val.ToHuman()
	}
	return out
}

func (v *Vec) ToJSON() any {
	out := make([]any, len(v.values))
	for i, val := range v.values {
		out[i] = val.ToJSON()
	}
	return out
}

func (v *Vec) TypeName() string {
	if v.fixed >= 0 {
		return fmt.Sprintf("[%s; %d]", v.elem, v.fixed)
	}
	return fmt.Sprintf("Vec<%s>", v.elem)
}

func (v *Vec) String() string { return fmt.Sprintf("%v", v.ToHuman()) }
