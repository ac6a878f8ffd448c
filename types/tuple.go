// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strings"

	"github.com/luxfi/scale"
)

// Tuple is a fixed-arity heterogeneous codec: the member encodings are
// concatenated with no length prefix and no per-element tags.
type Tuple struct {
	typeDefs []string
	values   []scale.Codec
	reg      scale.Registry
}

// NewTuple returns a constructor for a tuple of the given member types.
func NewTuple(typeDefs []string) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		t := &Tuple{typeDefs: typeDefs, reg: reg}
		ctors := make([]scale.Constructor, len(typeDefs))
		for i, def := range typeDefs {
			ctor, err := reg.Resolve(def)
			if err != nil {
				return nil, fmt.Errorf("tuple %s: member %d: %w", t.TypeName(), i, err)
			}
			ctors[i] = ctor
		}

		if other, ok := input.(*Tuple); ok && other.shapeEq(t) {
			t.values = other.values
			return t, nil
		}

		t.values = make([]scale.Codec, len(typeDefs))
		build := func(i int, in any) error {
			val, err := ctors[i](reg, in)
			if err != nil {
				return fmt.Errorf("tuple %s: member %d: %w", t.TypeName(), i, err)
			}
			t.values[i] = val
			return nil
		}

		if input == nil {
			for i := range typeDefs {
				if err := build(i, nil); err != nil {
					return nil, err
				}
			}
			return t, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			for i := range typeDefs {
				if err := build(i, p); err != nil {
					return nil, err
				}
			}
			return t, nil
		}
		if list, ok := asList(input); ok {
			if len(list) != len(typeDefs) {
				return nil, fmt.Errorf("%w: tuple %s has arity %d, got %d values",
					scale.ErrWrongArity, t.TypeName(), len(typeDefs), len(list))
			}
			for i := range typeDefs {
				if err := build(i, list[i]); err != nil {
					return nil, err
				}
			}
			return t, nil
		}
		return nil, inputErr(t.TypeName(), input)
	}
}

func (t *Tuple) shapeEq(o *Tuple) bool {
	if len(t.typeDefs) != len(o.typeDefs) {
		return false
	}
	for i, def := range t.typeDefs {
		if o.typeDefs[i] != def {
			return false
		}
	}
	return true
}

// Len returns the arity.
func (t *Tuple) Len() int { return len(t.values) }

// At returns the member at position i.
func (t *Tuple) At(i int) scale.Codec { return t.values[i] }

func (t *Tuple) Encode() []byte {
	p := scale.NewPacker(t.EncodedLength())
	for _, v := range t.values {
		p.PackFixedBytes(v.Encode())
	}
	return p.Bytes
}

func (t *Tuple) EncodedLength() int {
	total := 0
	for _, v := range t.values {
		total += v.EncodedLength()
	}
	return total
}

func (t *Tuple) IsEmpty() bool {
	for _, v := range t.values {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

func (t *Tuple) Eq(other any) bool {
	return compositeEq(t, NewTuple(t.typeDefs), t.reg, other)
}

func (t *Tuple) ToHuman() any {
	out := make([]any, len(t.values))
	for i, v := range t.values {
		out[i] = v.ToHuman()
	}
	return out
}

func (t *Tuple) ToJSON() any {
	out := make([]any, len(t.values))
	for i, v := range t.values {
		out[i] = v.ToJSON()
	}
	return out
}

func (t *Tuple) TypeName() string {
	return "(" + strings.Join(t.typeDefs, ", ") + ")"
}

func (t *Tuple) String() string { return fmt.Sprintf("%v", t.ToHuman()) }
