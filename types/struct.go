// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/luxfi/scale"
)

// Field names one ordered struct member and the descriptor of its type.
type Field struct {
	Name string
	Type string
}

// Struct is an ordered-field record codec. Field order is load-bearing: the
// encoding is the concatenation of each field's encoding in declared order.
type Struct struct {
	name   string
	fields []Field
	values []scale.Codec
	reg    scale.Registry
}

// NewStruct returns a constructor for a struct with the given ordered
// fields. Field descriptors are resolved against the registry before any
// value is built; an unresolved descriptor fails construction.
func NewStruct(name string, fields []Field) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		s := &Struct{name: name, fields: fields, reg: reg}
		ctors := make([]scale.Constructor, len(fields))
		for i, f := range fields {
			ctor, err := reg.Resolve(f.Type)
			if err != nil {
				return nil, fmt.Errorf("struct %s: field %s: %w", s.TypeName(), f.Name, err)
			}
			ctors[i] = ctor
		}

		if other, ok := input.(*Struct); ok && other.shapeEq(s) {
			// zero-cost reuse: share the already-built children
			s.values = other.values
			return s, nil
		}

		s.values = make([]scale.Codec, len(fields))
		build := func(i int, in any) error {
			val, err := ctors[i](reg, in)
			if err != nil {
				return fmt.Errorf("struct %s: field %s: %w", s.TypeName(), fields[i].Name, err)
			}
			s.values[i] = val
			return nil
		}

		if input == nil {
			for i := range fields {
				if err := build(i, nil); err != nil {
					return nil, err
				}
			}
			return s, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			for i := range fields {
				if err := build(i, p); err != nil {
					return nil, err
				}
			}
			return s, nil
		}
		if list, ok := asList(input); ok {
			if len(list) != len(fields) {
				return nil, fmt.Errorf("%w: struct %s has %d fields, got %d values",
					scale.ErrWrongArity, s.TypeName(), len(fields), len(list))
			}
			for i := range fields {
				if err := build(i, list[i]); err != nil {
					return nil, err
				}
			}
			return s, nil
		}
		if obj, ok := asMap(input); ok {
			byKey := make(map[string]any, len(obj))
			for k, v := range obj {
				byKey[normalizeKey(k)] = v
			}
			for i, f := range fields {
				// absent keys decode to the field's zero value
				if err := build(i, byKey[normalizeKey(f.Name)]); err != nil {
					return nil, err
				}
			}
			return s, nil
		}
		return nil, inputErr(s.TypeName(), input)
	}
}

func (s *Struct) shapeEq(o *Struct) bool {
	if s.name != o.name || len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		if o.fields[i] != f {
			return false
		}
	}
	return true
}

// Get returns the named field's codec, or nil when no such field exists.
func (s *Struct) Get(name string) scale.Codec {
	for i, f := range s.fields {
		if f.Name == name {
			return s.values[i]
		}
	}
	return nil
}

// At returns the codec at the given field position.
func (s *Struct) At(i int) scale.Codec { return s.values[i] }

// Len returns the field count.
func (s *Struct) Len() int { return len(s.fields) }

func (s *Struct) Encode() []byte {
	p := scale.NewPacker(s.EncodedLength())
	for _, v := range s.values {
		p.PackFixedBytes(v.Encode())
	}
	return p.Bytes
}

func (s *Struct) EncodedLength() int {
	total := 0
	for _, v := range s.values {
		total += v.EncodedLength()
	}
	return total
}

func (s *Struct) IsEmpty() bool {
	for _, v := range s.values {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

func (s *Struct) Eq(other any) bool {
	return compositeEq(s, NewStruct(s.name, s.fields), s.reg, other)
}

func (s *Struct) ToHuman() any {
	out := make(map[string]any, len(s.fields))
	for i, f := range s.fields {
		out[f.Name] = s.values[i].ToHuman()
	}
	return out
}

func (s *Struct) ToJSON() any {
	out := make(map[string]any, len(s.fields))
	for i, f := range s.fields {
		out[f.Name] = s.values[i].ToJSON()
	}
	return out
}

func (s *Struct) TypeName() string {
	if s.name != "" {
		return s.name
	}
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.Name + ": " + f.Type
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Struct) String() string { return fmt.Sprintf("%v", s.ToHuman()) }

// compositeEq implements Eq for composites: codec inputs compare by type
// name and encoding; raw inputs are built through the same constructor
// first, so any constructible compatible shape compares structurally.
func compositeEq(self scale.Codec, ctor scale.Constructor, reg scale.Registry, other any) bool {
	if o, ok := other.(scale.Codec); ok {
		return o.TypeName() == self.TypeName() && bytes.Equal(o.Encode(), self.Encode())
	}
	peer, err := ctor(reg, other)
	if err != nil {
		return false
	}
	return bytes.Equal(peer.Encode(), self.Encode())
}
