// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"sort"

	"github.com/luxfi/scale"
)

// Variant names one alternative of a tagged union. Type is empty for unit
// variants. Index is the wire discriminant; when every variant leaves Index
// at zero the discriminants are positional.
type Variant struct {
	Name  string
	Type  string
	Index uint8
}

// Enum is a tagged union codec: one discriminant byte followed by the
// active variant's payload, if any.
type Enum struct {
	name     string
	variants []Variant // discriminant-ordered
	byTag    map[uint8]int
	tag      uint8
	value    scale.Codec // nil for unit variants
	reg      scale.Registry
}

// NewEnum returns a constructor for a tagged union with the given variants.
func NewEnum(name string, variants []Variant) scale.Constructor {
	ordered, byTag := indexVariants(variants)
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		e := &Enum{name: name, variants: ordered, byTag: byTag, reg: reg}
		if len(ordered) == 0 {
			return nil, fmt.Errorf("%w: enum %s has no variants", scale.ErrInvalidInput, e.TypeName())
		}

		if other, ok := input.(*Enum); ok && other.name == name && len(other.variants) == len(ordered) {
			e.tag = other.tag
			e.value = other.value
			return e, nil
		}

		if input == nil {
			return e, e.setVariant(ordered[0], nil)
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			tag := p.UnpackByte()
			if p.Err != nil {
				return nil, fmt.Errorf("enum %s: %w", e.TypeName(), p.Err)
			}
			i, ok := byTag[tag]
			if !ok {
				return nil, fmt.Errorf("%w: enum %s has no tag %d",
					scale.ErrUnknownVariant, e.TypeName(), tag)
			}
			return e, e.setVariant(ordered[i], p)
		}
		switch v := input.(type) {
		case string:
			i, ok := e.variantNamed(v)
			if !ok {
				return nil, fmt.Errorf("%w: enum %s has no variant %q",
					scale.ErrUnknownVariant, e.TypeName(), v)
			}
			return e, e.setVariant(ordered[i], nil)
		case map[string]any:
			if len(v) != 1 {
				return nil, fmt.Errorf("%w: enum %s wants a single-key object",
					scale.ErrInvalidInput, e.TypeName())
			}
			for name, payload := range v {
				i, ok := e.variantNamed(name)
				if !ok {
					return nil, fmt.Errorf("%w: enum %s has no variant %q",
						scale.ErrUnknownVariant, e.TypeName(), name)
				}
				return e, e.setVariant(ordered[i], payload)
			}
		}
		if tag, ok := toUint64(input); ok {
			i, found := byTag[uint8(tag)]
			if tag > 0xff || !found {
				return nil, fmt.Errorf("%w: enum %s has no tag %d",
					scale.ErrUnknownVariant, e.TypeName(), tag)
			}
			return e, e.setVariant(ordered[i], nil)
		}
		return nil, inputErr(e.TypeName(), input)
	}
}

// indexVariants assigns positional discriminants when none are declared and
// returns the variants in discriminant order with a tag lookup.
func indexVariants(variants []Variant) ([]Variant, map[uint8]int) {
	explicit := false
	for _, v := range variants {
		if v.Index != 0 {
			explicit = true
			break
		}
	}
	ordered := make([]Variant, len(variants))
	copy(ordered, variants)
	if !explicit {
		for i := range ordered {
			ordered[i].Index = uint8(i)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})
	byTag := make(map[uint8]int, len(ordered))
	for i, v := range ordered {
		byTag[v.Index] = i
	}
	return ordered, byTag
}

func (e *Enum) variantNamed(name string) (int, bool) {
	for i, v := range e.variants {
		if v.Name == name {
			return i, true
		}
	}
	return 0, false
}

func (e *Enum) setVariant(v Variant, payload any) error {
	e.tag = v.Index
	if v.Type == "" {
		e.value = nil
		return nil
	}
	val, err := e.reg.CreateType(v.Type, payload)
	if err != nil {
		return fmt.Errorf("enum %s: variant %s: %w", e.TypeName(), v.Name, err)
	}
	e.value = val
	return nil
}

// Variant returns the active variant's name.
func (e *Enum) Variant() string {
	i := e.byTag[e.tag]
	return e.variants[i].Name
}

// Tag returns the active variant's wire discriminant.
func (e *Enum) Tag() uint8 { return e.tag }

// Value returns the active variant's payload, or nil for a unit variant.
func (e *Enum) Value() scale.Codec { return e.value }

func (e *Enum) Encode() []byte {
	p := scale.NewPacker(e.EncodedLength())
	p.PackByte(e.tag)
	if e.value != nil {
		p.PackFixedBytes(e.value.Encode())
	}
	return p.Bytes
}

func (e *Enum) EncodedLength() int {
	if e.value == nil {
		return 1
	}
	return 1 + e.value.EncodedLength()
}

// IsEmpty holds when the first declared variant is active with an empty
// payload.
func (e *Enum) IsEmpty() bool {
	if e.tag != e.variants[0].Index {
		return false
	}
	return e.value == nil || e.value.IsEmpty()
}

func (e *Enum) Eq(other any) bool {
	return compositeEq(e, NewEnum(e.name, e.variants), e.reg, other)
}

func (e *Enum) ToHuman() any {
	if e.value == nil {
		return e.Variant()
	}
	return map[string]any{e.Variant(): e.value.ToHuman()}
}

func (e *Enum) ToJSON() any {
	if e.value == nil {
		return e.Variant()
	}
	return map[string]any{e.Variant(): e.value.ToJSON()}
}

func (e *Enum) TypeName() string {
	if e.name != "" {
		return e.name
	}
	return "Enum"
}

func (e *Enum) String() string { return fmt.Sprintf("%v", e.ToHuman()) }
