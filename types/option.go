// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/scale"
)

// Option is the optional-value codec: one presence byte (0 absent,
// 1 present) followed by the payload encoding when present.
type Option struct {
	inner string
	value scale.Codec // nil when absent
	reg   scale.Registry
}

// NewOption returns a constructor for Option<inner>.
func NewOption(inner string) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		o := &Option{inner: inner, reg: reg}
		if _, err := reg.Resolve(inner); err != nil {
			return nil, fmt.Errorf("%s: %w", o.TypeName(), err)
		}
		if input == nil {
			return o, nil
		}
		if other, ok := input.(*Option); ok && other.inner == inner {
			o.value = other.value
			return o, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			present := p.UnpackByte()
			if p.Err != nil {
				return nil, fmt.Errorf("%s: %w", o.TypeName(), p.Err)
			}
			switch present {
			case 0:
				return o, nil
			case 1:
				val, err := reg.CreateType(inner, p)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", o.TypeName(), err)
				}
				o.value = val
				return o, nil
			default:
				return nil, fmt.Errorf("%w %s: presence byte 0x%02x",
					scale.ErrInvalidInput, o.TypeName(), present)
			}
		}
		// any other input is the payload itself
		val, err := reg.CreateType(inner, input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.TypeName(), err)
		}
		o.value = val
		return o, nil
	}
}

// IsNone reports absence.
func (o *Option) IsNone() bool { return o.value == nil }

// Unwrap returns the payload codec, or nil when absent.
func (o *Option) Unwrap() scale.Codec { return o.value }

func (o *Option) Encode() []byte {
	if o.value == nil {
		return []byte{0}
	}
	p := scale.NewPacker(o.EncodedLength())
	p.PackByte(1)
	p.PackFixedBytes(o.value.Encode())
	return p.Bytes
}

func (o *Option) EncodedLength() int {
	if o.value == nil {
		return 1
	}
	return 1 + o.value.EncodedLength()
}

func (o *Option) IsEmpty() bool { return o.value == nil }

func (o *Option) Eq(other any) bool {
	return compositeEq(o, NewOption(o.inner), o.reg, other)
}

func (o *Option) ToHuman() any {
	if o.value == nil {
		return nil
	}
	return o.value.ToHuman()
}

func (o *Option) ToJSON() any {
	if o.value == nil {
		return nil
	}
	return o.value.ToJSON()
}

func (o *Option) TypeName() string { return fmt.Sprintf("Option<%s>", o.inner) }

func (o *Option) String() string {
	if o.value == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%s)", o.value.String())
}

// OptionBool is the one-byte Option<bool> wire quirk: 0 none, 1 true,
// 2 false. It never nests a payload encoding.
type OptionBool struct {
	present bool
	value   bool
}

// NewOptionBool constructs an OptionBool.
func NewOptionBool(reg scale.Registry, input any) (scale.Codec, error) {
	o := &OptionBool{}
	if input == nil {
		return o, nil
	}
	switch v := input.(type) {
	case *OptionBool:
		o.present, o.value = v.present, v.value
		return o, nil
	case bool:
		o.present, o.value = true, v
		return o, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		b := p.UnpackByte()
		if p.Err != nil {
			return nil, fmt.Errorf("Option<bool>: %w", p.Err)
		}
		switch b {
		case 0:
		case 1:
			o.present, o.value = true, true
		case 2:
			o.present, o.value = true, false
		default:
			return nil, fmt.Errorf("%w Option<bool>: byte 0x%02x", scale.ErrInvalidInput, b)
		}
		return o, nil
	}
	return nil, inputErr("Option<bool>", input)
}

// IsNone reports absence.
func (o *OptionBool) IsNone() bool { return !o.present }

// Value returns the wrapped bool; false when absent.
func (o *OptionBool) Value() bool { return o.present && o.value }

func (o *OptionBool) Encode() []byte {
	switch {
	case !o.present:
		return []byte{0}
	case o.value:
		return []byte{1}
	default:
		return []byte{2}
	}
}

func (o *OptionBool) EncodedLength() int { return 1 }

func (o *OptionBool) IsEmpty() bool { return !o.present }

func (o *OptionBool) Eq(other any) bool {
	switch v := other.(type) {
	case *OptionBool:
		return v.present == o.present && v.Value() == o.Value()
	case bool:
		return o.present && o.value == v
	case nil:
		return !o.present
	}
	return false
}

func (o *OptionBool) ToHuman() any { return o.ToJSON() }

func (o *OptionBool) ToJSON() any {
	if !o.present {
		return nil
	}
	return o.value
}

func (o *OptionBool) TypeName() string { return "Option<bool>" }

func (o *OptionBool) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%t)", o.value)
}
