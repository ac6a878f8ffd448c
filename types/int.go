// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strconv"

	"github.com/luxfi/scale"
)

// Int is a fixed-width signed integer codec of 8, 16, 32 or 64 bits,
// encoded little-endian two's complement.
type Int struct {
	value int64
	bits  int
}

// NewInt returns a constructor for a signed integer of the given width.
func NewInt(bits int) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		i := &Int{bits: bits}
		if input == nil {
			return i, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			switch bits {
			case 8:
				i.value = int64(int8(p.UnpackByte()))
			case 16:
				i.value = int64(int16(p.UnpackU16()))
			case 32:
				i.value = int64(int32(p.UnpackU32()))
			default:
				i.value = int64(p.UnpackU64())
			}
			if p.Err != nil {
				return nil, fmt.Errorf("i%d: %w", bits, p.Err)
			}
			return i, nil
		}
		if other, ok := input.(*Int); ok && other.bits == bits {
			i.value = other.value
			return i, nil
		}
		val, ok := toInt64(input)
		if !ok {
			return nil, inputErr(i.TypeName(), input)
		}
		if bits < 64 {
			limit := int64(1) << (bits - 1)
			if val >= limit || val < -limit {
				return nil, fmt.Errorf("%w %s: %d out of range",
					scale.ErrInvalidInput, i.TypeName(), val)
			}
		}
		i.value = val
		return i, nil
	}
}

// Value returns the wrapped integer.
func (i *Int) Value() int64 { return i.value }

func (i *Int) Encode() []byte {
	p := scale.NewPacker(i.bits / 8)
	switch i.bits {
	case 8:
		p.PackByte(byte(i.value))
	case 16:
		p.PackU16(uint16(i.value))
	case 32:
		p.PackU32(uint32(i.value))
	default:
		p.PackU64(uint64(i.value))
	}
	return p.Bytes
}

func (i *Int) EncodedLength() int { return i.bits / 8 }

func (i *Int) IsEmpty() bool { return i.value == 0 }

func (i *Int) Eq(other any) bool {
	if o, ok := other.(*Int); ok {
		return o.bits == i.bits && o.value == i.value
	}
	if v, ok := toInt64(other); ok {
		return v == i.value
	}
	return false
}

func (i *Int) ToHuman() any { return i.value }

func (i *Int) ToJSON() any { return i.value }

func (i *Int) TypeName() string { return fmt.Sprintf("i%d", i.bits) }

func (i *Int) String() string { return strconv.FormatInt(i.value, 10) }
