// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strconv"

	"github.com/luxfi/scale"
)

// UInt is a fixed-width unsigned integer codec of 8, 16, 32 or 64 bits,
// encoded little-endian.
type UInt struct {
	value uint64
	bits  int
}

// NewUInt returns a constructor for an unsigned integer of the given width.
func NewUInt(bits int) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		u := &UInt{bits: bits}
		if input == nil {
			return u, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			switch bits {
			case 8:
				u.value = uint64(p.UnpackByte())
			case 16:
				u.value = uint64(p.UnpackU16())
			case 32:
				u.value = uint64(p.UnpackU32())
			default:
				u.value = p.UnpackU64()
			}
			if p.Err != nil {
				return nil, fmt.Errorf("u%d: %w", bits, p.Err)
			}
			return u, nil
		}
		if other, ok := input.(*UInt); ok && other.bits == bits {
			u.value = other.value
			return u, nil
		}
		val, ok := toUint64(input)
		if !ok {
			return nil, inputErr(u.TypeName(), input)
		}
		if bits < 64 && val > 1<<bits-1 {
			return nil, fmt.Errorf("%w %s: %d out of range",
				scale.ErrInvalidInput, u.TypeName(), val)
		}
		u.value = val
		return u, nil
	}
}

// Value returns the wrapped integer.
func (u *UInt) Value() uint64 { return u.value }

func (u *UInt) Encode() []byte {
	p := scale.NewPacker(u.bits / 8)
	switch u.bits {
	case 8:
		p.PackByte(byte(u.value))
	case 16:
		p.PackU16(uint16(u.value))
	case 32:
		p.PackU32(uint32(u.value))
	default:
		p.PackU64(u.value)
	}
	return p.Bytes
}

func (u *UInt) EncodedLength() int { return u.bits / 8 }

func (u *UInt) IsEmpty() bool { return u.value == 0 }

func (u *UInt) Eq(other any) bool {
	if o, ok := other.(*UInt); ok {
		return o.bits == u.bits && o.value == u.value
	}
	if v, ok := toUint64(other); ok {
		return v == u.value
	}
	return false
}

func (u *UInt) ToHuman() any { return u.value }

func (u *UInt) ToJSON() any { return u.value }

func (u *UInt) TypeName() string { return fmt.Sprintf("u%d", u.bits) }

func (u *UInt) String() string { return strconv.FormatUint(u.value, 10) }
