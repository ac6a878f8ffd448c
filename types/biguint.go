// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/luxfi/scale"
)

// BigUInt is a fixed-width unsigned integer codec of 128 or 256 bits,
// encoded little-endian.
type BigUInt struct {
	value *uint256.Int
	bits  int
}

// NewBigUInt returns a constructor for a 128 or 256 bit unsigned integer.
func NewBigUInt(bits int) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		u := &BigUInt{value: new(uint256.Int), bits: bits}
		if input == nil {
			return u, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			raw := p.UnpackFixedBytes(bits / 8)
			if p.Err != nil {
				return nil, fmt.Errorf("%s: %w", u.TypeName(), p.Err)
			}
			// wire is little-endian, uint256 wants big-endian
			be := make([]byte, len(raw))
			for i, b := range raw {
				be[len(raw)-1-i] = b
			}
			u.value.SetBytes(be)
			return u, nil
		}
		if other, ok := input.(*BigUInt); ok && other.bits == bits {
			u.value.Set(other.value)
			return u, nil
		}
		raw, ok := toBigInt(input)
		if !ok {
			return nil, inputErr(u.TypeName(), input)
		}
		if raw.Sign() < 0 {
			return nil, fmt.Errorf("%w %s: negative value",
				scale.ErrInvalidInput, u.TypeName())
		}
		val, overflow := uint256.FromBig(raw)
		if overflow || val.BitLen() > bits {
			return nil, fmt.Errorf("%w %s: value out of range",
				scale.ErrInvalidInput, u.TypeName())
		}
		u.value = val
		return u, nil
	}
}

// Value returns the wrapped integer.
func (u *BigUInt) Value() *uint256.Int { return u.value.Clone() }

func (u *BigUInt) Encode() []byte {
	be := u.value.Bytes32()
	out := make([]byte, u.bits/8)
	for i := range out {
		out[i] = be[31-i]
	}
	return out
}

func (u *BigUInt) EncodedLength() int { return u.bits / 8 }

func (u *BigUInt) IsEmpty() bool { return u.value.IsZero() }

func (u *BigUInt) Eq(other any) bool {
	if o, ok := other.(*BigUInt); ok {
		return o.bits == u.bits && o.value.Eq(u.value)
	}
	if raw, ok := toBigInt(other); ok {
		val, overflow := uint256.FromBig(raw)
		return !overflow && val.Eq(u.value)
	}
	return false
}

func (u *BigUInt) ToHuman() any { return u.value.Dec() }

// ToJSON returns the value as a number when it fits in 64 bits and as a
// decimal string otherwise.
func (u *BigUInt) ToJSON() any {
	if u.value.IsUint64() {
		return u.value.Uint64()
	}
	return u.value.Dec()
}

func (u *BigUInt) TypeName() string { return fmt.Sprintf("u%d", u.bits) }

func (u *BigUInt) String() string { return u.value.Dec() }
