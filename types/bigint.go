// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"math/big"

	"github.com/luxfi/scale"
)

// BigInt is a fixed-width signed integer codec of 128 or 256 bits, encoded
// little-endian two's complement. uint256 has no signed type, so the value
// lives in a math/big integer.
type BigInt struct {
	value *big.Int
	bits  int
}

// NewBigInt returns a constructor for a 128 or 256 bit signed integer.
func NewBigInt(bits int) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		i := &BigInt{value: new(big.Int), bits: bits}
		if input == nil {
			return i, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			raw := p.UnpackFixedBytes(bits / 8)
			if p.Err != nil {
				return nil, fmt.Errorf("%s: %w", i.TypeName(), p.Err)
			}
			// wire is little-endian, big.Int wants big-endian
			be := make([]byte, len(raw))
			for j, b := range raw {
				be[len(raw)-1-j] = b
			}
			val := new(big.Int).SetBytes(be)
			if val.Bit(bits-1) == 1 {
				val.Sub(val, twosModulus(bits))
			}
			i.value = val
			return i, nil
		}
		if other, ok := input.(*BigInt); ok && other.bits == bits {
			i.value.Set(other.value)
			return i, nil
		}
		val, ok := toBigInt(input)
		if !ok {
			return nil, inputErr(i.TypeName(), input)
		}
		limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if val.Cmp(limit) >= 0 || val.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("%w %s: value out of range",
				scale.ErrInvalidInput, i.TypeName())
		}
		i.value = val
		return i, nil
	}
}

// twosModulus returns 2^bits.
func twosModulus(bits int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(bits))
}

// Value returns a copy of the wrapped integer.
func (i *BigInt) Value() *big.Int { return new(big.Int).Set(i.value) }

func (i *BigInt) Encode() []byte {
	tc := new(big.Int).Set(i.value)
	if tc.Sign() < 0 {
		tc.Add(tc, twosModulus(i.bits))
	}
	be := tc.FillBytes(make([]byte, i.bits/8))
	out := make([]byte, len(be))
	for j, b := range be {
		out[len(be)-1-j] = b
	}
	return out
}

func (i *BigInt) EncodedLength() int { return i.bits / 8 }

func (i *BigInt) IsEmpty() bool { return i.value.Sign() == 0 }

func (i *BigInt) Eq(other any) bool {
	if o, ok := other.(*BigInt); ok {
		return o.bits == i.bits && o.value.Cmp(i.value) == 0
	}
	if val, ok := toBigInt(other); ok {
		return val.Cmp(i.value) == 0
	}
	return false
}

func (i *BigInt) ToHuman() any { return i.value.String() }

// ToJSON returns the value as a number when it fits in 64 bits and as a
// decimal string otherwise.
func (i *BigInt) ToJSON() any {
	if i.value.IsInt64() {
		return i.value.Int64()
	}
	return i.value.String()
}

func (i *BigInt) TypeName() string { return fmt.Sprintf("i%d", i.bits) }

func (i *BigInt) String() string { return i.value.String() }
