// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"math/big"

	"github.com/luxfi/scale"
)

// Compact is the variable-length integer codec. Encoding always picks the
// smallest valid size class; decoding accepts non-minimal encodings.
type Compact struct {
	value *big.Int
	name  string
}

// NewCompact returns the constructor for a bare Compact.
func NewCompact() scale.Constructor {
	return NewCompactOf("")
}

// NewCompactOf returns a constructor for Compact<inner>. The inner type only
// affects the reported type name; the wire form is identical for all widths.
func NewCompactOf(inner string) scale.Constructor {
	name := "Compact"
	if inner != "" {
		name = fmt.Sprintf("Compact<%s>", inner)
	}
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		c := &Compact{value: new(big.Int), name: name}
		if input == nil {
			return c, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			c.value = p.UnpackCompact()
			if p.Err != nil {
				return nil, fmt.Errorf("%s: %w", name, p.Err)
			}
			return c, nil
		}
		if other, ok := input.(*Compact); ok {
			c.value.Set(other.value)
			return c, nil
		}
		val, ok := toBigInt(input)
		if !ok {
			return nil, inputErr(name, input)
		}
		if val.Sign() < 0 {
			return nil, fmt.Errorf("%w %s: %v", scale.ErrInvalidInput, name, scale.ErrCompactNegative)
		}
		c.value = val
		return c, nil
	}
}

// BigInt returns a copy of the wrapped value.
func (c *Compact) BigInt() *big.Int { return new(big.Int).Set(c.value) }

// Uint64 returns the wrapped value, reporting whether it fits in 64 bits.
func (c *Compact) Uint64() (uint64, bool) {
	if !c.value.IsUint64() {
		return 0, false
	}
	return c.value.Uint64(), true
}

func (c *Compact) Encode() []byte {
	p := scale.NewPacker(scale.CompactLenBig(c.value))
	p.PackCompact(c.value)
	return p.Bytes
}

func (c *Compact) EncodedLength() int { return scale.CompactLenBig(c.value) }

func (c *Compact) IsEmpty() bool { return c.value.Sign() == 0 }

func (c *Compact) Eq(other any) bool {
	if o, ok := other.(*Compact); ok {
		return o.value.Cmp(c.value) == 0
	}
	if val, ok := toBigInt(other); ok {
		return val.Cmp(c.value) == 0
	}
	return false
}

func (c *Compact) ToHuman() any { return c.value.String() }

// ToJSON returns the value as a number when it fits in 64 bits and as a
// decimal string otherwise.
func (c *Compact) ToJSON() any {
	if c.value.IsUint64() {
		return c.value.Uint64()
	}
	return c.value.String()
}

func (c *Compact) TypeName() string { return c.name }

func (c *Compact) String() string { return c.value.String() }
