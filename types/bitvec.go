// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/scale"
)

// BitVec is the bit-sequence codec: a compact bit count followed by the
// bits packed least-significant-first into ceil(n/8) bytes.
type BitVec struct {
	bits  int
	value []byte
}

// NewBitVec constructs a BitVec from wire bytes, a hex string, a []bool
// bit list, another BitVec, or nil for the empty sequence.
func NewBitVec(reg scale.Registry, input any) (scale.Codec, error) {
	v := &BitVec{}
	if input == nil {
		return v, nil
	}
	switch in := input.(type) {
	case *BitVec:
		v.bits = in.bits
		v.value = in.value
		return v, nil
	case []bool:
		v.bits = len(in)
		v.value = make([]byte, (len(in)+7)/8)
		for i, bit := range in {
			if bit {
				v.value[i/8] |= 1 << (i % 8)
			}
		}
		return v, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		n := p.UnpackCompactUint()
		if p.Err != nil {
			return nil, fmt.Errorf("BitVec: %w", p.Err)
		}
		if n > 8*DefaultMaxVecLen {
			return nil, fmt.Errorf("BitVec: %w: %d bits", scale.ErrBadLength, n)
		}
		v.bits = int(n)
		v.value = p.UnpackFixedBytes((v.bits + 7) / 8)
		if p.Err != nil {
			return nil, fmt.Errorf("BitVec: %w", p.Err)
		}
		return v, nil
	}
	return nil, inputErr("BitVec", input)
}

// Len returns the number of bits.
func (v *BitVec) Len() int { return v.bits }

// Bit returns the bit at position i.
func (v *BitVec) Bit(i int) bool {
	return v.value[i/8]&(1<<(i%8)) != 0
}

func (v *BitVec) Encode() []byte {
	p := scale.NewPacker(v.EncodedLength())
	p.PackCompactUint(uint64(v.bits))
	p.PackFixedBytes(v.value)
	return p.Bytes
}

func (v *BitVec) EncodedLength() int {
	return scale.CompactLen(uint64(v.bits)) + len(v.value)
}

func (v *BitVec) IsEmpty() bool { return v.bits == 0 }

func (v *BitVec) Eq(other any) bool {
	if o, ok := other.(*BitVec); ok {
		return o.bits == v.bits && bytesEq(v.value, o.value)
	}
	return false
}

func (v *BitVec) ToHuman() any { return v.String() }

func (v *BitVec) ToJSON() any { return scale.ToHex(v.Encode()) }

func (v *BitVec) TypeName() string { return "BitVec" }

func (v *BitVec) String() string {
	out := make([]byte, v.bits)
	for i := 0; i < v.bits; i++ {
		if v.Bit(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return "0b" + string(out)
}
