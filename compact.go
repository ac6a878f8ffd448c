// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scale

import (
	"errors"
	"fmt"
	"math/big"
)

// Compact integer mode tags, carried in the low two bits of the first byte.
const (
	compactModeSingle = 0 // 1 byte, values 0..2^6-1
	compactModeTwo    = 1 // 2 bytes, values 0..2^14-1
	compactModeFour   = 2 // 4 bytes, values 0..2^30-1
	compactModeBig    = 3 // length-prefixed, values 0..2^536-1

	compactSingleMax = 1<<6 - 1
	compactTwoMax    = 1<<14 - 1
	compactFourMax   = 1<<30 - 1

	// compactMaxBigLen is the largest payload of the big form: the first
	// byte stores (len-4) in six bits, so len tops out at 4+63 = 67 bytes.
	compactMaxBigLen = 67
)

// Compact encoding errors
var (
	ErrCompactNegative = errors.New("compact: negative value")
	ErrCompactTooLarge = errors.New("compact: value exceeds 2^536-1")
)

// CompactLen returns the encoded length of val in the canonical compact form.
func CompactLen(val uint64) int {
	switch {
	case val <= compactSingleMax:
		return 1
	case val <= compactTwoMax:
		return 2
	case val <= compactFourMax:
		return 4
	default:
		return 1 + byteLen(val)
	}
}

// CompactLenBig returns the encoded length of val in the canonical form.
// Negative or oversized values report length 0.
func CompactLenBig(val *big.Int) int {
	if val == nil {
		return 1
	}
	if val.Sign() < 0 || val.BitLen() > 8*compactMaxBigLen {
		return 0
	}
	if val.IsUint64() {
		return CompactLen(val.Uint64())
	}
	return 1 + (val.BitLen()+7)/8
}

// PackCompactUint packs val using the smallest valid compact mode.
func (p *Packer) PackCompactUint(val uint64) {
	switch {
	case val <= compactSingleMax:
		p.PackByte(byte(val << 2))
	case val <= compactTwoMax:
		p.PackU16(uint16(val<<2 | compactModeTwo))
	case val <= compactFourMax:
		p.PackU32(uint32(val<<2 | compactModeFour))
	default:
		n := byteLen(val)
		p.PackByte(byte((n-4)<<2 | compactModeBig))
		for i := 0; i < n; i++ {
			p.PackByte(byte(val >> (8 * i)))
		}
	}
}

// PackCompact packs an arbitrary-precision value using the smallest valid
// compact mode. Values above 2^536-1 or below zero error.
func (p *Packer) PackCompact(val *big.Int) {
	if p.Err != nil {
		return
	}
	if val == nil {
		p.PackByte(0)
		return
	}
	if val.Sign() < 0 {
		p.Err = ErrCompactNegative
		return
	}
	if val.IsUint64() {
		p.PackCompactUint(val.Uint64())
		return
	}
	n := (val.BitLen() + 7) / 8
	if n > compactMaxBigLen {
		p.Err = ErrCompactTooLarge
		return
	}
	p.PackByte(byte((n-4)<<2 | compactModeBig))
	buf := val.Bytes() // big-endian, exactly n bytes
	for i := len(buf) - 1; i >= 0; i-- {
		p.PackByte(buf[i])
	}
}

// UnpackCompact unpacks a compact integer of any size. Non-minimal but
// well-formed encodings decode successfully.
func (p *Packer) UnpackCompact() *big.Int {
	first := p.UnpackByte()
	if p.Err != nil {
		return nil
	}
	switch first & 3 {
	case compactModeSingle:
		return new(big.Int).SetUint64(uint64(first >> 2))
	case compactModeTwo:
		second := p.UnpackByte()
		if p.Err != nil {
			return nil
		}
		return new(big.Int).SetUint64(uint64(first)>>2 | uint64(second)<<6)
	case compactModeFour:
		rest := p.UnpackFixedBytes(3)
		if p.Err != nil {
			return nil
		}
		val := uint64(first) >> 2
		for i, b := range rest {
			val |= uint64(b) << (6 + 8*i)
		}
		return new(big.Int).SetUint64(val)
	default:
		n := int(first>>2) + 4
		if n > compactMaxBigLen {
			p.Err = fmt.Errorf("%w: %d byte payload", ErrCompactTooLarge, n)
			return nil
		}
		buf := p.UnpackFixedBytes(n)
		if p.Err != nil {
			return nil
		}
		// big.Int wants big-endian; the wire is little-endian.
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
		return new(big.Int).SetBytes(buf)
	}
}

// UnpackCompactUint unpacks a compact integer that must fit in a uint64.
func (p *Packer) UnpackCompactUint() uint64 {
	val := p.UnpackCompact()
	if p.Err != nil {
		return 0
	}
	if !val.IsUint64() {
		p.Err = fmt.Errorf("%w: %s does not fit in 64 bits", ErrOverflow, val)
		return 0
	}
	return val.Uint64()
}

// byteLen returns the minimal number of bytes holding val. val > 2^30 here,
// so the result is always in 4..8.
func byteLen(val uint64) int {
	n := 0
	for val > 0 {
		n++
		val >>= 8
	}
	return n
}
