// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scale

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	safemath "github.com/luxfi/math"
)

// Common errors
var (
	ErrInsufficientLength = errors.New("packing: insufficient length")
	ErrNegativeLength     = errors.New("packing: negative length")
	ErrBadLength          = errors.New("packing: bad length")
	ErrOverflow           = errors.New("packing: overflow")
)

// DefaultMaxSize caps the Packer's initial allocation (1 MiB).
const DefaultMaxSize = 1024 * 1024

// Packer reads and writes SCALE wire bytes. All multi-byte integers are
// little-endian. The first error encountered sticks in Err and turns every
// subsequent operation into a no-op.
type Packer struct {
	Bytes  []byte
	Offset int
	Err    error
}

// NewPacker returns a new Packer with the given size hint
func NewPacker(sizeHint int) *Packer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	// Avoid huge upfront allocations; capacity will grow as needed.
	if sizeHint > DefaultMaxSize {
		sizeHint = DefaultMaxSize
	}
	return &Packer{
		Bytes:  make([]byte, 0, sizeHint),
		Offset: 0,
	}
}

// PackerFromBytes returns a Packer initialized with the given bytes
func PackerFromBytes(b []byte) *Packer {
	return &Packer{
		Bytes:  b,
		Offset: 0,
	}
}

// Remaining returns the number of bytes remaining to read
func (p *Packer) Remaining() int {
	return len(p.Bytes) - p.Offset
}

// Errored returns true if there's been an error
func (p *Packer) Errored() bool {
	return p.Err != nil
}

// expand ensures capacity for n more bytes
func (p *Packer) expand(n int) {
	if p.Err != nil {
		return
	}
	needed64, err := safemath.Add(uint64(p.Offset), uint64(n))
	if err != nil || needed64 > uint64(math.MaxInt) {
		p.Err = ErrOverflow
		return
	}
	needed := int(needed64)
	if needed > cap(p.Bytes) {
		newCap := max(cap(p.Bytes)*2, needed)
		newBytes := make([]byte, len(p.Bytes), newCap)
		copy(newBytes, p.Bytes)
		p.Bytes = newBytes
	}
	if needed > len(p.Bytes) {
		p.Bytes = p.Bytes[:needed]
	}
}

// checkRead sets ErrInsufficientLength unless n more bytes can be read.
func (p *Packer) checkRead(n int) bool {
	if p.Err != nil {
		return false
	}
	if n < 0 {
		p.Err = ErrNegativeLength
		return false
	}
	end, err := safemath.Add(uint64(p.Offset), uint64(n))
	if err != nil || end > uint64(len(p.Bytes)) {
		p.Err = fmt.Errorf("%w: need %d bytes at offset %d of %d",
			ErrInsufficientLength, n, p.Offset, len(p.Bytes))
		return false
	}
	return true
}

// PackByte packs a byte
func (p *Packer) PackByte(val byte) {
	p.expand(1)
	if p.Err != nil {
		return
	}
	p.Bytes[p.Offset] = val
	p.Offset++
}

// UnpackByte unpacks a byte
func (p *Packer) UnpackByte() byte {
	if !p.checkRead(1) {
		return 0
	}
	val := p.Bytes[p.Offset]
	p.Offset++
	return val
}

// PackU16 packs a uint16
func (p *Packer) PackU16(val uint16) {
	p.expand(U16Len)
	if p.Err != nil {
		return
	}
	binary.LittleEndian.PutUint16(p.Bytes[p.Offset:], val)
	p.Offset += U16Len
}

// UnpackU16 unpacks a uint16
func (p *Packer) UnpackU16() uint16 {
	if !p.checkRead(U16Len) {
		return 0
	}
	val := binary.LittleEndian.Uint16(p.Bytes[p.Offset:])
	p.Offset += U16Len
	return val
}

// PackU32 packs a uint32
func (p *Packer) PackU32(val uint32) {
	p.expand(U32Len)
	if p.Err != nil {
		return
	}
	binary.LittleEndian.PutUint32(p.Bytes[p.Offset:], val)
	p.Offset += U32Len
}

// UnpackU32 unpacks a uint32
func (p *Packer) UnpackU32() uint32 {
	if !p.checkRead(U32Len) {
		return 0
	}
	val := binary.LittleEndian.Uint32(p.Bytes[p.Offset:])
	p.Offset += U32Len
	return val
}

// PackU64 packs a uint64
func (p *Packer) PackU64(val uint64) {
	p.expand(U64Len)
	if p.Err != nil {
		return
	}
	binary.LittleEndian.PutUint64(p.Bytes[p.Offset:], val)
	p.Offset += U64Len
}

// UnpackU64 unpacks a uint64
func (p *Packer) UnpackU64() uint64 {
	if !p.checkRead(U64Len) {
		return 0
	}
	val := binary.LittleEndian.Uint64(p.Bytes[p.Offset:])
	p.Offset += U64Len
	return val
}

// PackBool packs a bool as a single 0/1 byte
func (p *Packer) PackBool(val bool) {
	if val {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

// UnpackBool unpacks a bool. Any byte other than 0 or 1 is an error.
func (p *Packer) UnpackBool() bool {
	b := p.UnpackByte()
	if p.Err != nil {
		return false
	}
	if b > 1 {
		p.Err = fmt.Errorf("%w: 0x%02x", ErrBadBool, b)
		return false
	}
	return b == 1
}

// PackFixedBytes packs a byte slice with no length prefix
func (p *Packer) PackFixedBytes(val []byte) {
	p.expand(len(val))
	if p.Err != nil {
		return
	}
	copy(p.Bytes[p.Offset:], val)
	p.Offset += len(val)
}

// UnpackFixedBytes unpacks n bytes with no length prefix
func (p *Packer) UnpackFixedBytes(n int) []byte {
	if !p.checkRead(n) {
		return nil
	}
	val := make([]byte, n)
	copy(val, p.Bytes[p.Offset:p.Offset+n])
	p.Offset += n
	return val
}

// PackBytes packs a byte slice with a compact length prefix
func (p *Packer) PackBytes(val []byte) {
	p.PackCompactUint(uint64(len(val)))
	p.PackFixedBytes(val)
}

// UnpackBytes unpacks a compact-length-prefixed byte slice
func (p *Packer) UnpackBytes() []byte {
	length := p.UnpackCompactUint()
	if p.Err != nil {
		return nil
	}
	if length > uint64(p.Remaining()) {
		p.Err = fmt.Errorf("%w: declared %d bytes, %d remain",
			ErrInsufficientLength, length, p.Remaining())
		return nil
	}
	return p.UnpackFixedBytes(int(length))
}

// PackStr packs a string as compact-length-prefixed UTF-8 bytes
func (p *Packer) PackStr(val string) {
	p.PackCompactUint(uint64(len(val)))
	p.PackFixedBytes([]byte(val))
}

// UnpackStr unpacks a compact-length-prefixed UTF-8 string
func (p *Packer) UnpackStr() string {
	return string(p.UnpackBytes())
}
