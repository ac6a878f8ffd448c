// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/luxfi/scale"
)

// Raw is an unprefixed byte buffer. Its length is supplied by the parent
// composite, or equals the remaining buffer at top level.
type Raw struct {
	value []byte
}

// NewRaw returns a constructor for an unprefixed byte run of the given
// length. A negative length consumes the remaining buffer.
func NewRaw(length int) scale.Constructor {
	return func(reg scale.Registry, input any) (scale.Codec, error) {
		r := &Raw{}
		if input == nil {
			if length > 0 {
				r.value = make([]byte, length)
			}
			return r, nil
		}
		if p, ok, err := unpackerOf(input); ok {
			if err != nil {
				return nil, err
			}
			n := length
			if n < 0 {
				n = p.Remaining()
			}
			r.value = p.UnpackFixedBytes(n)
			if p.Err != nil {
				return nil, fmt.Errorf("Raw: %w", p.Err)
			}
			return r, nil
		}
		if other, ok := input.(*Raw); ok {
			r.value = other.value
			if length >= 0 && len(r.value) != length {
				return nil, fmt.Errorf("%w Raw: have %d bytes, want %d",
					scale.ErrInvalidInput, len(r.value), length)
			}
			return r, nil
		}
		return nil, inputErr("Raw", input)
	}
}

// Bytes returns a copy of the wrapped buffer.
func (r *Raw) Bytes() []byte { return append([]byte(nil), r.value...) }

// Hex returns the 0x-prefixed hex form of the content.
func (r *Raw) Hex() string { return scale.ToHex(r.value) }

func (r *Raw) Encode() []byte { return append([]byte(nil), r.value...) }

func (r *Raw) EncodedLength() int { return len(r.value) }

func (r *Raw) IsEmpty() bool {
	for _, b := range r.value {
		if b != 0 {
			return false
		}
	}
	return true
}

func (r *Raw) Eq(other any) bool { return bytesEq(r.value, other) }

func (r *Raw) ToHuman() any { return rawDisplay(r.value) }

func (r *Raw) ToJSON() any { return scale.ToHex(r.value) }

func (r *Raw) TypeName() string { return "Raw" }

func (r *Raw) String() string { return rawDisplay(r.value) }

// ByteVec is a compact-length-prefixed byte buffer (the format's "Bytes").
type ByteVec struct {
	value []byte
}

// NewBytes constructs a ByteVec. Byte-oriented inputs carry the compact
// length prefix; raw content can be supplied as an existing codec instance.
func NewBytes(reg scale.Registry, input any) (scale.Codec, error) {
	b := &ByteVec{}
	if input == nil {
		return b, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		b.value = p.UnpackBytes()
		if p.Err != nil {
			return nil, fmt.Errorf("Bytes: %w", p.Err)
		}
		return b, nil
	}
	switch v := input.(type) {
	case *ByteVec:
		b.value = v.value
		return b, nil
	case *Raw:
		b.value = v.value
		return b, nil
	}
	// JSON-shaped: a list of byte numbers
	if list, ok := asList(input); ok {
		buf := make([]byte, len(list))
		for i, item := range list {
			n, ok := toUint64(item)
			if !ok || n > 0xff {
				return nil, inputErr("Bytes", input)
			}
			buf[i] = byte(n)
		}
		b.value = buf
		return b, nil
	}
	return nil, inputErr("Bytes", input)
}

// Bytes returns a copy of the wrapped content, without the length prefix.
func (b *ByteVec) Bytes() []byte { return append([]byte(nil), b.value...) }

// Hex returns the 0x-prefixed hex form of the content, without the prefix.
func (b *ByteVec) Hex() string { return scale.ToHex(b.value) }

func (b *ByteVec) Encode() []byte {
	p := scale.NewPacker(b.EncodedLength())
	p.PackBytes(b.value)
	return p.Bytes
}

func (b *ByteVec) EncodedLength() int {
	return scale.CompactLen(uint64(len(b.value))) + len(b.value)
}

func (b *ByteVec) IsEmpty() bool { return len(b.value) == 0 }

func (b *ByteVec) Eq(other any) bool { return bytesEq(b.value, other) }

func (b *ByteVec) ToHuman() any { return rawDisplay(b.value) }

func (b *ByteVec) ToJSON() any { return scale.ToHex(b.value) }

func (b *ByteVec) TypeName() string { return "Bytes" }

// String returns the content as text when it is printable UTF-8 and as hex
// otherwise.
func (b *ByteVec) String() string { return rawDisplay(b.value) }

// bytesEq compares wrapped content against codec and raw byte-ish inputs.
func bytesEq(value []byte, other any) bool {
	switch v := other.(type) {
	case *Raw:
		return bytes.Equal(value, v.value)
	case *ByteVec:
		return bytes.Equal(value, v.value)
	case []byte:
		return bytes.Equal(value, v)
	case string:
		if scale.IsHex(v) {
			b, err := scale.FromHex(v)
			return err == nil && bytes.Equal(value, b)
		}
		return string(value) == v
	}
	return false
}

func rawDisplay(value []byte) string {
	if utf8.Valid(value) && isPrintable(value) {
		return string(value)
	}
	return scale.ToHex(value)
}

func isPrintable(value []byte) bool {
	for _, b := range value {
		if b < 0x20 && b != '\n' && b != '\t' {
			return false
		}
	}
	return true
}
