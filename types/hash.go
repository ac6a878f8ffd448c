// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"fmt"

	"github.com/luxfi/ids"

	"github.com/luxfi/scale"
)

// Hash256 is a 32-byte fixed hash codec (H256), backed by ids.ID.
type Hash256 struct {
	value ids.ID
}

// NewHash256 constructs a Hash256 from exactly 32 bytes, a hex string,
// another Hash256, an ids.ID, or nil for the empty hash.
func NewHash256(reg scale.Registry, input any) (scale.Codec, error) {
	h := &Hash256{value: ids.Empty}
	if input == nil {
		return h, nil
	}
	switch v := input.(type) {
	case *Hash256:
		h.value = v.value
		return h, nil
	case ids.ID:
		h.value = v
		return h, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		raw := p.UnpackFixedBytes(scale.Hash256Len)
		if p.Err != nil {
			return nil, fmt.Errorf("H256: %w", p.Err)
		}
		id, err := ids.ToID(raw)
		if err != nil {
			return nil, fmt.Errorf("H256: %w", err)
		}
		h.value = id
		return h, nil
	}
	return nil, inputErr("H256", input)
}

// ID returns the wrapped hash.
func (h *Hash256) ID() ids.ID { return h.value }

// Hex returns the 0x-prefixed hex form of the hash.
func (h *Hash256) Hex() string { return scale.ToHex(h.value[:]) }

func (h *Hash256) Encode() []byte { return append([]byte(nil), h.value[:]...) }

func (h *Hash256) EncodedLength() int { return scale.Hash256Len }

func (h *Hash256) IsEmpty() bool { return h.value == ids.Empty }

func (h *Hash256) Eq(other any) bool {
	switch v := other.(type) {
	case *Hash256:
		return v.value == h.value
	case ids.ID:
		return v == h.value
	case []byte:
		return bytes.Equal(v, h.value[:])
	case string:
		b, err := scale.FromHex(v)
		return err == nil && bytes.Equal(b, h.value[:])
	}
	return false
}

func (h *Hash256) ToHuman() any { return h.Hex() }

func (h *Hash256) ToJSON() any { return h.Hex() }

func (h *Hash256) TypeName() string { return "H256" }

func (h *Hash256) String() string { return h.Hex() }

// Hash512 is a 64-byte fixed hash codec (H512).
type Hash512 struct {
	value [scale.Hash512Len]byte
}

// NewHash512 constructs a Hash512 from exactly 64 bytes, a hex string,
// another Hash512, or nil for the empty hash.
func NewHash512(reg scale.Registry, input any) (scale.Codec, error) {
	h := &Hash512{}
	if input == nil {
		return h, nil
	}
	if other, ok := input.(*Hash512); ok {
		h.value = other.value
		return h, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		raw := p.UnpackFixedBytes(scale.Hash512Len)
		if p.Err != nil {
			return nil, fmt.Errorf("H512: %w", p.Err)
		}
		copy(h.value[:], raw)
		return h, nil
	}
	return nil, inputErr("H512", input)
}

// Hex returns the 0x-prefixed hex form of the hash.
func (h *Hash512) Hex() string { return scale.ToHex(h.value[:]) }

func (h *Hash512) Encode() []byte { return append([]byte(nil), h.value[:]...) }

func (h *Hash512) EncodedLength() int { return scale.Hash512Len }

func (h *Hash512) IsEmpty() bool { return h.value == [scale.Hash512Len]byte{} }

func (h *Hash512) Eq(other any) bool {
	switch v := other.(type) {
	case *Hash512:
		return v.value == h.value
	case []byte:
		return bytes.Equal(v, h.value[:])
	case string:
		b, err := scale.FromHex(v)
		return err == nil && bytes.Equal(b, h.value[:])
	}
	return false
}

func (h *Hash512) ToHuman() any { return h.Hex() }

func (h *Hash512) ToJSON() any { return h.Hex() }

func (h *Hash512) TypeName() string { return "H512" }

func (h *Hash512) String() string { return h.Hex() }
