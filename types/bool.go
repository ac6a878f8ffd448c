// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strconv"

	"github.com/luxfi/scale"
)

// Bool is the single-byte boolean codec. On the wire only 0x00 and 0x01 are
// valid; any other byte is a decode error.
type Bool struct {
	value bool
}

// NewBool constructs a Bool from any accepted input form.
func NewBool(reg scale.Registry, input any) (scale.Codec, error) {
	b := &Bool{}
	if input == nil {
		return b, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		b.value = p.UnpackBool()
		if p.Err != nil {
			return nil, fmt.Errorf("bool: %w", p.Err)
		}
		return b, nil
	}
	switch v := input.(type) {
	case bool:
		b.value = v
	case *Bool:
		b.value = v.value
	default:
		return nil, inputErr("bool", input)
	}
	return b, nil
}

// Value returns the wrapped bool.
func (b *Bool) Value() bool { return b.value }

func (b *Bool) Encode() []byte {
	if b.value {
		return []byte{1}
	}
	return []byte{0}
}

func (b *Bool) EncodedLength() int { return scale.BoolLen }

func (b *Bool) IsEmpty() bool { return !b.value }

func (b *Bool) Eq(other any) bool {
	switch v := other.(type) {
	case *Bool:
		return v.value == b.value
	case bool:
		return v == b.value
	}
	return false
}

func (b *Bool) ToHuman() any { return b.value }

func (b *Bool) ToJSON() any { return b.value }

func (b *Bool) TypeName() string { return "bool" }

func (b *Bool) String() string { return strconv.FormatBool(b.value) }
