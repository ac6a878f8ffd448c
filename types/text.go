// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/luxfi/scale"
)

// Text is a UTF-8 string codec, encoded as a compact length prefix followed
// by the UTF-8 bytes. EncodedLength counts UTF-8 bytes plus the prefix, not
// characters; Length counts grapheme clusters.
type Text struct {
	value string
}

// NewText constructs a Text. []byte and *Packer inputs carry the compact
// length prefix; a 0x-hex string is the raw UTF-8 content; any other string
// is taken verbatim; nil decodes to the empty text.
func NewText(reg scale.Registry, input any) (scale.Codec, error) {
	t := &Text{}
	if input == nil {
		return t, nil
	}
	switch v := input.(type) {
	case string:
		if scale.IsHex(v) {
			b, err := scale.FromHex(v)
			if err != nil {
				return nil, err
			}
			t.value = string(b)
		} else {
			t.value = v
		}
		return t, nil
	case *Text:
		t.value = v.value
		return t, nil
	case fmt.Stringer:
		t.value = v.String()
		return t, nil
	}
	if p, ok, err := unpackerOf(input); ok {
		if err != nil {
			return nil, err
		}
		t.value = p.UnpackStr()
		if p.Err != nil {
			return nil, fmt.Errorf("Text: %w", p.Err)
		}
		return t, nil
	}
	return nil, inputErr("Text", input)
}

// Value returns the wrapped string.
func (t *Text) Value() string { return t.value }

// Length returns the number of grapheme clusters, not bytes. "中文" has
// Length 2 and EncodedLength 7.
func (t *Text) Length() int { return uniseg.GraphemeClusterCount(t.value) }

// Hex returns the 0x-prefixed hex form of the UTF-8 content, without the
// length prefix.
func (t *Text) Hex() string { return scale.ToHex([]byte(t.value)) }

func (t *Text) Encode() []byte {
	p := scale.NewPacker(t.EncodedLength())
	p.PackStr(t.value)
	return p.Bytes
}

func (t *Text) EncodedLength() int {
	return scale.CompactLen(uint64(len(t.value))) + len(t.value)
}

func (t *Text) IsEmpty() bool { return len(t.value) == 0 }

func (t *Text) Eq(other any) bool {
	switch v := other.(type) {
	case *Text:
		return v.value == t.value
	case string:
		return v == t.value
	case fmt.Stringer:
		return v.String() == t.value
	}
	return false
}

func (t *Text) ToHuman() any { return t.value }

func (t *Text) ToJSON() any { return t.value }

func (t *Text) TypeName() string { return "Text" }

func (t *Text) String() string { return t.value }
