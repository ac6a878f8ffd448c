// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/scale"
)

// Null is the zero-byte unit codec.
type Null struct{}

// NewNull constructs a Null. Every input is accepted and ignored; a unit
// value carries no information.
func NewNull(reg scale.Registry, input any) (scale.Codec, error) {
	return &Null{}, nil
}

func (n *Null) Encode() []byte { return []byte{} }

func (n *Null) EncodedLength() int { return 0 }

func (n *Null) IsEmpty() bool { return true }

func (n *Null) Eq(other any) bool {
	if other == nil {
		return true
	}
	_, ok := other.(*Null)
	return ok
}

func (n *Null) ToHuman() any { return nil }

func (n *Null) ToJSON() any { return nil }

func (n *Null) TypeName() string { return "Null" }

func (n *Null) String() string { return "" }
