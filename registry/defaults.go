// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/luxfi/scale/types"
)

// Default returns a registry preloaded with every primitive codec and the
// common aliases. Callers that need chain-specific types should Fork it
// rather than mutate a shared instance.
func Default() *TypeRegistry {
	r := New()

	r.Register("u8", types.NewUInt(8))
	r.Register("u16", types.NewUInt(16))
	r.Register("u32", types.NewUInt(32))
	r.Register("u64", types.NewUInt(64))
	r.Register("u128", types.NewBigUInt(128))
	r.Register("u256", types.NewBigUInt(256))
	r.Register("i8", types.NewInt(8))
	r.Register("i16", types.NewInt(16))
	r.Register("i32", types.NewInt(32))
	r.Register("i64", types.NewInt(64))
	r.Register("i128", types.NewBigInt(128))
	r.Register("i256", types.NewBigInt(256))
	r.Register("bool", types.NewBool)
	r.Register("Null", types.NewNull)
	r.Register("Compact", types.NewCompact())
	r.Register("Bytes", types.NewBytes)
	r.Register("Text", types.NewText)
	r.Register("H256", types.NewHash256)
	r.Register("H512", types.NewHash512)
	r.Register("Raw", types.NewRaw(-1))
	r.Register("BitVec", types.NewBitVec)

	for alias, target := range map[string]string{
		"String":      "Text",
		"str":         "Text",
		"char":        "u32",
		"Hash":        "H256",
		"AccountId":   "H256",
		"Balance":     "u128",
		"BlockNumber": "u32",
		"Index":       "u32",
		"Moment":      "u64",
		"()":          "Null",
	} {
		r.RegisterAlias(alias, target)
	}

	return r
}
