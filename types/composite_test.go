// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/scale"
	"github.com/luxfi/scale/registry"
	"github.com/luxfi/scale/types"
)

func newBlockReg() scale.Registry {
	reg := registry.Default()
	reg.Register("Header", types.NewStruct("Header", []types.Field{
		{Name: "number", Type: "BlockNumber"},
		{Name: "parent", Type: "Hash"},
	}))
	return reg
}

func TestStructFieldOrder(t *testing.T) {
	require := require.New(t)
	reg := newBlockReg()

	parent := make([]byte, 32)
	parent[0] = 0xaa

	fromList, err := reg.CreateType("Header", []any{7, parent})
	require.NoError(err)

	// the encoding is field-order concatenation regardless of input shape
	fromMap, err := reg.CreateType("Header", map[string]any{
		"parent": parent,
		"number": 7,
	})
	require.NoError(err)
	require.Equal(fromList.Encode(), fromMap.Encode())
	require.True(fromList.Eq(fromMap))

	want := append([]byte{0x07, 0x00, 0x00, 0x00}, parent...)
	require.Equal(want, fromList.Encode())
	require.Equal(36, fromList.EncodedLength())

	decoded, err := reg.CreateType("Header", fromList.Encode())
	require.NoError(err)
	require.True(decoded.Eq(fromList))

	header := decoded.(*types.Struct)
	require.True(header.Get("number").Eq(7))
	require.Nil(header.Get("missing"))
}

func TestStructArity(t *testing.T) {
	require := require.New(t)
	reg := newBlockReg()

	_, err := reg.CreateType("Header", []any{7})
	require.ErrorIs(err, scale.ErrWrongArity)
}

func TestStructAbsentKeysZero(t *testing.T) {
	require := require.New(t)
	reg := newBlockReg()

	val, err := reg.CreateType("Header", map[string]any{"number": 7})
	require.NoError(err)
	header := val.(*types.Struct)
	require.True(header.Get("parent").IsEmpty())

	// key matching ignores case and underscores
	again, err := reg.CreateType("Header", map[string]any{"Number": 7})
	require.NoError(err)
	require.True(val.Eq(again))
}

func TestStructReuse(t *testing.T) {
	require := require.New(t)
	reg := newBlockReg()

	val, err := reg.CreateType("Header", []any{7, make([]byte, 32)})
	require.NoError(err)

	again, err := reg.CreateType("Header", val)
	require.NoError(err)
	require.True(val.Eq(again))
	require.Same(val.(*types.Struct).Get("number"), again.(*types.Struct).Get("number"))
}

func TestEnumTags(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()
	reg.Register("Phase", types.NewEnum("Phase", []types.Variant{
		{Name: "ApplyExtrinsic", Type: "u32"},
		{Name: "Finalization"},
		{Name: "Initialization"},
	}))

	val, err := reg.CreateType("Phase", map[string]any{"ApplyExtrinsic": 2})
	require.NoError(err)
	require.Equal([]byte{0x00, 0x02, 0x00, 0x00, 0x00}, val.Encode())

	unit, err := reg.CreateType("Phase", "Finalization")
	require.NoError(err)
	require.Equal([]byte{0x01}, unit.Encode())
	require.Equal("Finalization", unit.ToJSON())

	decoded, err := reg.CreateType("Phase", val.Encode())
	require.NoError(err)
	phase := decoded.(*types.Enum)
	require.Equal("ApplyExtrinsic", phase.Variant())
	require.Equal(uint8(0), phase.Tag())
	require.True(phase.Value().Eq(2))
	require.Equal(map[string]any{"ApplyExtrinsic": uint64(2)}, phase.ToJSON())

	// unknown discriminants fail both on decode and by name
	_, err = reg.CreateType("Phase", []byte{0x03})
	require.ErrorIs(err, scale.ErrUnknownVariant)
	_, err = reg.CreateType("Phase", "Disputed")
	require.ErrorIs(err, scale.ErrUnknownVariant)
}

func TestEnumExplicitIndices(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()
	reg.Register("Sparse", types.NewEnum("Sparse", []types.Variant{
		{Name: "High", Index: 9},
		{Name: "Low", Index: 1},
	}))

	val, err := reg.CreateType("Sparse", "High")
	require.NoError(err)
	require.Equal([]byte{0x09}, val.Encode())

	decoded, err := reg.CreateType("Sparse", []byte{0x01})
	require.NoError(err)
	require.Equal("Low", decoded.(*types.Enum).Variant())

	_, err = reg.CreateType("Sparse", []byte{0x00})
	require.ErrorIs(err, scale.ErrUnknownVariant)
}

func TestVec(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("Vec<u16>", []any{4, 8, 15})
	require.NoError(err)
	require.Equal([]byte{0x0c, 0x04, 0x00, 0x08, 0x00, 0x0f, 0x00}, val.Encode())
	require.Equal("Vec<u16>", val.TypeName())

	decoded, err := reg.CreateType("Vec<u16>", val.Encode())
	require.NoError(err)
	require.True(val.Eq(decoded))
	vec := decoded.(*types.Vec)
	require.Equal(3, vec.Len())
	require.True(vec.At(2).Eq(15))

	empty, err := reg.CreateType("Vec<u16>", nil)
	require.NoError(err)
	require.True(empty.IsEmpty())
	require.Equal([]byte{0x00}, empty.Encode())
}

func TestVecFixed(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("[u16; 2]", []any{1, 2})
	require.NoError(err)
	// no length prefix for fixed-size arrays
	require.Equal([]byte{0x01, 0x00, 0x02, 0x00}, val.Encode())
	require.Equal("[u16; 2]", val.TypeName())

	_, err = reg.CreateType("[u16; 2]", []any{1})
	require.ErrorIs(err, scale.ErrWrongArity)

	// [u8; N] is raw bytes
	raw, err := reg.CreateType("[u8; 4]", []byte{1, 2, 3, 4})
	require.NoError(err)
	require.Equal([]byte{1, 2, 3, 4}, raw.Encode())
}

func TestTuple(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("(u8, bool)", []any{5, true})
	require.NoError(err)
	require.Equal([]byte{0x05, 0x01}, val.Encode())
	require.Equal(2, val.EncodedLength())

	decoded, err := reg.CreateType("(u8, bool)", val.Encode())
	require.NoError(err)
	require.True(val.Eq(decoded))
	require.True(decoded.(*types.Tuple).At(1).Eq(true))

	_, err = reg.CreateType("(u8, bool)", []any{5})
	require.ErrorIs(err, scale.ErrWrongArity)
}

func TestOption(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	none, err := reg.CreateType("Option<u32>", nil)
	require.NoError(err)
	require.Equal([]byte{0x00}, none.Encode())
	require.True(none.IsEmpty())
	require.Nil(none.ToJSON())

	some, err := reg.CreateType("Option<u32>", 42)
	require.NoError(err)
	require.Equal([]byte{0x01, 0x2a, 0x00, 0x00, 0x00}, some.Encode())
	require.Equal(uint64(42), some.ToJSON())

	decoded, err := reg.CreateType("Option<u32>", some.Encode())
	require.NoError(err)
	require.True(some.Eq(decoded))
	require.True(decoded.(*types.Option).Unwrap().Eq(42))

	_, err = reg.CreateType("Option<u32>", []byte{0x02})
	require.ErrorIs(err, scale.ErrInvalidInput)
}

func TestOptionBool(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	// Option<bool> is the one-byte special case
	none, err := reg.CreateType("Option<bool>", nil)
	require.NoError(err)
	require.Equal([]byte{0x00}, none.Encode())

	yes, err := reg.CreateType("Option<bool>", true)
	require.NoError(err)
	require.Equal([]byte{0x01}, yes.Encode())
	require.Equal(1, yes.EncodedLength())

	no, err := reg.CreateType("Option<bool>", false)
	require.NoError(err)
	require.Equal([]byte{0x02}, no.Encode())

	decoded, err := reg.CreateType("Option<bool>", []byte{0x02})
	require.NoError(err)
	require.False(decoded.(*types.OptionBool).Value())
	require.False(decoded.(*types.OptionBool).IsNone())

	_, err = reg.CreateType("Option<bool>", []byte{0x03})
	require.ErrorIs(err, scale.ErrInvalidInput)
}

func TestSetRejectsDuplicates(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("BTreeSet<u32>", []any{3, 1, 2})
	require.NoError(err)
	set := val.(*types.Set)
	require.Equal(3, set.Len())
	// insertion order is preserved
	require.True(set.At(0).Eq(3))
	require.True(set.Has(1))
	require.False(set.Has(9))

	_, err = reg.CreateType("BTreeSet<u32>", []any{1, 2, 1})
	require.ErrorIs(err, scale.ErrDuplicateElement)

	decoded, err := reg.CreateType("BTreeSet<u32>", val.Encode())
	require.NoError(err)
	require.True(val.Eq(decoded))

	// duplicates on the wire are rejected too
	dup, _ := reg.CreateType("Vec<u32>", []any{1, 1})
	_, err = reg.CreateType("BTreeSet<u32>", dup.Encode())
	require.ErrorIs(err, scale.ErrDuplicateElement)
}

func TestMap(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("BTreeMap<Text, u32>", map[string]any{
		"b": 2,
		"a": 1,
	})
	require.NoError(err)
	m := val.(*types.Map)
	require.Equal(2, m.Len())
	// plain-object input is entered in sorted key order
	require.True(m.KeyAt(0).Eq("a"))
	require.True(m.Get("b").Eq(2))
	require.Nil(m.Get("c"))

	decoded, err := reg.CreateType("BTreeMap<Text, u32>", val.Encode())
	require.NoError(err)
	require.True(val.Eq(decoded))
	require.Equal(map[string]any{"a": uint64(1), "b": uint64(2)}, decoded.ToJSON())

	// duplicate keys on the wire are rejected
	pairs, _ := reg.CreateType("Vec<(Text, u32)>", []any{
		[]any{"a", 1},
		[]any{"a", 2},
	})
	_, err = reg.CreateType("BTreeMap<Text, u32>", pairs.Encode())
	require.ErrorIs(err, scale.ErrDuplicateKey)
}

func TestResult(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	ok, err := reg.CreateType("Result<u32, Text>", map[string]any{"Ok": 9})
	require.NoError(err)
	require.Equal([]byte{0x00, 0x09, 0x00, 0x00, 0x00}, ok.Encode())
	require.Equal(map[string]any{"Ok": uint64(9)}, ok.ToJSON())

	failed, err := reg.CreateType("Result<u32, Text>", map[string]any{"Err": "boom"})
	require.NoError(err)
	require.Equal(uint8(1), failed.(*types.Enum).Tag())

	decoded, err := reg.CreateType("Result<u32, Text>", failed.Encode())
	require.NoError(err)
	require.True(failed.Eq(decoded))
}

func TestSharedBufferDecode(t *testing.T) {
	require := require.New(t)
	reg := newBlockReg()

	// two values decoded back to back from one packer
	header, err := reg.CreateType("Header", []any{7, make([]byte, 32)})
	require.NoError(err)
	count, err := reg.CreateType("Compact", 3)
	require.NoError(err)

	p := scale.PackerFromBytes(append(header.Encode(), count.Encode()...))
	first, err := reg.CreateType("Header", p)
	require.NoError(err)
	second, err := reg.CreateType("Compact", p)
	require.NoError(err)

	require.True(header.Eq(first))
	require.True(count.Eq(second))
	require.Zero(p.Remaining())
}
