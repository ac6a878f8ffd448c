// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/scale"
	"github.com/luxfi/scale/registry"
	"github.com/luxfi/scale/types"
)

func TestUIntRoundTrip(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	for _, name := range []string{"u8", "u16", "u32", "u64"} {
		val, err := reg.CreateType(name, 42)
		require.NoError(err, name)
		require.Equal(name, val.TypeName())

		enc := val.Encode()
		require.Equal(val.EncodedLength(), len(enc), name)

		back, err := reg.CreateType(name, enc)
		require.NoError(err, name)
		require.True(val.Eq(back), name)
		require.True(back.Eq(uint64(42)), name)
	}
}

func TestUIntRange(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	_, err := reg.CreateType("u8", 255)
	require.NoError(err)

	_, err = reg.CreateType("u8", 256)
	require.ErrorIs(err, scale.ErrInvalidInput)

	_, err = reg.CreateType("u16", -1)
	require.ErrorIs(err, scale.ErrInvalidInput)
}

func TestIntTwosComplement(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("i16", -2)
	require.NoError(err)
	require.Equal([]byte{0xfe, 0xff}, val.Encode())

	back, err := reg.CreateType("i16", val.Encode())
	require.NoError(err)
	require.True(back.Eq(-2))
	require.False(back.IsEmpty())
}

func TestBoolStrictDecode(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("bool", []byte{0x01})
	require.NoError(err)
	require.True(val.Eq(true))

	_, err = reg.CreateType("bool", []byte{0x02})
	require.ErrorIs(err, scale.ErrBadBool)
}

func TestTextByteLengthVsCharacters(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("Text", "中文")
	require.NoError(err)

	text := val.(*types.Text)
	require.Equal(7, text.EncodedLength()) // compact prefix + 6 UTF-8 bytes
	require.Equal(2, text.Length())        // 2 logical characters
	require.Equal(7, len(text.Encode()))

	back, err := reg.CreateType("Text", text.Encode())
	require.NoError(err)
	require.True(back.Eq("中文"))
}

func TestTextHexAndNil(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("Text", "foo")
	require.NoError(err)
	require.Equal("0x666f6f", val.(*types.Text).Hex())

	empty, err := reg.CreateType("Text", nil)
	require.NoError(err)
	require.True(empty.IsEmpty())
	require.Equal(1, empty.EncodedLength()) // just the zero length prefix
}

func TestBytesWireInput(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("Bytes", []byte{0x0c, 0x66, 0x6f, 0x6f})
	require.NoError(err)
	require.Equal("foo", val.String())
	require.Equal("0x666f6f", val.(*types.ByteVec).Hex())
	require.Equal([]byte{0x0c, 0x66, 0x6f, 0x6f}, val.Encode())
	require.Equal(4, val.EncodedLength())
}

func TestCompactCodec(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("Compact", 16384)
	require.NoError(err)
	require.Equal([]byte{0x02, 0x00, 0x01, 0x00}, val.Encode())

	back, err := reg.CreateType("Compact", val.Encode())
	require.NoError(err)
	require.True(back.Eq(16384))

	typed, err := reg.CreateType("Compact<u32>", 1)
	require.NoError(err)
	require.Equal("Compact<u32>", typed.TypeName())
	require.Equal([]byte{0x04}, typed.Encode())
}

func TestBigUIntWidths(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("u128", "340282366920938463463374607431768211455") // 2^128-1
	require.NoError(err)
	require.Equal(16, val.EncodedLength())

	back, err := reg.CreateType("u128", val.Encode())
	require.NoError(err)
	require.True(val.Eq(back))

	// 2^128 does not fit in u128 but fits in u256
	_, err = reg.CreateType("u128", "340282366920938463463374607431768211456")
	require.ErrorIs(err, scale.ErrInvalidInput)

	wide, err := reg.CreateType("u256", "340282366920938463463374607431768211456")
	require.NoError(err)
	require.Equal(32, wide.EncodedLength())
}

func TestBigIntWidths(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	// -1 is all ones in two's complement
	neg, err := reg.CreateType("i128", -1)
	require.NoError(err)
	require.Equal(bytes.Repeat([]byte{0xff}, 16), neg.Encode())

	back, err := reg.CreateType("i128", neg.Encode())
	require.NoError(err)
	require.True(neg.Eq(back))
	require.Equal(int64(-1), back.ToJSON())

	val, err := reg.CreateType("i128", "-170141183460469231731687303715884105728") // -2^127
	require.NoError(err)
	require.Equal(16, val.EncodedLength())
	require.Equal("-170141183460469231731687303715884105728", val.ToJSON())

	// 2^127 is one past the i128 maximum but fits in i256
	_, err = reg.CreateType("i128", "170141183460469231731687303715884105728")
	require.ErrorIs(err, scale.ErrInvalidInput)
	wide, err := reg.CreateType("i256", "170141183460469231731687303715884105728")
	require.NoError(err)
	require.Equal(32, wide.EncodedLength())
}

func TestHash256(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	val, err := reg.CreateType("H256", raw)
	require.NoError(err)
	require.Equal(raw, val.Encode())
	require.True(val.Eq(scale.ToHex(raw)))

	// the Hash alias resolves to the same codec
	aliased, err := reg.CreateType("Hash", raw)
	require.NoError(err)
	require.True(val.Eq(aliased))

	_, err = reg.CreateType("H256", []byte{0x01})
	require.ErrorIs(err, scale.ErrInsufficientLength)
}

func TestNull(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("Null", nil)
	require.NoError(err)
	require.Empty(val.Encode())
	require.Zero(val.EncodedLength())
	require.True(val.IsEmpty())
	require.Nil(val.ToJSON())
}

func TestBitVec(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	val, err := reg.CreateType("BitVec", []bool{true, false, true})
	require.NoError(err)
	require.Equal([]byte{0x0c, 0x05}, val.Encode()) // compact(3) + bits 101

	back, err := reg.CreateType("BitVec", val.Encode())
	require.NoError(err)
	require.True(val.Eq(back))
	require.True(back.(*types.BitVec).Bit(0))
	require.False(back.(*types.BitVec).Bit(1))
}
