// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/scale"
	"github.com/luxfi/scale/metadata"
	"github.com/luxfi/scale/registry"
	"github.com/luxfi/scale/types"
)

// blobWriter assembles test metadata blobs with the same packer the decoder
// reads them with.
type blobWriter struct {
	p *scale.Packer
}

func newBlob(version uint8) *blobWriter {
	b := &blobWriter{p: scale.NewPacker(256)}
	b.p.PackU32(metadata.MetadataMagic)
	b.p.PackByte(version)
	return b
}

func (b *blobWriter) compact(n uint64) { b.p.PackCompactUint(n) }

func (b *blobWriter) byte(v uint8) { b.p.PackByte(v) }

func (b *blobWriter) str(s string) { b.p.PackStr(s) }

func (b *blobWriter) bytes(v []byte) { b.p.PackBytes(v) }

func (b *blobWriter) done() []byte { return b.p.Bytes }

func (b *blobWriter) path(segs ...string) {
	b.compact(uint64(len(segs)))
	for _, s := range segs {
		b.str(s)
	}
}

// primitiveNode writes one v14 lookup entry for a primitive.
func (b *blobWriter) primitiveNode(id uint32, primIdx uint8) {
	b.compact(uint64(id))
	b.path()
	b.byte(uint8(metadata.KindPrimitive))
	b.byte(primIdx)
}

func (b *blobWriter) noPallets() { b.compact(0) }

const (
	primU32  = 5
	primU64  = 6
	primText = 2
	primI128 = 13
	primI256 = 14
)

func TestDecodeRejectsBadEnvelope(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	_, err := metadata.Decode(reg, []byte{0xde, 0xad, 0xbe, 0xef, 0x0e}, metadata.DecodeOptions{})
	require.ErrorIs(err, metadata.ErrBadMagic)

	_, err = metadata.Decode(reg, []byte{0x6d, 0x65}, metadata.DecodeOptions{})
	require.ErrorIs(err, metadata.ErrBadMagic)

	b := newBlob(12)
	_, err = metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.ErrorIs(err, metadata.ErrUnknownVersion)
}

func TestDecodePortable(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	b := newBlob(metadata.VersionPortable)
	b.compact(2) // lookup entries

	b.primitiveNode(0, primU32)

	// 1: composite pallet_balances::AccountData { free: 0, reserved: 0 }
	b.compact(1)
	b.path("pallet_balances", "AccountData")
	b.byte(uint8(metadata.KindComposite))
	b.compact(2)
	b.byte(1)
	b.str("free")
	b.compact(0)
	b.byte(1)
	b.str("reserved")
	b.compact(0)

	// one pallet with a storage map Account: 0 -> 1
	b.compact(1)
	b.str("Balances")
	b.byte(1) // has storage
	b.str("Balances")
	b.compact(1)
	b.str("Account")
	b.byte(uint8(metadata.StorageDefault))
	b.byte(1) // map entry
	b.compact(1)
	b.byte(uint8(metadata.HasherBlake2b128Concat))
	// key type 0, value type 1, fallback, one doc line
	b.compact(0)
	b.compact(1)
	b.bytes([]byte{0x00})
	b.compact(1)
	b.str("account balances")
	// no call, event, or error sections
	b.byte(0)
	b.byte(0)
	b.byte(0)
	b.compact(0)
	b.byte(5) // pallet index

	md, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)
	require.Equal(metadata.VersionPortable, md.Version)
	require.Equal(2, md.Graph.Len())
	require.Equal([]uint32{0, 1}, md.Graph.IDs())

	require.Len(md.Pallets, 1)
	pal := md.Pallets[0]
	require.Equal("Balances", pal.Name)
	require.Equal(uint8(5), pal.Index)
	require.Nil(pal.Calls)
	require.Len(pal.Storage, 1)
	entry := pal.Storage[0]
	require.Equal("Account", entry.Name)
	require.True(entry.IsMap)
	require.Equal([]metadata.Hasher{metadata.HasherBlake2b128Concat}, entry.Hashers)
	require.Equal(uint32(0), entry.KeyType)
	require.Equal(uint32(1), entry.ValueType)
	require.Equal([]byte{0x00}, entry.Fallback)
	require.Equal([]string{"account balances"}, entry.Docs)

	// the storage value type is now constructible by lookup name
	val, err := reg.CreateType(metadata.LookupName(entry.ValueType), map[string]any{
		"free":     3,
		"reserved": 4,
	})
	require.NoError(err)
	require.Equal([]byte{
		0x03, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
	}, val.Encode())
	require.Equal(map[string]any{"free": uint64(3), "reserved": uint64(4)}, val.ToJSON())

	// and by its declared path, full and short
	byPath, err := reg.CreateType("pallet_balances::AccountData", val.Encode())
	require.NoError(err)
	require.True(val.Eq(byPath))
	byShort, err := reg.CreateType("AccountData", val.Encode())
	require.NoError(err)
	require.True(val.Eq(byShort))
}

func TestDecodeSelfReferentialGraph(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	// 1 (Node) and 2 (Option-shaped variant) reference each other
	b := newBlob(metadata.VersionPortable)
	b.compact(3)

	b.primitiveNode(0, primU32)

	b.compact(1)
	b.path("Node")
	b.byte(uint8(metadata.KindComposite))
	b.compact(2)
	b.byte(1)
	b.str("value")
	b.compact(0)
	b.byte(1)
	b.str("next")
	b.compact(2)

	b.compact(2)
	b.path()
	b.byte(uint8(metadata.KindVariant))
	b.compact(2)
	b.str("None")
	b.byte(0)
	b.compact(0)
	b.str("Some")
	b.byte(1)
	b.compact(1)
	b.byte(0) // unnamed field
	b.compact(1)

	b.noPallets()

	md, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)
	require.Equal(3, md.Graph.Len())

	// Node{7, Some(Node{9, None})}
	wire := []byte{
		0x07, 0x00, 0x00, 0x00, 0x01,
		0x09, 0x00, 0x00, 0x00, 0x00,
	}
	val, err := reg.CreateType("Lookup1", wire)
	require.NoError(err)
	require.Equal(wire, val.Encode())

	outer := val.(*types.Struct)
	require.True(outer.Get("value").Eq(7))
	next := outer.Get("next").(*types.Enum)
	require.Equal("Some", next.Variant())
	inner := next.Value().(*types.Struct)
	require.True(inner.Get("value").Eq(9))
	require.Equal("None", inner.Get("next").(*types.Enum).Variant())
}

func TestDecodeSparseIDs(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	b := newBlob(metadata.VersionPortable)
	b.compact(2)
	b.primitiveNode(9, primU64)
	// 40: sequence of 9
	b.compact(40)
	b.path()
	b.byte(uint8(metadata.KindSequence))
	b.compact(9)
	b.noPallets()

	md, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)
	require.Equal([]uint32{9, 40}, md.Graph.IDs())

	val, err := reg.CreateType("Lookup40", []any{1})
	require.NoError(err)
	require.Equal([]byte{0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, val.Encode())
}

func TestDecodeDanglingReference(t *testing.T) {
	require := require.New(t)

	build := func() []byte {
		b := newBlob(metadata.VersionPortable)
		b.compact(2)
		// 0: sequence of a type the blob never defines
		b.compact(0)
		b.path()
		b.byte(uint8(metadata.KindSequence))
		b.compact(7)
		b.primitiveNode(1, primU32)
		b.noPallets()
		return b.done()
	}

	// lenient: the bad node is skipped, the good one still registers
	reg := registry.Default()
	md, err := metadata.Decode(reg, build(), metadata.DecodeOptions{})
	require.NoError(err)
	require.Equal(2, md.Graph.Len())
	_, err = reg.Resolve("Lookup0")
	require.ErrorIs(err, scale.ErrUnknownType)
	val, err := reg.CreateType("Lookup1", 6)
	require.NoError(err)
	require.True(val.Eq(6))

	// strict: the whole decode fails
	_, err = metadata.Decode(registry.Default(), build(), metadata.DecodeOptions{Strict: true})
	require.ErrorIs(err, metadata.ErrDanglingType)
}

func TestStrictAbortRegistersNothing(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	// the good node comes first; a strict failure on the later dangling
	// node must not leave it behind in the registry
	b := newBlob(metadata.VersionPortable)
	b.compact(2)
	b.primitiveNode(0, primU32)
	b.compact(1)
	b.path()
	b.byte(uint8(metadata.KindSequence))
	b.compact(9)
	b.noPallets()

	_, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{Strict: true})
	require.ErrorIs(err, metadata.ErrDanglingType)

	_, err = reg.Resolve("Lookup0")
	require.ErrorIs(err, scale.ErrUnknownType)
	_, err = reg.Resolve("Lookup1")
	require.ErrorIs(err, scale.ErrUnknownType)
}

func TestDecodeWidePrimitives(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	b := newBlob(metadata.VersionPortable)
	b.compact(2)
	b.primitiveNode(0, primI128)
	b.primitiveNode(1, primI256)
	b.noPallets()

	_, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)

	val, err := reg.CreateType("Lookup0", -1)
	require.NoError(err)
	require.Equal("i128", val.TypeName())
	require.Equal(16, val.EncodedLength())

	back, err := reg.CreateType("Lookup0", val.Encode())
	require.NoError(err)
	require.True(val.Eq(back))

	wide, err := reg.CreateType("Lookup1", 0)
	require.NoError(err)
	require.Equal("i256", wide.TypeName())
	require.Equal(32, wide.EncodedLength())
}

func TestDecodeMultiFieldVariant(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	b := newBlob(metadata.VersionPortable)
	b.compact(2)
	b.primitiveNode(0, primU32)

	// 1: Event with a two-field Transfer variant
	b.compact(1)
	b.path("Event")
	b.byte(uint8(metadata.KindVariant))
	b.compact(1)
	b.str("Transfer")
	b.byte(0)
	b.compact(2)
	b.byte(1)
	b.str("from")
	b.compact(0)
	b.byte(1)
	b.str("to")
	b.compact(0)

	b.noPallets()

	_, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)

	val, err := reg.CreateType("Event", map[string]any{
		"Transfer": map[string]any{"from": 1, "to": 2},
	})
	require.NoError(err)
	require.Equal([]byte{
		0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}, val.Encode())

	decoded, err := reg.CreateType("Lookup1", val.Encode())
	require.NoError(err)
	require.Equal(map[string]any{
		"Transfer": map[string]any{"from": uint64(1), "to": uint64(2)},
	}, decoded.ToJSON())
}

func TestDecodeNewtypeAndTuple(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	b := newBlob(metadata.VersionPortable)
	b.compact(3)
	b.primitiveNode(0, primU32)

	// 1: single unnamed field composite, a transparent newtype of 0
	b.compact(1)
	b.path("BlockNumber")
	b.byte(uint8(metadata.KindComposite))
	b.compact(1)
	b.byte(0)
	b.compact(0)

	// 2: tuple (0, 1)
	b.compact(2)
	b.path()
	b.byte(uint8(metadata.KindTuple))
	b.compact(2)
	b.compact(0)
	b.compact(1)

	b.noPallets()

	_, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)

	// the newtype encodes exactly as its inner type
	val, err := reg.CreateType("Lookup1", 7)
	require.NoError(err)
	require.Equal([]byte{0x07, 0x00, 0x00, 0x00}, val.Encode())
	require.Equal("u32", val.TypeName())

	pair, err := reg.CreateType("Lookup2", []any{1, 2})
	require.NoError(err)
	require.Equal([]byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}, pair.Encode())
}

func TestDecodeBitSequenceAndCompact(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	b := newBlob(metadata.VersionPortable)
	b.compact(3)
	b.primitiveNode(0, primU32)

	// 1: compact of 0
	b.compact(1)
	b.path()
	b.byte(uint8(metadata.KindCompact))
	b.compact(0)

	// 2: bit sequence, store/order ids point at 0
	b.compact(2)
	b.path()
	b.byte(uint8(metadata.KindBitSequence))
	b.compact(0)
	b.compact(0)

	b.noPallets()

	_, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)

	val, err := reg.CreateType("Lookup1", 64)
	require.NoError(err)
	require.Equal([]byte{0x01, 0x01}, val.Encode())

	bits, err := reg.CreateType("Lookup2", []bool{true})
	require.NoError(err)
	require.Equal("BitVec", bits.TypeName())
}

func TestDecodeLegacyPositional(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()

	// v13 entries carry no ids; position is identity
	b := newBlob(metadata.VersionLegacy)
	b.compact(2)

	b.path()
	b.byte(uint8(metadata.KindPrimitive))
	b.byte(primText)

	b.path()
	b.byte(uint8(metadata.KindSequence))
	b.compact(0)

	b.noPallets()

	md, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)
	require.Equal(metadata.VersionLegacy, md.Version)
	require.Equal([]uint32{0, 1}, md.Graph.IDs())

	val, err := reg.CreateType("Lookup1", []any{"hi"})
	require.NoError(err)
	require.Equal([]byte{0x04, 0x08, 0x68, 0x69}, val.Encode())
}

func TestLookupOverrideWins(t *testing.T) {
	require := require.New(t)
	reg := registry.Default()
	reg.RegisterLookupOverrides(map[string]string{
		"sp_core::crypto::AccountId32": "H256",
	})

	// AccountId32 arrives as an opaque composite; the override pins the
	// path to the richer local codec instead
	b := newBlob(metadata.VersionPortable)
	b.compact(2)
	b.primitiveNode(0, primU32)
	b.compact(1)
	b.path("sp_core", "crypto", "AccountId32")
	b.byte(uint8(metadata.KindComposite))
	b.compact(1)
	b.byte(0)
	b.compact(0)
	b.noPallets()

	_, err := metadata.Decode(reg, b.done(), metadata.DecodeOptions{})
	require.NoError(err)

	val, err := reg.CreateType("sp_core::crypto::AccountId32", make([]byte, 32))
	require.NoError(err)
	require.Equal("H256", val.TypeName())
}
