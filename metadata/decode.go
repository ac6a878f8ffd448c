// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata

import (
	"errors"
	"fmt"

	"github.com/luxfi/log"

	"github.com/luxfi/scale"
)

// MetadataMagic is the envelope marker, "meta" read little-endian.
const MetadataMagic = uint32(0x6174656d)

// Supported envelope versions.
const (
	// VersionLegacy is the dense legacy layout: lookup ids are implicit
	// from position.
	VersionLegacy = uint8(13)
	// VersionPortable is the current layout with explicit, possibly
	// sparse, type ids.
	VersionPortable = uint8(14)
)

var (
	ErrBadMagic       = errors.New("metadata: bad magic")
	ErrUnknownVersion = errors.New("metadata: unknown version")
	ErrDanglingType   = errors.New("metadata: dangling type reference")
)

// Metadata is a fully decoded blob: the portable type graph plus the
// auxiliary module descriptor tables.
type Metadata struct {
	Version uint8
	Graph   *TypeGraph
	Pallets []Pallet
}

// DecodeOptions control decoding policy.
type DecodeOptions struct {
	// Strict aborts the whole decode when any type node fails to resolve.
	// When false (the default) a bad node is skipped with a warning and
	// unrelated nodes still resolve.
	Strict bool
	// Log receives per-node warnings. Nil means no logging.
	Log log.Logger
}

// decoders dispatches on the envelope version.
var decoders = map[uint8]func(*scale.Packer) (*Metadata, error){
	VersionLegacy:   decodeV13,
	VersionPortable: decodeV14,
}

// Decode parses a metadata blob and registers a constructor for every
// resolvable graph node into reg. Envelope errors are fatal and leave the
// registry untouched; registration happens only after the full blob has
// decoded.
func Decode(reg scale.Registry, blob []byte, opts DecodeOptions) (*Metadata, error) {
	if opts.Log == nil {
		opts.Log = log.NewNoOpLogger()
	}

	p := scale.PackerFromBytes(blob)
	magic := p.UnpackU32()
	if p.Err != nil || magic != MetadataMagic {
		return nil, fmt.Errorf("%w: 0x%08x", ErrBadMagic, magic)
	}
	version := p.UnpackByte()
	if p.Err != nil {
		return nil, fmt.Errorf("%w: truncated envelope", ErrBadMagic)
	}
	decode, ok := decoders[version]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}

	md, err := decode(p)
	if err != nil {
		return nil, err
	}
	md.Version = version

	if err := registerGraph(reg, md.Graph, opts); err != nil {
		return nil, err
	}
	return md, nil
}

// decodeV14 parses the portable layout: every lookup entry declares its id.
func decodeV14(p *scale.Packer) (*Metadata, error) {
	md := &Metadata{Graph: newTypeGraph()}

	count := p.UnpackCompactUint()
	if p.Err != nil {
		return nil, fmt.Errorf("metadata lookup: %w", p.Err)
	}
	for i := uint64(0); i < count; i++ {
		id := uint32(p.UnpackCompactUint())
		t, err := unpackType(p, id)
		if err != nil {
			return nil, fmt.Errorf("metadata type %d: %w", id, err)
		}
		md.Graph.add(t)
	}

	return md, decodePallets(p, md)
}

// decodeV13 parses the legacy layout: ids are dense and implicit from the
// entry's position. The result normalizes into the same graph shape.
func decodeV13(p *scale.Packer) (*Metadata, error) {
	md := &Metadata{Graph: newTypeGraph()}

	count := p.UnpackCompactUint()
	if p.Err != nil {
		return nil, fmt.Errorf("metadata lookup: %w", p.Err)
	}
	for i := uint64(0); i < count; i++ {
		t, err := unpackType(p, uint32(i))
		if err != nil {
			return nil, fmt.Errorf("metadata type %d: %w", i, err)
		}
		md.Graph.add(t)
	}

	return md, decodePallets(p, md)
}

func decodePallets(p *scale.Packer, md *Metadata) error {
	count := p.UnpackCompactUint()
	if p.Err != nil {
		return fmt.Errorf("metadata pallets: %w", p.Err)
	}
	for i := uint64(0); i < count; i++ {
		pal, err := unpackPallet(p)
		if err != nil {
			return err
		}
		md.Pallets = append(md.Pallets, pal)
	}
	return nil
}

// unpackType parses one lookup entry body: path, then the def variant.
func unpackType(p *scale.Packer, id uint32) (*PortableType, error) {
	t := &PortableType{ID: id}

	pathLen := p.UnpackCompactUint()
	if p.Err != nil {
		return nil, p.Err
	}
	for i := uint64(0); i < pathLen; i++ {
		t.Path = append(t.Path, p.UnpackStr())
		if p.Err != nil {
			return nil, p.Err
		}
	}

	kind := TypeDefKind(p.UnpackByte())
	if p.Err != nil {
		return nil, p.Err
	}
	t.Def.Kind = kind
	switch kind {
	case KindComposite:
		fields, err := unpackFields(p)
		if err != nil {
			return nil, err
		}
		t.Def.Fields = fields
	case KindVariant:
		n := p.UnpackCompactUint()
		for i := uint64(0); i < n && p.Err == nil; i++ {
			v := VariantDef{Name: p.UnpackStr(), Index: p.UnpackByte()}
			fields, err := unpackFields(p)
			if err != nil {
				return nil, err
			}
			v.Fields = fields
			t.Def.Variants = append(t.Def.Variants, v)
		}
	case KindSequence, KindCompact:
		t.Def.Elem = uint32(p.UnpackCompactUint())
	case KindArray:
		t.Def.Len = p.UnpackU32()
		t.Def.Elem = uint32(p.UnpackCompactUint())
	case KindTuple:
		n := p.UnpackCompactUint()
		for i := uint64(0); i < n && p.Err == nil; i++ {
			t.Def.Tuple = append(t.Def.Tuple, uint32(p.UnpackCompactUint()))
		}
	case KindPrimitive:
		idx := p.UnpackByte()
		if p.Err == nil {
			name, ok := primitiveName(idx)
			if !ok {
				return nil, fmt.Errorf("%w: primitive index %d", scale.ErrUnknownType, idx)
			}
			t.Def.Primitive = name
		}
	case KindBitSequence:
		t.Def.BitStore = uint32(p.UnpackCompactUint())
		t.Def.BitOrder = uint32(p.UnpackCompactUint())
	default:
		return nil, fmt.Errorf("%w: type def kind %d", scale.ErrUnknownType, kind)
	}
	return t, p.Err
}

func unpackFields(p *scale.Packer) ([]FieldDef, error) {
	n := p.UnpackCompactUint()
	if p.Err != nil {
		return nil, p.Err
	}
	fields := make([]FieldDef, 0, n)
	for i := uint64(0); i < n; i++ {
		var f FieldDef
		hasName := p.UnpackByte()
		if p.Err != nil {
			return nil, p.Err
		}
		if hasName == 1 {
			f.Name = p.UnpackStr()
		}
		f.Type = uint32(p.UnpackCompactUint())
		if p.Err != nil {
			return nil, p.Err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// primitiveName maps a primitive def index to a registered type name.
func primitiveName(idx uint8) (string, bool) {
	names := []string{
		"bool", "char", "Text", "u8", "u16", "u32", "u64", "u128", "u256",
		"i8", "i16", "i32", "i64", "i128", "i256",
	}
	if int(idx) >= len(names) {
		return "", false
	}
	return names[idx], true
}
