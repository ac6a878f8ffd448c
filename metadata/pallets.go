// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata

import (
	"fmt"

	"github.com/luxfi/scale"
)

// StorageModifier says how an absent storage value reads.
type StorageModifier uint8

const (
	// StorageOptional reads as None when absent.
	StorageOptional StorageModifier = iota
	// StorageDefault reads as the entry's fallback value when absent.
	StorageDefault
)

// Hasher identifies the hashing algorithm of a storage map key.
type Hasher uint8

const (
	HasherBlake2b128 Hasher = iota
	HasherBlake2b256
	HasherBlake2b128Concat
	HasherTwox128
	HasherTwox256
	HasherTwox64Concat
	HasherIdentity
)

// StorageEntry describes one storage item. Type ids reference the portable
// type graph and are preserved exactly as decoded.
type StorageEntry struct {
	Name     string
	Modifier StorageModifier

	// Plain entries set ValueType only; map entries also carry Hashers and
	// KeyType.
	IsMap     bool
	Hashers   []Hasher
	KeyType   uint32
	ValueType uint32

	Fallback []byte
	Docs     []string
}

// Constant describes one module constant: a name, a type id and the
// SCALE-encoded value.
type Constant struct {
	Name  string
	Type  uint32
	Value []byte
	Docs  []string
}

// Pallet is one runtime module's descriptor tables. Call, event and error
// types are ids of variant nodes in the graph; nil when the module declares
// none. These records are handed to the decoration layer unmodified.
type Pallet struct {
	Name          string
	Index         uint8
	StoragePrefix string
	Storage       []StorageEntry
	Calls         *uint32
	Events        *uint32
	Errors        *uint32
	Constants     []Constant
}

func unpackDocs(p *scale.Packer) []string {
	n := p.UnpackCompactUint()
	if p.Err != nil {
		return nil
	}
	docs := make([]string, 0, n)
	for i := uint64(0); i < n; i++ {
		docs = append(docs, p.UnpackStr())
		if p.Err != nil {
			return nil
		}
	}
	return docs
}

func unpackOptionalID(p *scale.Packer) *uint32 {
	present := p.UnpackByte()
	if p.Err != nil || present == 0 {
		return nil
	}
	id := uint32(p.UnpackCompactUint())
	if p.Err != nil {
		return nil
	}
	return &id
}

func unpackStorageEntry(p *scale.Packer) (StorageEntry, error) {
	var e StorageEntry
	e.Name = p.UnpackStr()
	e.Modifier = StorageModifier(p.UnpackByte())
	kind := p.UnpackByte()
	switch kind {
	case 0:
		e.ValueType = uint32(p.UnpackCompactUint())
	case 1:
		e.IsMap = true
		n := p.UnpackCompactUint()
		for i := uint64(0); i < n && p.Err == nil; i++ {
			e.Hashers = append(e.Hashers, Hasher(p.UnpackByte()))
		}
		e.KeyType = uint32(p.UnpackCompactUint())
		e.ValueType = uint32(p.UnpackCompactUint())
	default:
		if p.Err == nil {
			return e, fmt.Errorf("%w: storage entry kind %d", scale.ErrInvalidInput, kind)
		}
	}
	e.Fallback = p.UnpackBytes()
	e.Docs = unpackDocs(p)
	return e, p.Err
}

func unpackPallet(p *scale.Packer) (Pallet, error) {
	var pal Pallet
	pal.Name = p.UnpackStr()

	hasStorage := p.UnpackByte()
	if p.Err != nil {
		return pal, p.Err
	}
	if hasStorage == 1 {
		pal.StoragePrefix = p.UnpackStr()
		n := p.UnpackCompactUint()
		for i := uint64(0); i < n && p.Err == nil; i++ {
			entry, err := unpackStorageEntry(p)
			if err != nil {
				return pal, fmt.Errorf("pallet %s: storage %s: %w", pal.Name, entry.Name, err)
			}
			pal.Storage = append(pal.Storage, entry)
		}
	}

	pal.Calls = unpackOptionalID(p)
	pal.Events = unpackOptionalID(p)
	pal.Errors = unpackOptionalID(p)

	n := p.UnpackCompactUint()
	for i := uint64(0); i < n && p.Err == nil; i++ {
		c := Constant{
			Name: p.UnpackStr(),
			Type: uint32(p.UnpackCompactUint()),
		}
		c.Value = p.UnpackBytes()
		c.Docs = unpackDocs(p)
		pal.Constants = append(pal.Constants, c)
	}

	pal.Index = p.UnpackByte()
	if p.Err != nil {
		return pal, fmt.Errorf("pallet %s: %w", pal.Name, p.Err)
	}
	return pal, nil
}
