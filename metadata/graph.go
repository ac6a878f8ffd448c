// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metadata decodes versioned, self-describing metadata blobs into a
// portable type graph and registers codec constructors for every graph node
// into a type registry. The blob is itself SCALE-encoded; decoding is
// bootstrapped from the fixed schema implemented by hand here.
package metadata

import (
	"sort"
)

// TypeDefKind discriminates portable type definition nodes. The values are
// the wire tags of the def variant.
type TypeDefKind uint8

const (
	KindComposite TypeDefKind = iota
	KindVariant
	KindSequence
	KindArray
	KindTuple
	KindPrimitive
	KindCompact
	KindBitSequence
)

func (k TypeDefKind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindVariant:
		return "variant"
	case KindSequence:
		return "sequence"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindPrimitive:
		return "primitive"
	case KindCompact:
		return "compact"
	case KindBitSequence:
		return "bitsequence"
	default:
		return "unknown"
	}
}

// FieldDef is one named (or positional, when Name is empty) member of a
// composite or variant node, referencing its type by portable id.
type FieldDef struct {
	Name string
	Type uint32
}

// VariantDef is one tagged alternative of a variant node.
type VariantDef struct {
	Name   string
	Index  uint8
	Fields []FieldDef
}

// TypeDef is the kind-discriminated body of a portable type node.
type TypeDef struct {
	Kind TypeDefKind

	Primitive string       // KindPrimitive
	Elem      uint32       // KindSequence, KindArray, KindCompact
	Len       uint32       // KindArray
	Fields    []FieldDef   // KindComposite
	Variants  []VariantDef // KindVariant
	Tuple     []uint32     // KindTuple
	BitStore  uint32       // KindBitSequence
	BitOrder  uint32       // KindBitSequence
}

// PortableType is one node of the portable type graph.
type PortableType struct {
	ID   uint32
	Path []string
	Def  TypeDef
}

// TypeGraph is the decoded portable type graph, keyed by declared id. Ids
// are not necessarily contiguous or ordered; the graph may contain cycles.
// It is immutable once decoding returns.
type TypeGraph struct {
	nodes map[uint32]*PortableType
}

func newTypeGraph() *TypeGraph {
	return &TypeGraph{nodes: make(map[uint32]*PortableType)}
}

func (g *TypeGraph) add(t *PortableType) {
	g.nodes[t.ID] = t
}

// Get returns the node with the given id.
func (g *TypeGraph) Get(id uint32) (*PortableType, bool) {
	t, ok := g.nodes[id]
	return t, ok
}

// Len returns the node count.
func (g *TypeGraph) Len() int { return len(g.nodes) }

// IDs returns every node id in ascending order.
func (g *TypeGraph) IDs() []uint32 {
	ids := make([]uint32, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// refs returns every type id a def references.
func (d *TypeDef) refs() []uint32 {
	switch d.Kind {
	case KindSequence, KindArray, KindCompact:
		return []uint32{d.Elem}
	case KindTuple:
		return d.Tuple
	case KindComposite:
		out := make([]uint32, len(d.Fields))
		for i, f := range d.Fields {
			out[i] = f.Type
		}
		return out
	case KindVariant:
		var out []uint32
		for _, v := range d.Variants {
			for _, f := range v.Fields {
				out = append(out, f.Type)
			}
		}
		return out
	default:
		return nil
	}
}
