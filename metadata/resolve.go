// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata

import (
	"fmt"
	"strings"

	"github.com/luxfi/log"

	"github.com/luxfi/scale"
	"github.com/luxfi/scale/registry"
	"github.com/luxfi/scale/types"
)

// LookupName returns the stable synthetic name a graph node registers
// under, so values can be created with either this name or the node's
// declared path.
func LookupName(id uint32) string {
	return fmt.Sprintf("Lookup%d", id)
}

// registerGraph registers a constructor for every resolvable node. Child
// references stay symbolic ("Lookup<n>" descriptors) and resolve through
// the registry on first use, so cyclic graphs never recurse at
// registration time. Every node's references are checked before anything
// registers, so a Strict failure leaves the registry untouched.
func registerGraph(reg scale.Registry, g *TypeGraph, opts DecodeOptions) error {
	var errs scale.Errs
	dangling := make(map[uint32]bool)
	for _, id := range g.IDs() {
		t, _ := g.Get(id)
		if missing := missingRefs(g, t); len(missing) > 0 {
			dangling[id] = true
			if opts.Strict {
				errs.Add(fmt.Errorf("%w: type %d references %v", ErrDanglingType, id, missing))
			}
		}
	}
	if errs.Errored() {
		return errs.Err
	}

	for _, id := range g.IDs() {
		t, _ := g.Get(id)
		if dangling[id] {
			opts.Log.Warn("skipping unresolvable metadata type",
				log.Uint32("id", id),
				log.String("kind", t.Def.Kind.String()),
				log.String("path", strings.Join(t.Path, "::")),
			)
			continue
		}
		registerNode(reg, t)
	}
	return nil
}

func missingRefs(g *TypeGraph, t *PortableType) []uint32 {
	var missing []uint32
	for _, ref := range t.Def.refs() {
		if _, ok := g.Get(ref); !ok {
			missing = append(missing, ref)
		}
	}
	return missing
}

// registerNode registers one node under its synthetic lookup name and,
// when the node declares a path, under the joined path as well.
func registerNode(reg scale.Registry, t *PortableType) {
	name := LookupName(t.ID)
	display := displayName(t)

	switch t.Def.Kind {
	case KindPrimitive:
		reg.RegisterAlias(name, t.Def.Primitive)
	case KindCompact:
		reg.Register(name, types.NewCompactOf(LookupName(t.Def.Elem)))
	case KindSequence:
		reg.Register(name, types.NewVec(LookupName(t.Def.Elem)))
	case KindArray:
		reg.Register(name, types.NewVecFixed(LookupName(t.Def.Elem), int(t.Def.Len)))
	case KindTuple:
		members := make([]string, len(t.Def.Tuple))
		for i, id := range t.Def.Tuple {
			members[i] = LookupName(id)
		}
		reg.Register(name, types.NewTuple(members))
	case KindComposite:
		reg.Register(name, compositeCtor(display, t.Def.Fields))
	case KindVariant:
		variants := make([]types.Variant, len(t.Def.Variants))
		for i, v := range t.Def.Variants {
			variants[i] = types.Variant{
				Name:  v.Name,
				Index: v.Index,
				Type:  variantPayload(reg, name, v),
			}
		}
		reg.Register(name, types.NewEnum(display, variants))
	case KindBitSequence:
		reg.RegisterAlias(name, "BitVec")
	}

	registerPath(reg, t, name)
}

// compositeCtor maps a composite def onto a struct, a tuple (all fields
// unnamed) or a transparent newtype (single unnamed field).
func compositeCtor(display string, fields []FieldDef) scale.Constructor {
	named := false
	for _, f := range fields {
		if f.Name != "" {
			named = true
			break
		}
	}
	switch {
	case !named && len(fields) == 1:
		inner := LookupName(fields[0].Type)
		return func(reg scale.Registry, input any) (scale.Codec, error) {
			return reg.CreateType(inner, input)
		}
	case !named:
		members := make([]string, len(fields))
		for i, f := range fields {
			members[i] = LookupName(f.Type)
		}
		return types.NewTuple(members)
	default:
		structFields := make([]types.Field, len(fields))
		for i, f := range fields {
			fname := f.Name
			if fname == "" {
				fname = fmt.Sprintf("field%d", i)
			}
			structFields[i] = types.Field{Name: fname, Type: LookupName(f.Type)}
		}
		return types.NewStruct(display, structFields)
	}
}

// variantPayload returns the payload descriptor for one variant: empty for
// unit variants, the referenced type for a single unnamed field, and a
// synthetic registered type for anything richer.
func variantPayload(reg scale.Registry, enumName string, v VariantDef) string {
	switch {
	case len(v.Fields) == 0:
		return ""
	case len(v.Fields) == 1 && v.Fields[0].Name == "":
		return LookupName(v.Fields[0].Type)
	default:
		synthetic := enumName + "." + v.Name
		reg.Register(synthetic, compositeCtor(synthetic, v.Fields))
		return synthetic
	}
}

// registerPath aliases the node's declared path (and its last segment) to
// the lookup name, honoring any chain-specific lookup override.
func registerPath(reg scale.Registry, t *PortableType, name string) {
	if len(t.Path) == 0 {
		return
	}
	full := strings.Join(t.Path, "::")

	if tr, ok := reg.(*registry.TypeRegistry); ok {
		if target, found := tr.LookupOverride(full); found {
			reg.RegisterAlias(full, target)
			return
		}
	}
	reg.RegisterAlias(full, name)

	last := t.Path[len(t.Path)-1]
	if _, taken := reg.Get(last); !taken && last != full {
		reg.RegisterAlias(last, name)
	}
}

func displayName(t *PortableType) string {
	if len(t.Path) == 0 {
		return LookupName(t.ID)
	}
	return t.Path[len(t.Path)-1]
}
