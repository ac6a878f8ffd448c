// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scale implements a SCALE codec and a runtime type system on top
// of it. Values are encoded little-endian with no embedded type tags except
// where the format requires them (enum discriminants, sequence counts);
// the shape of every value is supplied out of band by a type registry that
// can be extended at runtime, including from chain-supplied metadata.
package scale

import (
	"errors"
)

// Common codec errors
var (
	ErrUnknownType      = errors.New("type not registered")
	ErrAliasCycle       = errors.New("alias cycle")
	ErrInvalidInput     = errors.New("invalid input for type")
	ErrWrongArity       = errors.New("wrong number of values")
	ErrUnknownVariant   = errors.New("unknown enum variant")
	ErrDuplicateKey     = errors.New("duplicate map key")
	ErrDuplicateElement = errors.New("duplicate set element")
	ErrBadBool          = errors.New("invalid boolean byte")
	ErrBadDescriptor    = errors.New("malformed type descriptor")
)

// Codec is the capability set every encodeable value implements. Instances
// are immutable after construction; every method is a pure function of the
// wrapped value.
type Codec interface {
	// Encode returns the SCALE encoding of the value.
	Encode() []byte

	// EncodedLength returns len(Encode()) without encoding.
	EncodedLength() int

	// IsEmpty reports whether the value equals its type's zero value.
	IsEmpty() bool

	// Eq reports structural equality. Comparing against a raw value of
	// compatible shape (a plain string for Text, a Go integer for UInt)
	// also succeeds.
	Eq(other any) bool

	// ToHuman returns a display-oriented projection. It is lossy and not
	// guaranteed to round-trip.
	ToHuman() any

	// ToJSON returns a machine-oriented projection that reconstructs the
	// same value when passed back through Registry.CreateType.
	ToJSON() any

	// TypeName returns the declared type name, e.g. "u32" or "Vec<u8>".
	TypeName() string

	String() string
}

// Constructor builds a codec instance from one of the uniformly accepted
// input forms: a byte slice, a *Packer (shared-buffer decode driven by a
// parent composite), a 0x-prefixed hex string, a JSON-shaped plain value,
// another Codec of compatible shape, or nil for the type's zero value.
type Constructor func(reg Registry, input any) (Codec, error)

// Registry maps type descriptors to constructors. Registration overwrites
// silently (last write wins); lookups are deterministic between writes.
type Registry interface {
	// Register adds or overwrites a constructor under the given name.
	Register(name string, ctor Constructor)

	// RegisterAlias records that alias resolves to target. Resolution is
	// transitive; cycles are reported by Resolve, not here.
	RegisterAlias(alias, target string)

	// RegisterTypes bulk-registers name -> descriptor definitions.
	RegisterTypes(defs map[string]string)

	// Get returns the constructor registered directly under name. It never
	// follows aliases and never mutates.
	Get(name string) (Constructor, bool)

	// Resolve follows aliases and parses composite descriptors (Vec<T>,
	// Option<T>, [T; N], tuples) down to a constructor.
	Resolve(descriptor string) (Constructor, error)

	// CreateType resolves descriptor and invokes the constructor on input.
	CreateType(descriptor string, input any) (Codec, error)

	// Fork returns a child registry that sees this registry's entries but
	// whose own registrations stay invisible to the parent.
	Fork() Registry
}
