// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry implements the mutable type registry: the catalogue
// mapping type descriptors to codec constructors. Registration is expected
// during setup and metadata ingestion; steady-state resolution is read-only
// and cached.
package registry

import (
	"fmt"
	"sync"

	"github.com/luxfi/cache"
	"github.com/luxfi/cache/lru"

	"github.com/luxfi/scale"
)

// defaultResolutionCacheSize bounds the descriptor -> constructor cache.
const defaultResolutionCacheSize = 1024

// TypeRegistry implements scale.Registry. A forked registry reads through
// to its parent but keeps its own registrations invisible to it.
type TypeRegistry struct {
	parent *TypeRegistry

	lock    sync.RWMutex
	types   map[string]scale.Constructor
	aliases map[string]string

	// chain-specific extension data, snapshotted on fork
	signedExtensions []string
	lookupOverrides  map[string]string

	// generation counts this registry's writes; the cache is trusted only
	// while the summed generation of the whole parent chain matches the
	// one it was built against, so a parent write also invalidates every
	// forked child's cache.
	generation uint64
	cacheGen   uint64
	resolved   cache.Cacher[string, scale.Constructor]
}

// New returns an empty registry.
func New() *TypeRegistry {
	return &TypeRegistry{
		types:           make(map[string]scale.Constructor),
		aliases:         make(map[string]string),
		lookupOverrides: make(map[string]string),
		resolved:        lru.NewCache[string, scale.Constructor](defaultResolutionCacheSize),
	}
}

// Register adds or overwrites a constructor. Last write wins.
func (r *TypeRegistry) Register(name string, ctor scale.Constructor) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.types[name] = ctor
	r.invalidate()
}

// RegisterAlias records that alias resolves to target.
func (r *TypeRegistry) RegisterAlias(alias, target string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.aliases[alias] = target
	r.invalidate()
}

// RegisterTypes bulk-registers name -> descriptor definitions. Descriptors
// are parsed lazily at resolution time, so definitions may reference each
// other and types registered later.
func (r *TypeRegistry) RegisterTypes(defs map[string]string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for name, def := range defs {
		r.aliases[name] = def
	}
	r.invalidate()
}

// invalidate marks every cached resolution stale, in this registry and in
// any forked child reading through it. Callers hold the write lock.
func (r *TypeRegistry) invalidate() {
	r.generation++
}

// chainGen sums the write generations along the parent chain.
func (r *TypeRegistry) chainGen() uint64 {
	r.lock.RLock()
	gen := r.generation
	r.lock.RUnlock()
	if r.parent != nil {
		gen += r.parent.chainGen()
	}
	return gen
}

// resolutionCache returns the cache, recreating it when any registry along
// the parent chain has been written since the cache was built.
func (r *TypeRegistry) resolutionCache() cache.Cacher[string, scale.Constructor] {
	gen := r.chainGen()

	r.lock.RLock()
	if gen == r.cacheGen {
		resolved := r.resolved
		r.lock.RUnlock()
		return resolved
	}
	r.lock.RUnlock()

	r.lock.Lock()
	defer r.lock.Unlock()
	if gen != r.cacheGen {
		r.resolved = lru.NewCache[string, scale.Constructor](defaultResolutionCacheSize)
		r.cacheGen = gen
	}
	return r.resolved
}

// Get returns the constructor registered directly under name, checking
// parents. It never follows aliases.
func (r *TypeRegistry) Get(name string) (scale.Constructor, bool) {
	r.lock.RLock()
	ctor, ok := r.types[name]
	r.lock.RUnlock()
	if ok {
		return ctor, true
	}
	if r.parent != nil {
		return r.parent.Get(name)
	}
	return nil, false
}

// Resolve follows aliases and parses composite descriptors down to a
// constructor. Resolution is cached per registry until the next write.
func (r *TypeRegistry) Resolve(descriptor string) (scale.Constructor, error) {
	resolved := r.resolutionCache()
	if ctor, ok := resolved.Get(descriptor); ok {
		return ctor, nil
	}

	target, err := r.followAliases(descriptor)
	if err != nil {
		return nil, err
	}
	ctor, ok := r.Get(target)
	if !ok {
		ctor, err = parseDescriptor(r, target)
		if err != nil {
			return nil, err
		}
	}

	resolved.Put(descriptor, ctor)
	return ctor, nil
}

// followAliases resolves alias chains transitively, erroring on cycles.
func (r *TypeRegistry) followAliases(name string) (string, error) {
	seen := map[string]struct{}{name: {}}
	for {
		target, ok := r.aliasTarget(name)
		if !ok {
			return name, nil
		}
		if _, cycle := seen[target]; cycle {
			return "", fmt.Errorf("%w: %q", scale.ErrAliasCycle, name)
		}
		seen[target] = struct{}{}
		name = target
	}
}

func (r *TypeRegistry) aliasTarget(name string) (string, bool) {
	r.lock.RLock()
	target, ok := r.aliases[name]
	r.lock.RUnlock()
	if ok {
		return target, true
	}
	if r.parent != nil {
		return r.parent.aliasTarget(name)
	}
	return "", false
}

// CreateType resolves descriptor and invokes the constructor on input.
func (r *TypeRegistry) CreateType(descriptor string, input any) (scale.Codec, error) {
	ctor, err := r.Resolve(descriptor)
	if err != nil {
		return nil, err
	}
	return ctor(r, input)
}

// Fork returns a child registry. The child sees this registry's entries;
// nothing registered into the child is visible here. The chain-specific
// extension tables are snapshotted at fork time.
func (r *TypeRegistry) Fork() scale.Registry {
	r.lock.RLock()
	defer r.lock.RUnlock()

	child := New()
	child.parent = r
	child.signedExtensions = append([]string(nil), r.signedExtensions...)
	for k, v := range r.lookupOverrides {
		child.lookupOverrides[k] = v
	}
	return child
}

// RegisterSignedExtensions appends chain-specific signed extension names.
func (r *TypeRegistry) RegisterSignedExtensions(names ...string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.signedExtensions = append(r.signedExtensions, names...)
}

// SignedExtensions returns the registered signed extension names in order.
func (r *TypeRegistry) SignedExtensions() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return append([]string(nil), r.signedExtensions...)
}

// RegisterLookupOverrides records chain-specific lookup-name overrides.
func (r *TypeRegistry) RegisterLookupOverrides(overrides map[string]string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for k, v := range overrides {
		r.lookupOverrides[k] = v
	}
}

// LookupOverride returns the override registered for name, if any.
func (r *TypeRegistry) LookupOverride(name string) (string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	target, ok := r.lookupOverrides[name]
	return target, ok
}
