// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luxfi/scale"
	"github.com/luxfi/scale/types"
)

// parseDescriptor turns a composite descriptor string into a constructor.
// The shapes accepted mirror the wire format's generic types: Vec<T>,
// Option<T>, Compact<T>, BTreeSet<T>, BTreeMap<K, V>, Result<O, E>,
// fixed arrays [T; N] and tuples (A, B, ...).
func parseDescriptor(r *TypeRegistry, descriptor string) (scale.Constructor, error) {
	d := strings.TrimSpace(descriptor)
	if d == "" {
		return nil, fmt.Errorf("%w: empty descriptor", scale.ErrBadDescriptor)
	}

	switch {
	case d[0] == '(' && d[len(d)-1] == ')':
		members, err := splitTop(d[1 : len(d)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", scale.ErrBadDescriptor, descriptor)
		}
		if len(members) == 0 {
			return types.NewNull, nil
		}
		return types.NewTuple(members), nil

	case d[0] == '[' && d[len(d)-1] == ']':
		body := d[1 : len(d)-1]
		semi := strings.LastIndex(body, ";")
		if semi < 0 {
			return nil, fmt.Errorf("%w: %q wants [Type; N]", scale.ErrBadDescriptor, descriptor)
		}
		elem := strings.TrimSpace(body[:semi])
		n, err := strconv.Atoi(strings.TrimSpace(body[semi+1:]))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q has a bad length", scale.ErrBadDescriptor, descriptor)
		}
		if elem == "u8" {
			return types.NewRaw(n), nil
		}
		return types.NewVecFixed(elem, n), nil
	}

	open := strings.Index(d, "<")
	if open < 0 || d[len(d)-1] != '>' {
		return nil, fmt.Errorf("%w: %q", scale.ErrUnknownType, descriptor)
	}
	outer := strings.TrimSpace(d[:open])
	args, err := splitTop(d[open+1 : len(d)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", scale.ErrBadDescriptor, descriptor)
	}

	switch outer {
	case "Vec":
		if len(args) != 1 {
			break
		}
		if args[0] == "u8" {
			return types.NewBytes, nil
		}
		return types.NewVec(args[0]), nil
	case "Option":
		if len(args) != 1 {
			break
		}
		if args[0] == "bool" {
			return types.NewOptionBool, nil
		}
		return types.NewOption(args[0]), nil
	case "Compact":
		if len(args) != 1 {
			break
		}
		return types.NewCompactOf(args[0]), nil
	case "BTreeSet":
		if len(args) != 1 {
			break
		}
		return types.NewSet(args[0]), nil
	case "BTreeMap":
		if len(args) != 2 {
			break
		}
		return types.NewMap(args[0], args[1]), nil
	case "Result":
		if len(args) != 2 {
			break
		}
		return types.NewResult(args[0], args[1]), nil
	default:
		return nil, fmt.Errorf("%w: %q", scale.ErrUnknownType, descriptor)
	}
	return nil, fmt.Errorf("%w: %q has wrong arity", scale.ErrBadDescriptor, descriptor)
}

// splitTop splits on commas at nesting depth zero, honoring <>, () and [].
func splitTop(s string) ([]string, error) {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets in %q", s)
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q", s)
	}
	last := strings.TrimSpace(s[start:])
	if last != "" {
		out = append(out, last)
	}
	return out, nil
}
