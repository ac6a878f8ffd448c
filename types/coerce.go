// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types implements the primitive and composite SCALE codecs. Every
// constructor accepts the uniform input set: wire bytes (directly or through
// a shared *scale.Packer), 0x-hex strings, JSON-shaped plain values, another
// codec of compatible shape, or nil for the zero value.
package types

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/luxfi/scale"
)

// unpackerOf returns a Packer when input is one of the byte-oriented forms.
// A *Packer is used as-is so parent composites share the read offset.
func unpackerOf(input any) (*scale.Packer, bool, error) {
	switch v := input.(type) {
	case *scale.Packer:
		return v, true, nil
	case []byte:
		return scale.PackerFromBytes(v), true, nil
	case string:
		if scale.IsHex(v) {
			b, err := scale.FromHex(v)
			if err != nil {
				return nil, true, err
			}
			return scale.PackerFromBytes(b), true, nil
		}
	}
	return nil, false, nil
}

// toUint64 coerces plain numeric inputs. Strings must be decimal.
func toUint64(input any) (uint64, bool) {
	switch v := input.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int8, int16, int32, int64:
		i, _ := toInt64(v)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0, false
		}
		return uint64(v), true
	case *big.Int:
		if !v.IsUint64() {
			return 0, false
		}
		return v.Uint64(), true
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

// toInt64 coerces plain signed numeric inputs.
func toInt64(input any) (int64, bool) {
	switch v := input.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint64:
		if v > 1<<63-1 {
			return 0, false
		}
		return int64(v), true
	case uint, uint8, uint16, uint32:
		u, _ := toUint64(v)
		return int64(u), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

// toBigInt coerces plain numeric inputs to an arbitrary-precision integer.
func toBigInt(input any) (*big.Int, bool) {
	switch v := input.(type) {
	case *big.Int:
		return new(big.Int).Set(v), true
	case string:
		n, ok := new(big.Int).SetString(strings.TrimSpace(v), 10)
		return n, ok
	default:
		if u, ok := toUint64(input); ok {
			return new(big.Int).SetUint64(u), true
		}
		if i, ok := toInt64(input); ok {
			return big.NewInt(i), true
		}
	}
	return nil, false
}

// asList normalizes array-shaped inputs.
func asList(input any) ([]any, bool) {
	switch v := input.(type) {
	case []any:
		return v, true
	case []scale.Codec:
		out := make([]any, len(v))
		for i, c := range v {
			out[i] = c
		}
		return out, true
	}
	return nil, false
}

// asMap normalizes object-shaped inputs.
func asMap(input any) (map[string]any, bool) {
	switch v := input.(type) {
	case map[string]any:
		return v, true
	case map[string]scale.Codec:
		out := make(map[string]any, len(v))
		for k, c := range v {
			out[k] = c
		}
		return out, true
	}
	return nil, false
}

// normalizeKey lowers a field or object key and strips underscores, so
// snake_case input keys match camelCase field names and vice versa.
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

func inputErr(typeName string, input any) error {
	return fmt.Errorf("%w %s: %T", scale.ErrInvalidInput, typeName, input)
}
