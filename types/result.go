// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/scale"
)

// NewResult returns a constructor for Result<ok, err>: a two-variant tagged
// union with Ok at tag 0 and Err at tag 1.
func NewResult(okType, errType string) scale.Constructor {
	name := fmt.Sprintf("Result<%s, %s>", okType, errType)
	return NewEnum(name, []Variant{
		{Name: "Ok", Type: okType},
		{Name: "Err", Type: errType},
	})
}
