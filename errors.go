// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scale

// Size constants for binary packing
const (
	// ByteLen is the number of bytes per byte
	ByteLen = 1
	// BoolLen is the number of bytes per bool
	BoolLen = 1
	// U16Len is the number of bytes per u16
	U16Len = 2
	// U32Len is the number of bytes per u32
	U32Len = 4
	// U64Len is the number of bytes per u64
	U64Len = 8
	// U128Len is the number of bytes per u128
	U128Len = 16
	// U256Len is the number of bytes per u256
	U256Len = 32
	// Hash256Len is the number of bytes per 256-bit hash
	Hash256Len = 32
	// Hash512Len is the number of bytes per 512-bit hash
	Hash512Len = 64
)

// Errs collects errors during a series of operations.
// It stores only the first error encountered.
type Errs struct {
	Err error
}

// Errored returns true if an error has been recorded.
func (errs *Errs) Errored() bool {
	return errs.Err != nil
}

// Add records the first non-nil error.
func (errs *Errs) Add(errors ...error) {
	if errs.Err == nil {
		for _, err := range errors {
			if err != nil {
				errs.Err = err
				break
			}
		}
	}
}
