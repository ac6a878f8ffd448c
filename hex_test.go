// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToHex(t *testing.T) {
	require := require.New(t)

	require.Equal("0x", ToHex(nil))
	require.Equal("0x00", ToHex([]byte{0}))
	require.Equal("0xdeadbeef", ToHex([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestFromHex(t *testing.T) {
	require := require.New(t)

	b, err := FromHex("0xdeadbeef")
	require.NoError(err)
	require.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, b)

	// the prefix is optional and odd nibble counts are left-padded
	b, err = FromHex("fff")
	require.NoError(err)
	require.Equal([]byte{0x0f, 0xff}, b)

	b, err = FromHex("0x")
	require.NoError(err)
	require.Empty(b)

	_, err = FromHex("0xzz")
	require.Error(err)
}

func TestIsHex(t *testing.T) {
	require := require.New(t)

	require.True(IsHex("0xdeadbeef"))
	require.True(IsHex("0x"))
	require.False(IsHex("deadbeef"))
	require.False(IsHex("0xzz"))
}
