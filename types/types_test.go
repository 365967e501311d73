package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherlab/aes128/types"
	"github.com/cipherlab/aes128/utils"
)

func TestBlockFromString(t *testing.T) {
	b, err := types.BlockFromString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	require.Equal(t, "000102030405060708090a0b0c0d0e0f", b.String())

	_, err = types.BlockFromString("0001")
	require.Error(t, err)

	_, err = types.BlockFromString("zz0102030405060708090a0b0c0d0e0f")
	require.Error(t, err)
}

func TestBlockJSON(t *testing.T) {
	b := types.MustBlockFromString("3243f6a8885a308d313198a2e0370734")

	buf, err := utils.MarshalJSON(b)
	require.NoError(t, err)
	require.Equal(t, `"3243f6a8885a308d313198a2e0370734"`, string(buf))

	var out types.Block
	require.NoError(t, utils.UnmarshalJSON(buf, &out))
	require.Equal(t, b, out)
}

func TestKeyJSON(t *testing.T) {
	k := types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")

	buf, err := utils.MarshalJSON(k)
	require.NoError(t, err)
	require.Equal(t, `"2b7e151628aed2a6abf7158809cf4f3c"`, string(buf))

	var out types.Key
	require.NoError(t, utils.UnmarshalJSON(buf, &out))
	require.Equal(t, k, out)
}

func TestFromBytesWrongSize(t *testing.T) {
	require.Equal(t, types.ZeroBlock, types.BlockFromBytes([]byte{1, 2, 3}))
	require.Equal(t, types.Block{1}, types.BlockFromBytes(append([]byte{1}, make([]byte, 15)...)))
}
