// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package funvec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

func TestVecPushAtFlush(t *testing.T) {
	backing := make([]byte, Size(4, 3))
	v := New(backing, 4)
	require.Equal(t, 3, v.Cap())
	require.Equal(t, 0, v.Len())

	require.NoError(t, v.Push([]byte{1, 2, 3, 4}))
	require.NoError(t, v.Push([]byte{5, 6, 7, 8}))
	require.Equal(t, 2, v.Len())
	require.Equal(t, []byte{5, 6, 7, 8}, v.At(1))

	v.Truncate(1)
	require.Equal(t, 1, v.Len())
	v.Flush()
	require.Equal(t, 0, v.Len())
}

func TestVecOverflow(t *testing.T) {
	v := New(make([]byte, Size(4, 1)), 4)
	require.NoError(t, v.Push([]byte{1, 2, 3, 4}))
	err := v.Push([]byte{9, 9, 9, 9})
	require.ErrorIs(t, err, contract.ErrVectorOverflow)
	require.Equal(t, 1, v.Len())
}

func TestFelts(t *testing.T) {
	f := NewFelts(make([]byte, Size(32, 4)))
	require.NoError(t, f.Append(felt.FromUint64(10)))
	require.NoError(t, f.Append(felt.FromUint64(20)))
	require.True(t, f.Get(1).Equal(felt.FromUint64(20)))

	require.NoError(t, f.Overwrite([]felt.Felt{felt.FromUint64(7)}))
	require.Equal(t, 1, f.Len())
	got := f.Slice()
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(felt.FromUint64(7)))

	f.Set(0, felt.FromUint64(9))
	require.True(t, f.Get(0).Equal(felt.FromUint64(9)))
}

func TestUints(t *testing.T) {
	u := NewUints(make([]byte, Size(8, 2)))
	require.NoError(t, u.Append(1))
	require.NoError(t, u.Append(1<<40))
	require.Equal(t, uint64(1<<40), u.Get(1))
}
