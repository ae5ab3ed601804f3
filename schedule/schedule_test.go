// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/contract"
)

func region(capacity int) []byte {
	return make([]byte, slotsOff+capacity*descriptorSize)
}

func TestPushNextLIFO(t *testing.T) {
	s := New(region(8))
	require.True(t, s.Finished())

	require.NoError(t, s.Push([4]byte{1}))
	require.NoError(t, s.Push([4]byte{2}))
	require.Equal(t, 2, s.Remaining())

	d, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, [4]byte{2}, d)
	d, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, [4]byte{1}, d)

	_, ok = s.Next()
	require.False(t, ok)
	require.True(t, s.Finished())
}

// Children are handed to the stack in reverse execution order; the first
// child must come back on the first pop.
func TestPushSliceExecutionOrder(t *testing.T) {
	children := [][4]byte{{10}, {20}, {30}}
	reversed := [][4]byte{{30}, {20}, {10}}

	s := New(region(8))
	require.NoError(t, s.PushSlice(reversed))

	d, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, children[0], d)
}

func TestCapacity(t *testing.T) {
	s := New(region(2))
	require.NoError(t, s.Push([4]byte{1}))
	require.NoError(t, s.Push([4]byte{2}))
	require.ErrorIs(t, s.Push([4]byte{3}), contract.ErrScheduleFull)
	require.Equal(t, 2, s.Remaining())
}

func TestFlush(t *testing.T) {
	s := New(region(4))
	require.NoError(t, s.Push([4]byte{1}))
	s.Flush()
	require.True(t, s.Finished())
}
