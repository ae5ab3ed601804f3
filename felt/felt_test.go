// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package felt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := FromUint64(12345)
	b := FromUint64(67890)
	require.True(t, a.Add(b).Sub(b).Equal(a))
	require.True(t, Zero.Sub(One).Add(One).Equal(Zero))
}

func TestSubWraps(t *testing.T) {
	// 0 - 1 must land on p - 1, i.e. -1 squared is 1.
	minusOne := Zero.Sub(One)
	require.True(t, minusOne.Mul(minusOne).Equal(One))
}

func TestMulPow(t *testing.T) {
	x := FromUint64(7)
	require.True(t, x.PowUint64(3).Equal(x.Mul(x).Mul(x)))
	require.True(t, x.PowUint64(0).Equal(One))
	require.True(t, x.Pow(FromUint64(1)).Equal(x))
}

func TestInv(t *testing.T) {
	for _, n := range []uint64{1, 2, 3, 12345, 1 << 40} {
		x := FromUint64(n)
		require.True(t, x.Mul(x.Inv()).Equal(One), "inverse of %d", n)
	}
	require.True(t, Zero.Inv().IsZero())
}

func TestHalf(t *testing.T) {
	x := FromUint64(11)
	require.True(t, x.Half().Mul(Two).Equal(x))
}

func TestMontgomery(t *testing.T) {
	x := FromUint64(42)
	require.True(t, x.Montgomery().Equal(x.Mul(MontgomeryR)))
	// R is invertible, so the conversion must be injective.
	require.False(t, FromUint64(1).Montgomery().Equal(FromUint64(2).Montgomery()))
}

func TestBytes32RoundTrip(t *testing.T) {
	x := FromUint64(0xdeadbeef)
	require.True(t, FromBytes32(x.Bytes32()).Equal(x))
	require.Equal(t, x.Bytes32(), FromHash(x.Hash()).Bytes32())
}

func TestRootOfUnity(t *testing.T) {
	g := RootOfUnity(4)
	require.True(t, g.PowUint64(16).Equal(One))
	require.False(t, g.PowUint64(8).Equal(One))
	// The half-order power is -1.
	require.True(t, g.PowUint64(8).Equal(Zero.Sub(One)))
}

func TestHorner(t *testing.T) {
	// 3 + 2x + x^2 at x = 5 is 38.
	coeffs := []Felt{FromUint64(3), FromUint64(2), FromUint64(1)}
	require.True(t, Horner(coeffs, FromUint64(5)).Equal(FromUint64(38)))
	require.True(t, Horner(nil, FromUint64(5)).IsZero())
}
