// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package felt implements arithmetic over the Stark prime field
// p = 2^251 + 17*2^192 + 1. Elements ride on holiman/uint256 limbs; every
// operation reduces, so a Felt is always canonical (< p).
package felt

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
)

// Prime is the Stark field modulus.
var Prime = uint256.MustFromHex("0x800000000000011000000000000000000000000000000000000000000000001")

// MontgomeryR is 2^256 mod p, the factor applied to values before they are
// hashed into table commitments.
var MontgomeryR = Felt{*uint256.MustFromHex("0x7fffffffffffdf0ffffffffffffffffffffffffffffffffffffffffffffffe1")}

// invTwo is (p+1)/2, the field inverse of 2.
var invTwo = Felt{*uint256.MustFromHex("0x400000000000008800000000000000000000000000000000000000000000001")}

var (
	Zero = Felt{}
	One  = FromUint64(1)
	Two  = FromUint64(2)
)

// Felt is an element of the Stark prime field.
type Felt struct {
	v uint256.Int
}

func FromUint64(n uint64) Felt {
	var f Felt
	f.v.SetUint64(n)
	return f
}

// FromBytes32 interprets 32 big-endian bytes, reducing mod p.
func FromBytes32(b [32]byte) Felt {
	var f Felt
	f.v.SetBytes32(b[:])
	f.v.Mod(&f.v, Prime)
	return f
}

func FromHash(h common.Hash) Felt {
	return FromBytes32(h)
}

// MustFromHex parses a 0x-prefixed hex literal. Panics on malformed input;
// reserved for compile-time constants and tests.
func MustFromHex(s string) Felt {
	f := Felt{*uint256.MustFromHex(s)}
	if f.v.Cmp(Prime) >= 0 {
		panic("felt: literal not reduced")
	}
	return f
}

func (f Felt) Bytes32() [32]byte {
	return f.v.Bytes32()
}

func (f Felt) Hash() common.Hash {
	return common.Hash(f.v.Bytes32())
}

// Uint64 truncates to the low 64 bits. Callers use it for indices and
// domain sizes that are known to fit.
func (f Felt) Uint64() uint64 {
	return f.v.Uint64()
}

func (f Felt) IsZero() bool {
	return f.v.IsZero()
}

func (f Felt) Equal(g Felt) bool {
	return f.v.Eq(&g.v)
}

func (f Felt) Hex() string {
	return f.v.Hex()
}

func (f Felt) String() string {
	return f.v.Dec()
}

func (f Felt) Add(g Felt) Felt {
	var r Felt
	r.v.AddMod(&f.v, &g.v, Prime)
	return r
}

func (f Felt) Sub(g Felt) Felt {
	var r Felt
	if f.v.Cmp(&g.v) >= 0 {
		r.v.Sub(&f.v, &g.v)
		return r
	}
	r.v.Sub(Prime, &g.v)
	r.v.AddMod(&r.v, &f.v, Prime)
	return r
}

func (f Felt) Neg() Felt {
	return Zero.Sub(f)
}

func (f Felt) Mul(g Felt) Felt {
	var r Felt
	r.v.MulMod(&f.v, &g.v, Prime)
	return r
}

// Half multiplies by the field inverse of two.
func (f Felt) Half() Felt {
	return f.Mul(invTwo)
}

// Pow raises f to an arbitrary 256-bit exponent by square and multiply.
func (f Felt) Pow(e Felt) Felt {
	return f.powInt(&e.v)
}

func (f Felt) PowUint64(e uint64) Felt {
	var ev uint256.Int
	ev.SetUint64(e)
	return f.powInt(&ev)
}

func (f Felt) powInt(e *uint256.Int) Felt {
	r := One
	if e.IsZero() {
		return r
	}
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = r.Mul(r)
		if e[i/64]>>(uint(i)%64)&1 == 1 {
			r = r.Mul(f)
		}
	}
	return r
}

// Inv returns the multiplicative inverse via Fermat: f^(p-2). Inverting
// zero returns zero; callers guard where it matters.
func (f Felt) Inv() Felt {
	if f.IsZero() {
		return Zero
	}
	var e uint256.Int
	e.Sub(Prime, uint256.NewInt(2))
	return f.powInt(&e)
}

// Montgomery returns f * R mod p, the form table commitments hash.
func (f Felt) Montgomery() Felt {
	return f.Mul(MontgomeryR)
}

// RootOfUnity returns a generator of the multiplicative subgroup of order
// 2^log2, derived from the field generator 3.
func RootOfUnity(log2 uint64) Felt {
	var e uint256.Int
	e.Sub(Prime, uint256.NewInt(1))
	e.Rsh(&e, uint(log2))
	g := FromUint64(3)
	return g.powInt(&e)
}

// Horner evaluates the polynomial with the given coefficients (lowest
// degree first) at x.
func Horner(coeffs []Felt, x Felt) Felt {
	var acc Felt
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeffs[i])
	}
	return acc
}
