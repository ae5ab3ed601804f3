// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package funvec provides fixed-capacity vector views over raw account
// bytes. A vector occupies [length u64 LE][capacity * elemSize payload];
// the backing slice never grows, and overflow is an error the caller must
// rule out by sizing capacities to the largest possible run.
package funvec

import (
	"encoding/binary"

	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

// HeaderSize is the byte cost of the length cursor in front of the payload.
const HeaderSize = 8

// Size returns the account footprint of a vector with the given element
// size and capacity.
func Size(elemSize, capacity int) int {
	return HeaderSize + elemSize*capacity
}

// Vec is a mutable window over one fixed-capacity vector.
type Vec struct {
	data     []byte
	elemSize int
}

// New wraps a backing slice. The slice length must match Size(elemSize, N)
// for whole N; views are carved by the account layout, so this holds by
// construction.
func New(data []byte, elemSize int) Vec {
	return Vec{data: data, elemSize: elemSize}
}

func (v Vec) Cap() int {
	return (len(v.data) - HeaderSize) / v.elemSize
}

func (v Vec) Len() int {
	return int(binary.LittleEndian.Uint64(v.data[:8]))
}

func (v Vec) setLen(n int) {
	binary.LittleEndian.PutUint64(v.data[:8], uint64(n))
}

// At returns the i-th element window. No bounds check beyond the slice
// expression; callers index below Len or below Cap when pre-writing.
func (v Vec) At(i int) []byte {
	off := HeaderSize + i*v.elemSize
	return v.data[off : off+v.elemSize]
}

func (v Vec) Push(elem []byte) error {
	n := v.Len()
	if n >= v.Cap() {
		return contract.ErrVectorOverflow
	}
	copy(v.At(n), elem)
	v.setLen(n + 1)
	return nil
}

func (v Vec) Flush() {
	v.setLen(0)
}

// Truncate shortens the live prefix. Growing through Truncate is not
// allowed; use Push.
func (v Vec) Truncate(n int) {
	if n < v.Len() {
		v.setLen(n)
	}
}

// Felts is a vector of 32-byte field elements.
type Felts struct {
	Vec
}

func NewFelts(data []byte) Felts {
	return Felts{New(data, 32)}
}

func (f Felts) Get(i int) felt.Felt {
	var b [32]byte
	copy(b[:], f.At(i))
	return felt.FromBytes32(b)
}

func (f Felts) Set(i int, x felt.Felt) {
	b := x.Bytes32()
	copy(f.At(i), b[:])
}

func (f Felts) Append(x felt.Felt) error {
	b := x.Bytes32()
	return f.Push(b[:])
}

// Overwrite flushes and refills from xs.
func (f Felts) Overwrite(xs []felt.Felt) error {
	f.Flush()
	for _, x := range xs {
		if err := f.Append(x); err != nil {
			return err
		}
	}
	return nil
}

// Slice decodes the live prefix. The result is a copy; mutating it does
// not touch the account.
func (f Felts) Slice() []felt.Felt {
	out := make([]felt.Felt, f.Len())
	for i := range out {
		out[i] = f.Get(i)
	}
	return out
}

// Uints is a vector of u64 little-endian values.
type Uints struct {
	Vec
}

func NewUints(data []byte) Uints {
	return Uints{New(data, 8)}
}

func (u Uints) Get(i int) uint64 {
	return binary.LittleEndian.Uint64(u.At(i))
}

func (u Uints) Append(n uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	return u.Push(b[:])
}
