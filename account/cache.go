// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/funvec"
)

// Cache is the zero-initialised scratch region. Two parts outlive a task:
// the FRI folding state, which the layer sub-tasks hand one another, and
// the powers array, whose oods coefficient expansion StarkCommitOodsCoef
// leaves for StarkCommitAssign to copy. Everything else is per-task scratch.
type Cache struct {
	data []byte
}

// PowersArray backs the challenge-power expansions: trace coefficients and
// oods coefficients.
func (c Cache) PowersArray() funvec.Felts {
	return funvec.NewFelts(c.data[cachePowersOff : cachePowersOff+powersVecSz])
}

// MontScratch holds Montgomery-converted rows while a table decommit runs.
func (c Cache) MontScratch() funvec.Felts {
	return funvec.NewFelts(c.data[cacheMontOff:cacheFriOff])
}

func (c Cache) Fri() FriCache {
	return FriCache{data: c.data[cacheFriOff : cacheFriOff+friCacheSz : cacheFriOff+friCacheSz]}
}

// FriQuery is one live FRI query: its coset-ordered index, the current
// layer's value, and the inverse of its evaluation point.
type FriQuery struct {
	Index felt.Felt
	Y     felt.Felt
	XInv  felt.Felt
}

// FriQueue is a fixed-capacity queue of FriQuery records.
type FriQueue struct {
	vec funvec.Vec
}

func (q FriQueue) Len() int { return q.vec.Len() }
func (q FriQueue) Flush()    { q.vec.Flush() }
func (q FriQueue) Cap() int { return q.vec.Cap() }

func (q FriQueue) Get(i int) FriQuery {
	e := q.vec.At(i)
	var a, b, c [32]byte
	copy(a[:], e[0:32])
	copy(b[:], e[32:64])
	copy(c[:], e[64:96])
	return FriQuery{Index: felt.FromBytes32(a), Y: felt.FromBytes32(b), XInv: felt.FromBytes32(c)}
}

func (q FriQueue) Append(f FriQuery) error {
	var e [friQuerySz]byte
	a := f.Index.Bytes32()
	b := f.Y.Bytes32()
	c := f.XInv.Bytes32()
	copy(e[0:32], a[:])
	copy(e[32:64], b[:])
	copy(e[64:96], c[:])
	return q.vec.Push(e[:])
}

// PopFront removes and returns the first query. The queue is small and
// bounded, so the shift stays well inside a task's budget.
func (q FriQueue) PopFront() (FriQuery, bool) {
	n := q.Len()
	if n == 0 {
		return FriQuery{}, false
	}
	out := q.Get(0)
	for i := 1; i < n; i++ {
		copy(q.vec.At(i-1), q.vec.At(i))
	}
	q.vec.Truncate(n - 1)
	return out, true
}

// CopyTo appends every element of q onto dst; q itself is left unchanged.
func (q FriQueue) CopyTo(dst FriQueue) error {
	for i := 0; i < q.Len(); i++ {
		if err := dst.Append(q.Get(i)); err != nil {
			return err
		}
	}
	return nil
}

// FriCache is the folding state shared by the layer sub-task chain.
type FriCache struct {
	data []byte
}

func (f FriCache) Queries() FriQueue {
	return FriQueue{vec: funvec.New(f.data[friQueriesOff:friNextQueriesOff], friQuerySz)}
}

func (f FriCache) NextQueries() FriQueue {
	return FriQueue{vec: funvec.New(f.data[friNextQueriesOff:friVerifyIdxOff], friQuerySz)}
}

func (f FriCache) VerifyIndices() funvec.Felts {
	return funvec.NewFelts(f.data[friVerifyIdxOff:friVerifyYOff])
}

func (f FriCache) VerifyYValues() funvec.Felts {
	return funvec.NewFelts(f.data[friVerifyYOff:friCosetElemsOff])
}

func (f FriCache) CosetElements() funvec.Felts {
	return funvec.NewFelts(f.data[friCosetElemsOff:friDecomValuesOff])
}

func (f FriCache) DecommitValues() funvec.Felts {
	return funvec.NewFelts(f.data[friDecomValuesOff:friDecomMontOff])
}

func (f FriCache) DecommitMont() funvec.Felts {
	return funvec.NewFelts(f.data[friDecomMontOff:friCtxLayerOff])
}

// Layer context, written by StarkVerifyFriLayer and read by its sub-tasks.

func (f FriCache) LayerIndex() uint64 { return getU64(f.data, friCtxLayerOff) }
func (f FriCache) CosetSize() uint64 { return getU64(f.data, friCtxCosetSizeOff) }
func (f FriCache) LeafCursor() uint64 { return getU64(f.data, friCtxLeafCurOff) }
func (f FriCache) Depth() uint64 { return getU64(f.data, friCtxDepthOff) }
func (f FriCache) EvalPoint() felt.Felt { return getFelt(f.data, friCtxEvalPointOff) }

func (f FriCache) SetLayerIndex(v uint64)   { putU64(f.data, friCtxLayerOff, v) }
func (f FriCache) SetCosetSize(v uint64)    { putU64(f.data, friCtxCosetSizeOff, v) }
func (f FriCache) SetLeafCursor(v uint64)   { putU64(f.data, friCtxLeafCurOff, v) }
func (f FriCache) SetDepth(v uint64)        { putU64(f.data, friCtxDepthOff, v) }
func (f FriCache) SetEvalPoint(v felt.Felt) { putFelt(f.data, friCtxEvalPointOff, v) }
