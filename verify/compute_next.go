// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/task"
)

// executeComputeNextLayer resets the fold buffers and hands off to the
// per-coset inner task. Draining all queries here would blow the
// per-invocation budget; the inner task reschedules itself instead.
func executeComputeNextLayer(acct *account.Account, layer uint8) ([]task.Descriptor, error) {
	fri := acct.Cache().Fri()
	fri.NextQueries().Flush()
	fri.VerifyIndices().Flush()
	fri.VerifyYValues().Flush()

	if fri.Queries().Len() == 0 {
		return nil, nil
	}
	return []task.Descriptor{task.Layered(task.KindComputeNextInner, layer)}, nil
}

// executeComputeNextInner folds exactly one coset's worth of queries and
// reschedules itself while queries remain.
func executeComputeNextInner(acct *account.Account, layer uint8) ([]task.Descriptor, error) {
	fri := acct.Cache().Fri()
	queue := fri.Queries()
	if queue.Len() == 0 {
		return nil, nil
	}

	cosetSize := fri.CosetSize()
	first := queue.Get(0)
	cosetIndex := first.Index.Uint64() / cosetSize

	// Collect this coset's queries. Queries are sorted, so they sit at the
	// front of the queue.
	var (
		vals     [air.FriCosetSize]felt.Felt
		have     [air.FriCosetSize]bool
		xInvEven felt.Felt
		xInvSet  bool
	)
	for queue.Len() > 0 {
		q := queue.Get(0)
		if q.Index.Uint64()/cosetSize != cosetIndex {
			break
		}
		queue.PopFront()
		pos := q.Index.Uint64() % cosetSize
		vals[pos] = q.Y
		have[pos] = true
		if pos == 0 {
			xInvEven = q.XInv
			xInvSet = true
		} else if !xInvSet {
			xInvEven = q.XInv.Neg()
			xInvSet = true
		}
	}

	// Fill the missing positions from the layer witness.
	layerWit, err := acct.Proof().Witness().FriLayer(int(fri.LayerIndex()))
	if err != nil {
		return nil, err
	}
	leaves := layerWit.Leaves()
	cursor := fri.LeafCursor()
	for pos := range vals {
		if !have[pos] {
			vals[pos] = leaves.Get(int(cursor))
			cursor++
		}
	}
	fri.SetLeafCursor(cursor)

	elems := fri.CosetElements()
	elems.Flush()
	for _, v := range vals {
		if err := elems.Append(v); err != nil {
			return nil, err
		}
		if err := fri.VerifyYValues().Append(v); err != nil {
			return nil, err
		}
	}
	if err := fri.VerifyIndices().Append(felt.FromUint64(cosetIndex)); err != nil {
		return nil, err
	}

	folded := air.FriFormula(vals[0], vals[1], fri.EvalPoint(), xInvEven)
	if err := fri.NextQueries().Append(account.FriQuery{
		Index: felt.FromUint64(cosetIndex),
		Y:     folded,
		XInv:  xInvEven.Mul(xInvEven),
	}); err != nil {
		return nil, err
	}

	if queue.Len() == 0 {
		return nil, nil
	}
	return []task.Descriptor{task.Layered(task.KindComputeNextInner, layer)}, nil
}
