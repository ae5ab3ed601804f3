// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/task"
)

// executeFriVerify gathers the first-layer FRI queries from the oods
// boundary output and fans out to the layer walk and the last-layer check.
func executeFriVerify(acct *account.Account) ([]task.Descriptor, error) {
	iv := acct.Intermediate().Verify()
	sv := acct.Intermediate().StarkVerify()

	queries := iv.Queries()
	points := sv.Points()
	evals := sv.Evaluations()
	if queries.Len() != evals.Len() {
		return nil, contract.ErrInvalidLength
	}

	fq := acct.Cache().Fri().Queries()
	fq.Flush()
	for i := 0; i < queries.Len(); i++ {
		if err := fq.Append(account.FriQuery{
			Index: queries.Get(i),
			Y:     evals.Get(i),
			XInv:  points.Get(i),
		}); err != nil {
			return nil, err
		}
	}

	return []task.Descriptor{
		{Kind: task.KindStarkVerifyLayers},
		{Kind: task.KindStarkVerifyLastLayer},
	}, nil
}

// executeLayers fans out one StarkVerifyFriLayer task per inner layer, in
// layer order.
func executeLayers(acct *account.Account) ([]task.Descriptor, error) {
	cfg := acct.Proof().Config()
	nInner := cfg.FriNLayers() - 1
	children := make([]task.Descriptor, 0, nInner)
	for i := uint64(0); i < nInner; i++ {
		children = append(children, task.Layered(task.KindStarkVerifyFriLayer, uint8(i)))
	}
	return children, nil
}
