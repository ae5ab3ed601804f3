// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/task"
)

// executeFriCommit absorbs the FRI inner-layer roots, drawing one eval
// point after each, then the declared last-layer coefficients.
func executeFriCommit(acct *account.Account) ([]task.Descriptor, error) {
	proof := acct.Proof()
	cfg := proof.Config()
	uc := proof.UnsentCommitment()
	iv := acct.Intermediate().Verify()
	sc := acct.Intermediate().StarkCommit()

	innerRoots := uc.FriInnerRoots()
	if uint64(innerRoots.Len()) != cfg.FriNLayers()-1 {
		return nil, contract.ErrConfigInvalid
	}

	t := iv.LoadTranscript()

	roots := sc.FriInnerRoots()
	points := sc.FriEvalPoints()
	roots.Flush()
	points.Flush()
	for i := 0; i < innerRoots.Len(); i++ {
		root := innerRoots.Get(i)
		t.ReadFelt(root)
		if err := roots.Append(root); err != nil {
			return nil, err
		}
		if err := points.Append(t.RandomFelt()); err != nil {
			return nil, err
		}
	}

	t.ReadFelts(uc.LastLayerCoefficients().Slice())

	iv.StoreTranscript(t)
	return nil, nil
}
