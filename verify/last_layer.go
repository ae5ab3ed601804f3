// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/task"
)

// executeLastLayer checks the declared polynomial's degree bound and that
// every surviving query agrees with it.
func executeLastLayer(acct *account.Account) ([]task.Descriptor, error) {
	cfg := acct.Proof().Config()
	coeffs := acct.Proof().UnsentCommitment().LastLayerCoefficients()

	if uint64(coeffs.Len()) != uint64(1)<<cfg.FriLogLastBound() {
		return nil, contract.ErrInvalidValue
	}

	queue := acct.Cache().Fri().Queries()
	values := make([]felt.Felt, queue.Len())
	xInvs := make([]felt.Felt, queue.Len())
	for i := range values {
		q := queue.Get(i)
		values[i] = q.Y
		xInvs[i] = q.XInv
	}

	if !air.VerifyLastLayer(values, xInvs, coeffs.Slice()) {
		return nil, contract.ErrLastLayer
	}
	return nil, nil
}
