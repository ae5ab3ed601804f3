// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/task"
)

// executeOodsCoef draws the oods challenge and rebuilds the powers array
// as the oods coefficient vector.
func executeOodsCoef(acct *account.Account) ([]task.Descriptor, error) {
	iv := acct.Intermediate().Verify()
	sc := acct.Intermediate().StarkCommit()

	t := iv.LoadTranscript()
	oodsAlpha := t.RandomFelt()
	sc.SetOodsAlpha(oodsAlpha)

	if err := powersArray(acct.Cache().PowersArray(), oodsAlpha, air.OodsLength); err != nil {
		return nil, err
	}

	iv.StoreTranscript(t)
	return nil, nil
}
