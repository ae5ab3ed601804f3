// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/task"
)

// executeDecommitmentMont rebuilds the decommitment buffer from the fold's
// verified y values, in plain and Montgomery form.
func executeDecommitmentMont(acct *account.Account) ([]task.Descriptor, error) {
	fri := acct.Cache().Fri()
	values := fri.DecommitValues()
	mont := fri.DecommitMont()
	values.Flush()
	mont.Flush()

	y := fri.VerifyYValues()
	for i := 0; i < y.Len(); i++ {
		v := y.Get(i)
		if err := values.Append(v); err != nil {
			return nil, err
		}
		if err := mont.Append(v.Montgomery()); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// executeAssignNext promotes the folded queries into the live slot, ready
// for the next layer.
func executeAssignNext(acct *account.Account) ([]task.Descriptor, error) {
	fri := acct.Cache().Fri()
	fri.Queries().Flush()
	if err := fri.NextQueries().CopyTo(fri.Queries()); err != nil {
		return nil, err
	}
	return nil, nil
}
