// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/task"
)

// executeGenerateQueries draws the query indices from the transcript,
// bounded by the evaluation domain size.
func executeGenerateQueries(acct *account.Account) ([]task.Descriptor, error) {
	cfg := acct.Proof().Config()
	iv := acct.Intermediate().Verify()
	domains := iv.LoadDomains()

	t := iv.LoadTranscript()
	qs := air.GenerateQueries(&t, cfg.NQueries(), domains.EvalDomainSize.Uint64())
	if err := iv.Queries().Overwrite(air.QueriesToFelts(qs)); err != nil {
		return nil, err
	}
	iv.StoreTranscript(t)
	return nil, nil
}
