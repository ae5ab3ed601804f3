// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/task"
)

// executeVerifyOutput runs the layout's public-input verifier and records
// the program hash and output sequence for the caller to observe.
func executeVerifyOutput(acct *account.Account) ([]task.Descriptor, error) {
	pi := acct.Proof().PublicInput().Decode()

	programHash, outputs, err := pi.VerifyOutput()
	if err != nil {
		return nil, err
	}

	vo := acct.Intermediate().VerifyOutput()
	vo.SetProgramHash(programHash)
	if err := vo.Output().Overwrite(outputs); err != nil {
		return nil, err
	}
	return nil, nil
}
