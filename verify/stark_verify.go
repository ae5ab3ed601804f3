// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/task"
)

// executeStarkVerify converts query indices to evaluation-domain points
// and evaluates the oods boundary polynomial at each, feeding the FRI
// phase its first-layer input.
func executeStarkVerify(acct *account.Account) ([]task.Descriptor, error) {
	iv := acct.Intermediate().Verify()
	sv := acct.Intermediate().StarkVerify()
	domains := iv.LoadDomains()
	coeffs := iv.Commitment().OodsCoefficients().Slice()

	queries := iv.Queries()
	points := sv.Points()
	evals := sv.Evaluations()
	points.Flush()
	evals.Flush()
	for i := 0; i < queries.Len(); i++ {
		x := domains.QueryPoint(queries.Get(i).Uint64())
		if err := points.Append(x.Inv()); err != nil {
			return nil, err
		}
		if err := evals.Append(felt.Horner(coeffs, x)); err != nil {
			return nil, err
		}
	}

	return []task.Descriptor{
		task.Decommit(task.TargetOriginal, 0),
		task.Decommit(task.TargetInteraction, 0),
		task.Decommit(task.TargetComposition, 0),
		{Kind: task.KindStarkVerifyFri},
	}, nil
}
