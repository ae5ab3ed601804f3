// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verify implements the STARK verification task tree. Each task
// reads its inputs from the proof and intermediate regions, writes results
// back to the intermediate and cache regions, and returns its children in
// execution order. Work too large for one invocation is split by
// returning child tasks, never by looping internally.
package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/task"
)

// Execute runs one task against the account.
func Execute(d task.Descriptor, acct *account.Account) ([]task.Descriptor, error) {
	switch d.Kind {
	case task.KindVerifyProofRoot:
		return executeRoot(acct)
	case task.KindStarkCommit:
		return executeStarkCommit(acct)
	case task.KindStarkCommitOodsCoef:
		return executeOodsCoef(acct)
	case task.KindStarkCommitFri:
		return executeFriCommit(acct)
	case task.KindStarkCommitAssign:
		return executeAssign(acct)
	case task.KindGenerateQueries:
		return executeGenerateQueries(acct)
	case task.KindStarkVerify:
		return executeStarkVerify(acct)
	case task.KindTableDecommit:
		return executeTableDecommit(acct, d.Target, d.Layer)
	case task.KindStarkVerifyFri:
		return executeFriVerify(acct)
	case task.KindStarkVerifyLayers:
		return executeLayers(acct)
	case task.KindStarkVerifyFriLayer:
		return executeLayer(acct, d.Layer)
	case task.KindComputeNextLayer:
		return executeComputeNextLayer(acct, d.Layer)
	case task.KindComputeNextInner:
		return executeComputeNextInner(acct, d.Layer)
	case task.KindStarkVerifyLayerDecommitmentMont:
		return executeDecommitmentMont(acct)
	case task.KindStarkVerifyLayerAssignNext:
		return executeAssignNext(acct)
	case task.KindStarkVerifyLastLayer:
		return executeLastLayer(acct)
	case task.KindVerifyOutput:
		return executeVerifyOutput(acct)
	}
	return nil, contract.ErrUnknownTask
}
