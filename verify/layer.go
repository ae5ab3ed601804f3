// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/task"
)

// executeLayer loads the i-th inner layer's parameters into the FRI cache
// context and schedules the fold / decommit / advance chain.
func executeLayer(acct *account.Account, layer uint8) ([]task.Descriptor, error) {
	cfg := acct.Proof().Config()
	iv := acct.Intermediate().Verify()
	cm := iv.Commitment()

	if uint64(layer) >= cfg.FriNLayers()-1 || int(layer) >= cm.FriEvalPoints().Len() {
		return nil, contract.ErrLayerOutOfRange
	}

	domains := iv.LoadDomains()
	steps := cfg.FriStepSizes()

	fri := acct.Cache().Fri()
	fri.SetLayerIndex(uint64(layer))
	fri.SetCosetSize(1 << steps.Get(int(layer)+1))
	fri.SetEvalPoint(cm.FriEvalPoints().Get(int(layer)))
	fri.SetLeafCursor(0)
	fri.SetDepth(domains.LogEvalDomainSize - 1 - uint64(layer))

	return []task.Descriptor{
		task.Layered(task.KindComputeNextLayer, layer),
		task.Layered(task.KindStarkVerifyLayerDecommitmentMont, layer),
		task.Decommit(task.TargetFri, layer),
		{Kind: task.KindStarkVerifyLayerAssignNext},
	}, nil
}
