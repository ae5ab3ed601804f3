// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/task"
)

// executeAssign runs the proof-of-work check and promotes the commit
// phase's scratch values into the canonical commitment snapshot.
func executeAssign(acct *account.Account) ([]task.Descriptor, error) {
	proof := acct.Proof()
	cfg := proof.Config()
	uc := proof.UnsentCommitment()
	iv := acct.Intermediate().Verify()
	sc := acct.Intermediate().StarkCommit()

	t := iv.LoadTranscript()

	if !air.CheckProofOfWork(t.Digest, uc.PowNonce(), cfg.ProofOfWorkBits()) {
		return nil, contract.ErrProofOfWork
	}
	t.ReadUint64(uc.PowNonce())

	cm := iv.Commitment()
	cm.SetTracesOriginalRoot(sc.TracesOriginalRoot())
	cm.SetTracesInteractionRoot(sc.TracesInteractionRoot())
	cm.SetInteractionZ(sc.InteractionZ())
	cm.SetInteractionAlpha(sc.InteractionAlpha())
	cm.SetCompositionRoot(sc.CompositionRoot())
	cm.SetInteractionAfterComposition(sc.InteractionAfterComposition())

	if err := cm.OodsValues().Overwrite(uc.OodsValues().Slice()); err != nil {
		return nil, err
	}
	// The powers array still holds the oods coefficient expansion.
	if err := cm.OodsCoefficients().Overwrite(acct.Cache().PowersArray().Slice()); err != nil {
		return nil, err
	}
	if err := cm.FriInnerRoots().Overwrite(sc.FriInnerRoots().Slice()); err != nil {
		return nil, err
	}
	if err := cm.FriEvalPoints().Overwrite(sc.FriEvalPoints().Slice()); err != nil {
		return nil, err
	}

	iv.StoreTranscript(t)
	return nil, nil
}
