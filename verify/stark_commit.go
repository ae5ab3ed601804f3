// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/funvec"
	"github.com/luxfi/starkverify/task"
)

// executeStarkCommit runs the commit phase up to the oods consistency
// check: trace commitment, composition challenge and powers, composition
// commitment, interaction point, and absorption of the oods values.
func executeStarkCommit(acct *account.Account) ([]task.Descriptor, error) {
	proof := acct.Proof()
	uc := proof.UnsentCommitment()
	iv := acct.Intermediate().Verify()
	sc := acct.Intermediate().StarkCommit()
	cache := acct.Cache()

	t := iv.LoadTranscript()

	// Traces commitment: original root, interaction elements, then the
	// interaction root.
	t.ReadFelt(uc.TracesOriginalRoot())
	sc.SetTracesOriginalRoot(uc.TracesOriginalRoot())
	sc.SetInteractionZ(t.RandomFelt())
	sc.SetInteractionAlpha(t.RandomFelt())
	t.ReadFelt(uc.TracesInteractionRoot())
	sc.SetTracesInteractionRoot(uc.TracesInteractionRoot())

	// Composition challenge and the powers array combining the trace
	// constraints.
	compositionAlpha := t.RandomFelt()
	sc.SetCompositionAlpha(compositionAlpha)
	powers := cache.PowersArray()
	if err := powersArray(powers, compositionAlpha, air.NConstraints); err != nil {
		return nil, err
	}

	// Composition commitment, then the interaction point.
	t.ReadFelt(uc.CompositionRoot())
	sc.SetCompositionRoot(uc.CompositionRoot())
	sc.SetInteractionAfterComposition(t.RandomFelt())

	// Absorb the oods values and check trace/composition consistency.
	oods := uc.OodsValues().Slice()
	if len(oods) != air.OodsLength {
		return nil, contract.ErrOodsMismatch
	}
	t.ReadFelts(oods)

	if err := air.VerifyOods(oods, powers.Slice(), sc.InteractionAfterComposition()); err != nil {
		return nil, err
	}

	iv.StoreTranscript(t)

	return []task.Descriptor{
		{Kind: task.KindStarkCommitOodsCoef},
		{Kind: task.KindStarkCommitFri},
		{Kind: task.KindStarkCommitAssign},
	}, nil
}

// powersArray fills the cache vector with 1, alpha, alpha^2, ...
func powersArray(dst funvec.Felts, alpha felt.Felt, n int) error {
	dst.Flush()
	acc := felt.One
	for i := 0; i < n; i++ {
		if err := dst.Append(acc); err != nil {
			return err
		}
		acc = acc.Mul(alpha)
	}
	return nil
}
