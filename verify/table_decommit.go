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

// executeTableDecommit verifies one Merkle authentication batch. The
// target selects the commitment/decommitment/witness triple.
func executeTableDecommit(acct *account.Account, target task.DecommitTarget, layer uint8) ([]task.Descriptor, error) {
	proof := acct.Proof()
	wit := proof.Witness()
	iv := acct.Intermediate().Verify()
	cm := iv.Commitment()
	cache := acct.Cache()
	domains := iv.LoadDomains()

	var (
		root     felt.Felt
		values   []felt.Felt
		paths    funvec.Felts
		rowWidth int
		indices  []uint64
		depth    int
	)

	switch target {
	case task.TargetOriginal:
		root = cm.TracesOriginalRoot()
		values = wit.TracesDecommitmentOriginal().Slice()
		paths = wit.TracesWitnessOriginal()
		rowWidth = air.NumColumnsOriginal
		indices = queryIndices(iv)
		depth = int(domains.LogEvalDomainSize)
	case task.TargetInteraction:
		root = cm.TracesInteractionRoot()
		values = wit.TracesDecommitmentInteraction().Slice()
		paths = wit.TracesWitnessInteraction()
		rowWidth = air.NumColumnsInteraction
		indices = queryIndices(iv)
		depth = int(domains.LogEvalDomainSize)
	case task.TargetComposition:
		root = cm.CompositionRoot()
		values = wit.CompositionDecommitment().Slice()
		paths = wit.CompositionWitness()
		rowWidth = air.ConstraintDegree
		indices = queryIndices(iv)
		depth = int(domains.LogEvalDomainSize)
	case task.TargetFri:
		roots := cm.FriInnerRoots()
		if int(layer) >= roots.Len() {
			return nil, contract.ErrLayerOutOfRange
		}
		layerWit, err := wit.FriLayer(int(layer))
		if err != nil {
			return nil, err
		}
		fri := cache.Fri()
		root = roots.Get(int(layer))
		// Layer rows were already converted to Montgomery form by the
		// decommitment task; verify them as-is.
		mont := fri.DecommitMont().Slice()
		idxVec := fri.VerifyIndices()
		indices = make([]uint64, idxVec.Len())
		for i := range indices {
			indices[i] = idxVec.Get(i).Uint64()
		}
		return nil, air.VerifyTable(root, int(domains.LogEvalDomainSize)-1-int(layer),
			indices, mont, air.FriCosetSize, layerWit.TableWitness().Slice())
	default:
		return nil, contract.ErrUnknownDecommit
	}

	// Trace and composition rows are committed in Montgomery form; convert
	// into the scratch buffer before hashing.
	mont := cache.MontScratch()
	mont.Flush()
	for _, v := range values {
		if err := mont.Append(v.Montgomery()); err != nil {
			return nil, err
		}
	}
	return nil, air.VerifyTable(root, depth, indices, mont.Slice(), rowWidth, paths.Slice())
}

func queryIndices(iv account.VerifyIntermediate) []uint64 {
	qs := iv.Queries()
	out := make([]uint64, qs.Len())
	for i := range out {
		out[i] = qs.Get(i).Uint64()
	}
	return out
}
