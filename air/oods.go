// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

// NumColumnsFirst derives the original trace width for a public input.
// The compiled-in layout has a fixed width; the lookup fails when the
// public input does not carry the expected segment set.
func NumColumnsFirst(p *PublicInput) (uint64, bool) {
	if len(p.Segments) != NSegments {
		return 0, false
	}
	return NumColumnsOriginal, true
}

// NumColumnsSecond derives the interaction trace width.
func NumColumnsSecond(p *PublicInput) (uint64, bool) {
	if len(p.Segments) != NSegments {
		return 0, false
	}
	return NumColumnsInteraction, true
}

// VerifyOods cross-checks the trace and composition oods values: the
// constraint combination of the mask values, weighted by the trace
// coefficients, must equal the composition column samples recombined at
// the interaction point.
func VerifyOods(oods, tracesCoefficients []felt.Felt, interactionAfterComposition felt.Felt) error {
	if len(oods) != OodsLength || len(tracesCoefficients) < NConstraints {
		return contract.ErrOodsMismatch
	}
	var lhs felt.Felt
	for i := 0; i < NConstraints; i++ {
		lhs = lhs.Add(tracesCoefficients[i].Mul(oods[i]))
	}
	rhs := oods[MaskSize].Add(oods[MaskSize+1].Mul(interactionAfterComposition))
	if !lhs.Equal(rhs) {
		return contract.ErrOodsMismatch
	}
	return nil
}
