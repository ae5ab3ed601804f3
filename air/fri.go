// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import "github.com/luxfi/starkverify/felt"

// FriCosetSize is the folding arity of the compiled-in layout: every inner
// layer halves the domain. The config validator pins fri_step_sizes to
// match.
const FriCosetSize = 2

// FriGroup returns the multiplicative coset pattern for one fold:
// {1, -1}. Element position i within a coset scales the coset's base
// point by group[i].
func FriGroup() [FriCosetSize]felt.Felt {
	return [FriCosetSize]felt.Felt{felt.One, felt.Zero.Sub(felt.One)}
}

// FriFormula folds one coset: given f(x) and f(-x) it returns
// 2*(E + eval_point*O) evaluated at x^2, where f = E(x^2) + x*O(x^2) and
// xInv is 1/x. The constant factor is absorbed symmetrically by the
// prover's coefficient fold, so it cancels across layers.
func FriFormula(v0, v1, evalPoint, xInv felt.Felt) felt.Felt {
	return v0.Add(v1).Add(evalPoint.Mul(xInv).Mul(v0.Sub(v1)))
}

// FoldCoefficients is the prover-side mirror of FriFormula: it maps the
// coefficient vector of one layer to the next, keeping
// Q'(x^2) == FriFormula(Q(x), Q(-x), e, 1/x) for all x.
func FoldCoefficients(coeffs []felt.Felt, evalPoint felt.Felt) []felt.Felt {
	out := make([]felt.Felt, (len(coeffs)+1)/2)
	for k := range out {
		even := coeffs[2*k]
		var odd felt.Felt
		if 2*k+1 < len(coeffs) {
			odd = coeffs[2*k+1]
		}
		out[k] = felt.Two.Mul(even.Add(evalPoint.Mul(odd)))
	}
	return out
}

// VerifyLastLayer checks that every remaining query value matches the
// declared last-layer polynomial evaluated at the query's point.
func VerifyLastLayer(values, xInvs, coeffs []felt.Felt) bool {
	for i := range values {
		x := xInvs[i].Inv()
		if !felt.Horner(coeffs, x).Equal(values[i]) {
			return false
		}
	}
	return true
}
