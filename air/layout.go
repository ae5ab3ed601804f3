// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package air adapts the cryptographic primitives STARK verification is
// built from: the Fiat-Shamir transcript, table Merkle commitments, the
// FRI folding formula, evaluation domains, proof-of-work and the
// public-input digests. A single proof layout is compiled in; its
// dimensions are the constants below.
package air

// Layout dimensions. One fixed layout is supported; the config validator
// rejects proofs produced for any other shape.
const (
	// MaskSize is the number of trace mask rows sampled at the oods point.
	MaskSize = 133
	// NConstraints is the number of AIR constraints combined by the
	// composition polynomial.
	NConstraints = 93
	// ConstraintDegree bounds the composition polynomial degree and sets
	// the composition table width.
	ConstraintDegree = 2

	NumColumnsOriginal    = 7
	NumColumnsInteraction = 3

	// MinSecurityBits is the floor the config validator holds proofs to:
	// n_queries * log_n_cosets + proof_of_work_bits.
	MinSecurityBits = 5

	// OodsLength is the number of oods values a proof carries: one per
	// mask row plus the composition column samples.
	OodsLength = MaskSize + ConstraintDegree
)
