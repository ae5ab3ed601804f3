// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import "github.com/luxfi/starkverify/felt"

// cosetShift offsets the evaluation domain away from the trace domain.
var cosetShift = felt.FromUint64(3)

// StarkDomains carries the trace and evaluation domain parameters derived
// from the proof config. Plain data; round-trips through the account.
type StarkDomains struct {
	LogTraceDomainSize uint64
	LogEvalDomainSize  uint64
	TraceDomainSize    felt.Felt
	EvalDomainSize     felt.Felt
	TraceGenerator     felt.Felt
	EvalGenerator      felt.Felt
	CosetOffset        felt.Felt
}

func NewStarkDomains(logTraceDomainSize, logNCosets uint64) StarkDomains {
	logEval := logTraceDomainSize + logNCosets
	return StarkDomains{
		LogTraceDomainSize: logTraceDomainSize,
		LogEvalDomainSize:  logEval,
		TraceDomainSize:    felt.FromUint64(1 << logTraceDomainSize),
		EvalDomainSize:     felt.FromUint64(1 << logEval),
		TraceGenerator:     felt.RootOfUnity(logTraceDomainSize),
		EvalGenerator:      felt.RootOfUnity(logEval),
		CosetOffset:        cosetShift,
	}
}

// BitReverse reverses the low `bits` bits of x. Query indices address the
// evaluation domain in bit-reversed order so that coset siblings are
// index-adjacent at every FRI layer.
func BitReverse(x, bits uint64) uint64 {
	var r uint64
	for i := uint64(0); i < bits; i++ {
		r = r<<1 | (x>>i)&1
	}
	return r
}

// QueryPoint maps a query index to its evaluation-domain point:
// offset * g^bitrev(q). Adjacent even/odd indices land on +-x, which is
// the pairing the FRI fold consumes.
func (d *StarkDomains) QueryPoint(q uint64) felt.Felt {
	e := BitReverse(q, d.LogEvalDomainSize)
	return d.CosetOffset.Mul(d.EvalGenerator.PowUint64(e))
}
