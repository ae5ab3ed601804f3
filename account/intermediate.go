// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/funvec"
)

// Intermediate holds values computed during verification and consumed by
// later tasks. The stark-commit, stark-verify and verify-output
// sub-structures are written by the tasks whose names match them. The
// verify sub-structure is seeded by the root task and then extended by
// others: the commit tasks and GenerateQueries advance its transcript,
// StarkCommitAssign fills its commitment snapshot and GenerateQueries its
// query indices.
type Intermediate struct {
	data []byte
}

func (m Intermediate) Verify() VerifyIntermediate {
	return VerifyIntermediate{data: m.data[interVerifyOff:interVerifyOutputOff:interVerifyOutputOff]}
}

func (m Intermediate) VerifyOutput() VerifyOutputIntermediate {
	return VerifyOutputIntermediate{data: m.data[interVerifyOutputOff:interStarkCommitOff:interStarkCommitOff]}
}

func (m Intermediate) StarkCommit() StarkCommitIntermediate {
	return StarkCommitIntermediate{data: m.data[interStarkCommitOff:interStarkVerifyOff:interStarkVerifyOff]}
}

func (m Intermediate) StarkVerify() StarkVerifyIntermediate {
	end := interStarkVerifyOff + starkVerifySz
	return StarkVerifyIntermediate{data: m.data[interStarkVerifyOff:end:end]}
}

// VerifyIntermediate holds the column counts, domains and transcript seeded
// by the root task, the canonical commitment snapshot written by
// StarkCommitAssign, and the query indices written by GenerateQueries.
type VerifyIntermediate struct {
	data []byte
}

func (v VerifyIntermediate) NOriginalColumns() uint64 { return getU64(v.data, ivNOrigColsOff) }
func (v VerifyIntermediate) NInteractionColumns() uint64 { return getU64(v.data, ivNIntColsOff) }

func (v VerifyIntermediate) SetNOriginalColumns(n uint64)    { putU64(v.data, ivNOrigColsOff, n) }
func (v VerifyIntermediate) SetNInteractionColumns(n uint64) { putU64(v.data, ivNIntColsOff, n) }

func (v VerifyIntermediate) LoadDomains() air.StarkDomains {
	off := ivDomainsOff
	return air.StarkDomains{
		LogTraceDomainSize: getU64(v.data, off),
		LogEvalDomainSize:  getU64(v.data, off+8),
		TraceDomainSize:    getFelt(v.data, off+16),
		EvalDomainSize:     getFelt(v.data, off+48),
		TraceGenerator:     getFelt(v.data, off+80),
		EvalGenerator:      getFelt(v.data, off+112),
		CosetOffset:        getFelt(v.data, off+144),
	}
}

func (v VerifyIntermediate) StoreDomains(d air.StarkDomains) {
	off := ivDomainsOff
	putU64(v.data, off, d.LogTraceDomainSize)
	putU64(v.data, off+8, d.LogEvalDomainSize)
	putFelt(v.data, off+16, d.TraceDomainSize)
	putFelt(v.data, off+48, d.EvalDomainSize)
	putFelt(v.data, off+80, d.TraceGenerator)
	putFelt(v.data, off+112, d.EvalGenerator)
	putFelt(v.data, off+144, d.CosetOffset)
}

func (v VerifyIntermediate) LoadTranscript() air.Transcript {
	return air.Transcript{
		Digest:  getHash(v.data, ivTranscriptOff),
		Counter: getU64(v.data, ivTranscriptOff+32),
	}
}

func (v VerifyIntermediate) StoreTranscript(t air.Transcript) {
	putHash(v.data, ivTranscriptOff, t.Digest)
	putU64(v.data, ivTranscriptOff+32, t.Counter)
}

func (v VerifyIntermediate) Commitment() Commitment {
	end := ivCommitmentOff + commitmentSz
	return Commitment{data: v.data[ivCommitmentOff:end:end]}
}

func (v VerifyIntermediate) Queries() funvec.Felts {
	return funvec.NewFelts(v.data[ivQueriesOff : ivQueriesOff+queriesVecSz])
}

// Commitment is the canonical stark-commitment snapshot assigned once the
// commit phase finishes.
type Commitment struct {
	data []byte
}

func (c Commitment) TracesOriginalRoot() felt.Felt { return getFelt(c.data, cmTracesOriginalOff) }
func (c Commitment) TracesInteractionRoot() felt.Felt { return getFelt(c.data, cmTracesInteractionOff) }
func (c Commitment) InteractionZ() felt.Felt { return getFelt(c.data, cmInteractionZOff) }
func (c Commitment) InteractionAlpha() felt.Felt { return getFelt(c.data, cmInteractionAlphaOff) }
func (c Commitment) CompositionRoot() felt.Felt { return getFelt(c.data, cmCompositionOff) }
func (c Commitment) InteractionAfterComposition() felt.Felt {
	return getFelt(c.data, cmInteractionAfterOff)
}

func (c Commitment) SetTracesOriginalRoot(v felt.Felt)    { putFelt(c.data, cmTracesOriginalOff, v) }
func (c Commitment) SetTracesInteractionRoot(v felt.Felt) { putFelt(c.data, cmTracesInteractionOff, v) }
func (c Commitment) SetInteractionZ(v felt.Felt)          { putFelt(c.data, cmInteractionZOff, v) }
func (c Commitment) SetInteractionAlpha(v felt.Felt)      { putFelt(c.data, cmInteractionAlphaOff, v) }
func (c Commitment) SetCompositionRoot(v felt.Felt)       { putFelt(c.data, cmCompositionOff, v) }
func (c Commitment) SetInteractionAfterComposition(v felt.Felt) {
	putFelt(c.data, cmInteractionAfterOff, v)
}

func (c Commitment) OodsValues() funvec.Felts {
	return funvec.NewFelts(c.data[cmOodsValuesOff:cmOodsCoeffsOff])
}

func (c Commitment) OodsCoefficients() funvec.Felts {
	return funvec.NewFelts(c.data[cmOodsCoeffsOff:cmFriInnerRootsOff])
}

func (c Commitment) FriInnerRoots() funvec.Felts {
	return funvec.NewFelts(c.data[cmFriInnerRootsOff:cmFriEvalPointsOff])
}

func (c Commitment) FriEvalPoints() funvec.Felts {
	return funvec.NewFelts(c.data[cmFriEvalPointsOff:commitmentSz])
}

// VerifyOutputIntermediate is the observable result: program hash and the
// public output sequence.
type VerifyOutputIntermediate struct {
	data []byte
}

func (v VerifyOutputIntermediate) ProgramHash() felt.Felt { return getFelt(v.data, voProgramHashOff) }
func (v VerifyOutputIntermediate) SetProgramHash(h felt.Felt)   { putFelt(v.data, voProgramHashOff, h) }

func (v VerifyOutputIntermediate) Output() funvec.Felts {
	return funvec.NewFelts(v.data[voOutputOff : voOutputOff+outputVecSz])
}

// StarkCommitIntermediate is the commit phase's scratch: partial outputs
// shared between the commit sub-tasks before assignment.
type StarkCommitIntermediate struct {
	data []byte
}

func (s StarkCommitIntermediate) TracesOriginalRoot() felt.Felt { return getFelt(s.data, scTracesOriginalOff) }
func (s StarkCommitIntermediate) TracesInteractionRoot() felt.Felt {
	return getFelt(s.data, scTracesInteractionOff)
}
func (s StarkCommitIntermediate) InteractionZ() felt.Felt { return getFelt(s.data, scInteractionZOff) }
func (s StarkCommitIntermediate) InteractionAlpha() felt.Felt { return getFelt(s.data, scInteractionAlphaOff) }
func (s StarkCommitIntermediate) CompositionAlpha() felt.Felt { return getFelt(s.data, scCompositionAlphaOff) }
func (s StarkCommitIntermediate) CompositionRoot() felt.Felt { return getFelt(s.data, scCompositionOff) }
func (s StarkCommitIntermediate) InteractionAfterComposition() felt.Felt {
	return getFelt(s.data, scInteractionAfterOff)
}
func (s StarkCommitIntermediate) OodsAlpha() felt.Felt { return getFelt(s.data, scOodsAlphaOff) }

func (s StarkCommitIntermediate) SetTracesOriginalRoot(v felt.Felt) {
	putFelt(s.data, scTracesOriginalOff, v)
}
func (s StarkCommitIntermediate) SetTracesInteractionRoot(v felt.Felt) {
	putFelt(s.data, scTracesInteractionOff, v)
}
func (s StarkCommitIntermediate) SetInteractionZ(v felt.Felt) { putFelt(s.data, scInteractionZOff, v) }
func (s StarkCommitIntermediate) SetInteractionAlpha(v felt.Felt) {
	putFelt(s.data, scInteractionAlphaOff, v)
}
func (s StarkCommitIntermediate) SetCompositionAlpha(v felt.Felt) {
	putFelt(s.data, scCompositionAlphaOff, v)
}
func (s StarkCommitIntermediate) SetCompositionRoot(v felt.Felt) { putFelt(s.data, scCompositionOff, v) }
func (s StarkCommitIntermediate) SetInteractionAfterComposition(v felt.Felt) {
	putFelt(s.data, scInteractionAfterOff, v)
}
func (s StarkCommitIntermediate) SetOodsAlpha(v felt.Felt) { putFelt(s.data, scOodsAlphaOff, v) }

func (s StarkCommitIntermediate) FriInnerRoots() funvec.Felts {
	return funvec.NewFelts(s.data[scFriInnerRootsOff:scFriEvalPointsOff])
}

func (s StarkCommitIntermediate) FriEvalPoints() funvec.Felts {
	return funvec.NewFelts(s.data[scFriEvalPointsOff:starkCommitSz])
}

// StarkVerifyIntermediate carries the inverses of the query points and the
// oods boundary evaluations into the FRI phase.
type StarkVerifyIntermediate struct {
	data []byte
}

func (s StarkVerifyIntermediate) Points() funvec.Felts {
	return funvec.NewFelts(s.data[svPointsOff:svEvaluationsOff])
}

func (s StarkVerifyIntermediate) Evaluations() funvec.Felts {
	return funvec.NewFelts(s.data[svEvaluationsOff:starkVerifySz])
}
