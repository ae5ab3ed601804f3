// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/funvec"
)

// Proof is the published STARK proof: written entirely during the Publish
// stage, read-only thereafter. Setters exist for the publish-side tooling
// that assembles the image off-chain.
type Proof struct {
	data []byte
}

func (p Proof) Config() Config {
	return Config{data: p.data[proofCfgOff : proofCfgOff+cfgSz : proofCfgOff+cfgSz]}
}

func (p Proof) PublicInput() PublicInput {
	return PublicInput{data: p.data[proofPiOff : proofPiOff+piSz : proofPiOff+piSz]}
}

func (p Proof) UnsentCommitment() UnsentCommitment {
	return UnsentCommitment{data: p.data[proofUcOff : proofUcOff+ucSz : proofUcOff+ucSz]}
}

func (p Proof) Witness() Witness {
	return Witness{data: p.data[proofWitOff : proofWitOff+witSz : proofWitOff+witSz]}
}

// Config holds the proof parameters.
type Config struct {
	data []byte
}

func (c Config) LogTraceDomainSize() uint64 { return getU64(c.data, cfgLogTraceOff) }
func (c Config) LogNCosets() uint64 { return getU64(c.data, cfgLogNCosetsOff) }
func (c Config) NQueries() uint64 { return getU64(c.data, cfgNQueriesOff) }
func (c Config) ProofOfWorkBits() uint64 { return getU64(c.data, cfgPowBitsOff) }
func (c Config) NVerifierFriendly() uint64 { return getU64(c.data, cfgNVerifierFriendly) }
func (c Config) FriNLayers() uint64 { return getU64(c.data, cfgFriNLayersOff) }
func (c Config) FriLogLastBound() uint64 { return getU64(c.data, cfgFriLogLastBoundOff) }
func (c Config) FriStepSizes() funvec.Uints { return funvec.NewUints(c.data[cfgFriStepSizesOff:]) }

func (c Config) SetLogTraceDomainSize(v uint64) { putU64(c.data, cfgLogTraceOff, v) }
func (c Config) SetLogNCosets(v uint64)         { putU64(c.data, cfgLogNCosetsOff, v) }
func (c Config) SetNQueries(v uint64)           { putU64(c.data, cfgNQueriesOff, v) }
func (c Config) SetProofOfWorkBits(v uint64)    { putU64(c.data, cfgPowBitsOff, v) }
func (c Config) SetNVerifierFriendly(v uint64)  { putU64(c.data, cfgNVerifierFriendly, v) }
func (c Config) SetFriNLayers(v uint64)         { putU64(c.data, cfgFriNLayersOff, v) }
func (c Config) SetFriLogLastBound(v uint64)    { putU64(c.data, cfgFriLogLastBoundOff, v) }

// SecurityBits is the bit budget this proof's parameters buy.
func (c Config) SecurityBits() uint64 {
	return c.NQueries()*c.LogNCosets() + c.ProofOfWorkBits()
}

// Validate rejects configs outside the compiled-in layout's shape.
func (c Config) Validate(nOriginalColumns, nInteractionColumns uint64) error {
	switch {
	case c.LogTraceDomainSize() < 1 || c.LogTraceDomainSize() > 30,
		c.LogTraceDomainSize()+c.LogNCosets() > MaxMerkleDepth,
		c.LogNCosets() < 1 || c.LogNCosets() > 4,
		c.NQueries() < 1 || c.NQueries() > MaxQueries,
		c.ProofOfWorkBits() > 40,
		c.FriNLayers() < 2 || c.FriNLayers() > MaxFriLayers,
		c.FriLogLastBound() > 8,
		uint64(1)<<c.FriLogLastBound() > MaxLastLayerCoeffs:
		return contract.ErrConfigInvalid
	}
	if nOriginalColumns != air.NumColumnsOriginal || nInteractionColumns != air.NumColumnsInteraction {
		return contract.ErrConfigInvalid
	}
	if c.SecurityBits() < air.MinSecurityBits {
		return contract.ErrConfigInvalid
	}
	steps := c.FriStepSizes()
	if uint64(steps.Len()) != c.FriNLayers() {
		return contract.ErrConfigInvalid
	}
	for i := 0; i < steps.Len(); i++ {
		want := uint64(1)
		if i == 0 {
			want = 0
		}
		if steps.Get(i) != want {
			return contract.ErrConfigInvalid
		}
	}
	// Inner folds must leave the oods polynomial inside the declared
	// last-layer degree bound.
	innerFolds := c.FriNLayers() - 1
	degree := uint64(air.OodsLength)
	for i := uint64(0); i < innerFolds; i++ {
		degree = (degree + 1) / 2
	}
	if degree > uint64(1)<<c.FriLogLastBound() {
		return contract.ErrConfigInvalid
	}
	return nil
}

// PublicInput is the public-memory contract the proof commits to.
type PublicInput struct {
	data []byte
}

func (p PublicInput) LogNSteps() uint64 { return getU64(p.data, piLogNStepsOff) }
func (p PublicInput) RangeCheckMin() uint64 { return getU64(p.data, piRcMinOff) }
func (p PublicInput) RangeCheckMax() uint64 { return getU64(p.data, piRcMaxOff) }

func (p PublicInput) SetLogNSteps(v uint64)     { putU64(p.data, piLogNStepsOff, v) }
func (p PublicInput) SetRangeCheckMin(v uint64) { putU64(p.data, piRcMinOff, v) }
func (p PublicInput) SetRangeCheckMax(v uint64) { putU64(p.data, piRcMaxOff, v) }

func (p PublicInput) Segment(i int) air.Segment {
	off := piSegmentsOff + i*16
	return air.Segment{Begin: getU64(p.data, off), Stop: getU64(p.data, off+8)}
}

func (p PublicInput) SetSegment(i int, s air.Segment) {
	off := piSegmentsOff + i*16
	putU64(p.data, off, s.Begin)
	putU64(p.data, off+8, s.Stop)
}

func (p PublicInput) mainPage() funvec.Vec {
	return funvec.New(p.data[piMainPageOff:], mainPageEntrySz)
}

func (p PublicInput) MainPageLen() int {
	return p.mainPage().Len()
}

func (p PublicInput) MainPageEntry(i int) (uint64, felt.Felt) {
	e := p.mainPage().At(i)
	var b [32]byte
	copy(b[:], e[8:])
	return getU64(e, 0), felt.FromBytes32(b)
}

func (p PublicInput) AppendMainPage(addr uint64, v felt.Felt) error {
	var e [mainPageEntrySz]byte
	putU64(e[:], 0, addr)
	b := v.Bytes32()
	copy(e[8:], b[:])
	return p.mainPage().Push(e[:])
}

// Decode materialises the view into the air adapter's plain form.
func (p PublicInput) Decode() air.PublicInput {
	out := air.PublicInput{
		LogNSteps:     p.LogNSteps(),
		RangeCheckMin: p.RangeCheckMin(),
		RangeCheckMax: p.RangeCheckMax(),
		Segments:      make([]air.Segment, air.NSegments),
	}
	for i := range out.Segments {
		out.Segments[i] = p.Segment(i)
	}
	n := p.MainPageLen()
	out.Addresses = make([]uint64, n)
	out.Values = make([]felt.Felt, n)
	for i := 0; i < n; i++ {
		out.Addresses[i], out.Values[i] = p.MainPageEntry(i)
	}
	return out
}

// UnsentCommitment carries the prover's commitment messages in transcript
// order.
type UnsentCommitment struct {
	data []byte
}

func (u UnsentCommitment) TracesOriginalRoot() felt.Felt { return getFelt(u.data, ucTracesOriginalOff) }
func (u UnsentCommitment) TracesInteractionRoot() felt.Felt { return getFelt(u.data, ucTracesInteractionOff) }
func (u UnsentCommitment) CompositionRoot() felt.Felt { return getFelt(u.data, ucCompositionOff) }
func (u UnsentCommitment) PowNonce() uint64 { return getU64(u.data, ucPowNonceOff) }

func (u UnsentCommitment) SetTracesOriginalRoot(v felt.Felt) {
	putFelt(u.data, ucTracesOriginalOff, v)
}
func (u UnsentCommitment) SetTracesInteractionRoot(v felt.Felt) {
	putFelt(u.data, ucTracesInteractionOff, v)
}
func (u UnsentCommitment) SetCompositionRoot(v felt.Felt) { putFelt(u.data, ucCompositionOff, v) }
func (u UnsentCommitment) SetPowNonce(v uint64)           { putU64(u.data, ucPowNonceOff, v) }

func (u UnsentCommitment) OodsValues() funvec.Felts {
	return funvec.NewFelts(u.data[ucOodsValuesOff : ucOodsValuesOff+oodsVecSz])
}

func (u UnsentCommitment) FriInnerRoots() funvec.Felts {
	return funvec.NewFelts(u.data[ucFriInnerRootsOff : ucFriInnerRootsOff+rootsVecSz])
}

func (u UnsentCommitment) LastLayerCoefficients() funvec.Felts {
	return funvec.NewFelts(u.data[ucLastCoeffsOff : ucLastCoeffsOff+lastCoeffsVecSz])
}

// Witness holds the decommitment values and Merkle authentication paths.
type Witness struct {
	data []byte
}

func (w Witness) TracesDecommitmentOriginal() funvec.Felts {
	return funvec.NewFelts(w.data[witTracesDecomOrigOff:witTracesDecomIntOff])
}

func (w Witness) TracesDecommitmentInteraction() funvec.Felts {
	return funvec.NewFelts(w.data[witTracesDecomIntOff:witTracesWitOrigOff])
}

func (w Witness) TracesWitnessOriginal() funvec.Felts {
	return funvec.NewFelts(w.data[witTracesWitOrigOff:witTracesWitIntOff])
}

func (w Witness) TracesWitnessInteraction() funvec.Felts {
	return funvec.NewFelts(w.data[witTracesWitIntOff:witCompDecomOff])
}

func (w Witness) CompositionDecommitment() funvec.Felts {
	return funvec.NewFelts(w.data[witCompDecomOff:witCompWitOff])
}

func (w Witness) CompositionWitness() funvec.Felts {
	return funvec.NewFelts(w.data[witCompWitOff:witFriLayersOff])
}

// FriLayer borrows the i-th inner layer's witness.
func (w Witness) FriLayer(i int) (FriLayerWitness, error) {
	if i < 0 || i >= MaxFriLayers {
		return FriLayerWitness{}, contract.ErrLayerOutOfRange
	}
	off := witFriLayersOff + i*friLayerSz
	return FriLayerWitness{data: w.data[off : off+friLayerSz : off+friLayerSz]}, nil
}

// FriLayerWitness is one inner layer's sibling leaves plus the table
// authentication paths.
type FriLayerWitness struct {
	data []byte
}

func (f FriLayerWitness) Leaves() funvec.Felts {
	return funvec.NewFelts(f.data[:friLayerLeavesSz])
}

func (f FriLayerWitness) TableWitness() funvec.Felts {
	return funvec.NewFelts(f.data[friLayerLeavesSz:])
}
