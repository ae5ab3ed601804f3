// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prooftest builds valid proof account images for tests. It runs
// the prover side of every primitive the verifier consumes, driving the
// same transcript, domain and Merkle code so the two sides cannot drift.
package prooftest

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/funvec"
)

// Params shapes a generated proof.
type Params struct {
	LogTraceDomainSize uint64
	LogNCosets         uint64
	NQueries           uint64
	ProofOfWorkBits    uint64
	FriNLayers         uint64
	FriLogLastBound    uint64
	NVerifierFriendly  uint64
	Program            []felt.Felt
	Output             []felt.Felt
}

// Small is the reference proof most tests use.
func Small() Params {
	return Params{
		LogTraceDomainSize: 4,
		LogNCosets:         1,
		NQueries:           4,
		ProofOfWorkBits:    2,
		FriNLayers:         3,
		FriLogLastBound:    6,
		NVerifierFriendly:  1,
		Program: []felt.Felt{
			felt.FromUint64(0x480680017fff8000),
			felt.FromUint64(1),
			felt.FromUint64(0x208b7fff7fff7ffe),
		},
		Output: []felt.Felt{felt.FromUint64(0), felt.FromUint64(1), felt.FromUint64(5)},
	}
}

// Smaller is a second reference proof with fewer queries and layers, so
// its schedule drains in fewer invocations.
func Smaller() Params {
	p := Small()
	p.NQueries = 3
	p.FriNLayers = 2
	p.FriLogLastBound = 8
	return p
}

// table is one committed evaluation table and its Merkle tree.
type table struct {
	rows   [][]felt.Felt
	leaves []common.Hash
	depth  int
	root   felt.Felt
}

func commitTable(rows [][]felt.Felt, depth int) table {
	leaves := make([]common.Hash, len(rows))
	mont := make([]felt.Felt, 0, 8)
	for i, row := range rows {
		mont = mont[:0]
		for _, v := range row {
			mont = append(mont, v.Montgomery())
		}
		leaves[i] = air.LeafHash(mont)
	}
	return table{rows: rows, leaves: leaves, depth: depth, root: felt.FromHash(air.Root(leaves, depth))}
}

// Build assembles a complete, valid account image in the Publish-complete
// state (stage still Publish; nothing scheduled).
func Build(p Params) []byte {
	data := make([]byte, account.AccountSize)
	acct, err := account.Open(data)
	if err != nil {
		panic(err)
	}
	proof := acct.Proof()

	// Config.
	cfg := proof.Config()
	cfg.SetLogTraceDomainSize(p.LogTraceDomainSize)
	cfg.SetLogNCosets(p.LogNCosets)
	cfg.SetNQueries(p.NQueries)
	cfg.SetProofOfWorkBits(p.ProofOfWorkBits)
	cfg.SetNVerifierFriendly(p.NVerifierFriendly)
	cfg.SetFriNLayers(p.FriNLayers)
	cfg.SetFriLogLastBound(p.FriLogLastBound)
	steps := cfg.FriStepSizes()
	steps.Flush()
	for i := uint64(0); i < p.FriNLayers; i++ {
		step := uint64(1)
		if i == 0 {
			step = 0
		}
		if err := steps.Append(step); err != nil {
			panic(err)
		}
	}

	// Public input: a contiguous main page holding the program then the
	// output values.
	pi := proof.PublicInput()
	pi.SetLogNSteps(p.LogTraceDomainSize)
	pi.SetRangeCheckMin(1)
	pi.SetRangeCheckMax(1 << 16)
	progBegin := uint64(1)
	progStop := progBegin + uint64(len(p.Program))
	outStop := progStop + uint64(len(p.Output))
	pi.SetSegment(air.SegmentProgram, air.Segment{Begin: progBegin, Stop: progStop})
	pi.SetSegment(air.SegmentExecution, air.Segment{Begin: progStop, Stop: progStop})
	pi.SetSegment(air.SegmentOutput, air.Segment{Begin: progStop, Stop: outStop})
	addr := progBegin
	for _, v := range p.Program {
		if err := pi.AppendMainPage(addr, v); err != nil {
			panic(err)
		}
		addr++
	}
	for _, v := range p.Output {
		if err := pi.AppendMainPage(addr, v); err != nil {
			panic(err)
		}
		addr++
	}

	domains := air.NewStarkDomains(p.LogTraceDomainSize, p.LogNCosets)
	evalSize := uint64(1) << domains.LogEvalDomainSize
	depth := int(domains.LogEvalDomainSize)

	// Committed tables: deterministic pseudo-random trace contents.
	original := commitTable(pseudoRows(evalSize, air.NumColumnsOriginal, 7), depth)
	interaction := commitTable(pseudoRows(evalSize, air.NumColumnsInteraction, 101), depth)
	composition := commitTable(pseudoRows(evalSize, air.ConstraintDegree, 211), depth)

	uc := proof.UnsentCommitment()
	uc.SetTracesOriginalRoot(original.root)
	uc.SetTracesInteractionRoot(interaction.root)
	uc.SetCompositionRoot(composition.root)

	// Drive the transcript exactly as the verifier will.
	decoded := pi.Decode()
	t := air.NewTranscript(decoded.Digest(p.NVerifierFriendly))
	t.ReadFelt(original.root)
	t.RandomFelt() // interaction z
	t.RandomFelt() // interaction alpha
	t.ReadFelt(interaction.root)
	compositionAlpha := t.RandomFelt()
	tracesCoeffs := powers(compositionAlpha, air.NConstraints)
	t.ReadFelt(composition.root)
	t.RandomFelt() // interaction after composition

	// Oods values: free mask samples, composition samples chosen to
	// satisfy the consistency equation.
	oods := make([]felt.Felt, air.OodsLength)
	for i := 0; i < air.MaskSize; i++ {
		oods[i] = felt.FromUint64(uint64(1009*i + 13))
	}
	var lhs felt.Felt
	for i := 0; i < air.NConstraints; i++ {
		lhs = lhs.Add(tracesCoeffs[i].Mul(oods[i]))
	}
	oods[air.MaskSize] = lhs
	oods[air.MaskSize+1] = felt.Zero
	if err := uc.OodsValues().Overwrite(oods); err != nil {
		panic(err)
	}
	t.ReadFelts(oods)

	oodsAlpha := t.RandomFelt()
	oodsCoeffs := powers(oodsAlpha, air.OodsLength)

	// FRI: fold the boundary polynomial layer by layer, committing each
	// inner layer's coset table.
	nInner := int(p.FriNLayers - 1)
	padded := (1 << p.FriLogLastBound) << nInner
	layerCoeffs := make([]felt.Felt, padded)
	copy(layerCoeffs, oodsCoeffs)

	layerTables := make([]table, nInner)
	evalPoints := make([]felt.Felt, nInner)
	for i := 0; i < nInner; i++ {
		n := evalSize >> i
		rows := make([][]felt.Felt, n/2)
		for k := uint64(0); k < n/2; k++ {
			rows[k] = []felt.Felt{
				felt.Horner(layerCoeffs, layerPoint(&domains, uint64(i), 2*k)),
				felt.Horner(layerCoeffs, layerPoint(&domains, uint64(i), 2*k+1)),
			}
		}
		layerTables[i] = commitTable(rows, depth-1-i)
		t.ReadFelt(layerTables[i].root)
		evalPoints[i] = t.RandomFelt()
		layerCoeffs = air.FoldCoefficients(layerCoeffs, evalPoints[i])
	}
	if err := uc.FriInnerRoots().Overwrite(roots(layerTables)); err != nil {
		panic(err)
	}
	if err := uc.LastLayerCoefficients().Overwrite(layerCoeffs); err != nil {
		panic(err)
	}
	t.ReadFelts(layerCoeffs)

	// Grind the proof of work.
	var nonce uint64
	for !air.CheckProofOfWork(t.Digest, nonce, p.ProofOfWorkBits) {
		nonce++
	}
	uc.SetPowNonce(nonce)
	t.ReadUint64(nonce)

	queries := air.GenerateQueries(&t, p.NQueries, evalSize)

	buildTraceWitness(proof, original, interaction, composition, queries)
	buildFriWitness(proof, &domains, layerTables, evalPoints, oodsCoeffs, queries)

	return data
}

// pseudoRows fills a table with deterministic filler values.
func pseudoRows(n uint64, width int, salt uint64) [][]felt.Felt {
	rows := make([][]felt.Felt, n)
	for r := uint64(0); r < n; r++ {
		row := make([]felt.Felt, width)
		for c := range row {
			row[c] = felt.FromUint64(salt + r*uint64(width) + uint64(c))
		}
		rows[r] = row
	}
	return rows
}

func powers(alpha felt.Felt, n int) []felt.Felt {
	out := make([]felt.Felt, n)
	acc := felt.One
	for i := range out {
		out[i] = acc
		acc = acc.Mul(alpha)
	}
	return out
}

func roots(tables []table) []felt.Felt {
	out := make([]felt.Felt, len(tables))
	for i, tb := range tables {
		out[i] = tb.root
	}
	return out
}

// layerPoint is the evaluation-domain point of index idx at the given
// inner layer: offset^(2^layer) * (g^(2^layer))^bitrev(idx).
func layerPoint(d *air.StarkDomains, layer, idx uint64) felt.Felt {
	off := d.CosetOffset
	gen := d.EvalGenerator
	for j := uint64(0); j < layer; j++ {
		off = off.Mul(off)
		gen = gen.Mul(gen)
	}
	return off.Mul(gen.PowUint64(air.BitReverse(idx, d.LogEvalDomainSize-layer)))
}

func buildTraceWitness(proof account.Proof, original, interaction, composition table, queries []uint64) {
	wit := proof.Witness()
	fill := func(tb table, values, paths funvec.Felts) {
		for _, q := range queries {
			for _, v := range tb.rows[q] {
				if err := values.Append(v); err != nil {
					panic(err)
				}
			}
			for _, node := range air.Path(tb.leaves, tb.depth, q) {
				if err := paths.Append(felt.FromHash(node)); err != nil {
					panic(err)
				}
			}
		}
	}
	fill(original, wit.TracesDecommitmentOriginal(), wit.TracesWitnessOriginal())
	fill(interaction, wit.TracesDecommitmentInteraction(), wit.TracesWitnessInteraction())
	fill(composition, wit.CompositionDecommitment(), wit.CompositionWitness())
}

// buildFriWitness simulates the verifier's layer walk so sibling leaves
// and table paths land in exactly the consumption order.
func buildFriWitness(proof account.Proof, d *air.StarkDomains, layerTables []table, evalPoints, oodsCoeffs []felt.Felt, queries []uint64) {
	type query struct {
		idx  uint64
		y    felt.Felt
		xInv felt.Felt
	}

	live := make([]query, len(queries))
	for i, q := range queries {
		x := d.QueryPoint(q)
		live[i] = query{idx: q, y: felt.Horner(oodsCoeffs, x), xInv: x.Inv()}
	}

	for layer, tb := range layerTables {
		layerWit, err := proof.Witness().FriLayer(layer)
		if err != nil {
			panic(err)
		}
		leaves := layerWit.Leaves()
		paths := layerWit.TableWitness()

		var next []query
		for i := 0; i < len(live); {
			coset := live[i].idx / air.FriCosetSize
			var have [air.FriCosetSize]bool
			var xInvEven felt.Felt
			xInvSet := false
			for i < len(live) && live[i].idx/air.FriCosetSize == coset {
				pos := live[i].idx % air.FriCosetSize
				have[pos] = true
				if pos == 0 {
					xInvEven = live[i].xInv
					xInvSet = true
				} else if !xInvSet {
					xInvEven = live[i].xInv.Neg()
					xInvSet = true
				}
				i++
			}
			vals := tb.rows[coset]
			for pos := range have {
				if !have[pos] {
					if err := leaves.Append(vals[pos]); err != nil {
						panic(err)
					}
				}
			}
			for _, node := range air.Path(tb.leaves, tb.depth, coset) {
				if err := paths.Append(felt.FromHash(node)); err != nil {
					panic(err)
				}
			}
			next = append(next, query{
				idx:  coset,
				y:    air.FriFormula(vals[0], vals[1], evalPoints[layer], xInvEven),
				xInv: xInvEven.Mul(xInvEven),
			})
		}
		live = next
	}
}
