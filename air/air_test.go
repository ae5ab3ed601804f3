// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/felt"
)

func TestBitReverse(t *testing.T) {
	require.Equal(t, uint64(8), BitReverse(1, 4))
	require.Equal(t, uint64(1), BitReverse(8, 4))
	require.Equal(t, uint64(0), BitReverse(0, 4))
	for x := uint64(0); x < 32; x++ {
		require.Equal(t, x, BitReverse(BitReverse(x, 5), 5))
	}
}

func TestDomainPairing(t *testing.T) {
	d := NewStarkDomains(4, 1)
	require.Equal(t, uint64(5), d.LogEvalDomainSize)
	// Even/odd neighbours must land on +-x.
	for q := uint64(0); q < 32; q += 2 {
		x := d.QueryPoint(q)
		require.True(t, d.QueryPoint(q+1).Equal(x.Neg()), "query %d", q)
	}
}

func TestTranscriptDeterminism(t *testing.T) {
	seed := common.Hash{1, 2, 3}
	a := NewTranscript(seed)
	b := NewTranscript(seed)

	require.True(t, a.RandomFelt().Equal(b.RandomFelt()))
	// The counter advances in lockstep, so second draws agree too.
	require.True(t, a.RandomFelt().Equal(b.RandomFelt()))

	a.ReadFelt(felt.FromUint64(7))
	b.ReadFelt(felt.FromUint64(7))
	require.Equal(t, a.Digest, b.Digest)
	require.Equal(t, uint64(0), a.Counter)

	a.ReadFelt(felt.FromUint64(8))
	require.NotEqual(t, a.Digest, b.Digest)
}

func TestTranscriptDrawsAdvance(t *testing.T) {
	tr := NewTranscript(common.Hash{9})
	first := tr.RandomFelt()
	second := tr.RandomFelt()
	require.False(t, first.Equal(second))
}

func TestMerkleRoundTrip(t *testing.T) {
	depth := 3
	leaves := make([]common.Hash, 1<<depth)
	for i := range leaves {
		leaves[i] = LeafHash([]felt.Felt{felt.FromUint64(uint64(i + 1))})
	}
	root := Root(leaves, depth)

	for i := range leaves {
		path := Path(leaves, depth, uint64(i))
		require.True(t, VerifyRow(root, depth, uint64(i), leaves[i], path), "leaf %d", i)
	}

	// Tampered leaf fails.
	path := Path(leaves, depth, 2)
	bad := LeafHash([]felt.Felt{felt.FromUint64(999)})
	require.False(t, VerifyRow(root, depth, 2, bad, path))
}

func TestDigestsFitInField(t *testing.T) {
	h := LeafHash([]felt.Felt{felt.FromUint64(1)})
	require.Zero(t, h[0])
	require.True(t, felt.FromHash(h).Hash() == h)
}

func TestVerifyTable(t *testing.T) {
	depth := 3
	width := 2
	rows := make([][]felt.Felt, 1<<depth)
	leaves := make([]common.Hash, 1<<depth)
	for i := range rows {
		rows[i] = []felt.Felt{felt.FromUint64(uint64(2 * i)), felt.FromUint64(uint64(2*i + 1))}
		leaves[i] = LeafHash(rows[i])
	}
	root := felt.FromHash(Root(leaves, depth))

	indices := []uint64{1, 5, 6}
	var values, paths []felt.Felt
	for _, idx := range indices {
		values = append(values, rows[idx]...)
		for _, node := range Path(leaves, depth, idx) {
			paths = append(paths, felt.FromHash(node))
		}
	}

	require.NoError(t, VerifyTable(root, depth, indices, values, width, paths))

	values[0] = values[0].Add(felt.One)
	require.Error(t, VerifyTable(root, depth, indices, values, width, paths))
}

// The verifier-side fold and the prover-side coefficient fold must agree
// on every domain point.
func TestFriFoldConsistency(t *testing.T) {
	coeffs := []felt.Felt{
		felt.FromUint64(3), felt.FromUint64(1), felt.FromUint64(4),
		felt.FromUint64(1), felt.FromUint64(5), felt.FromUint64(9),
		felt.FromUint64(2), felt.FromUint64(6),
	}
	evalPoint := felt.FromUint64(77)
	next := FoldCoefficients(coeffs, evalPoint)
	require.Len(t, next, 4)

	for _, n := range []uint64{2, 5, 111} {
		x := felt.FromUint64(n)
		v0 := felt.Horner(coeffs, x)
		v1 := felt.Horner(coeffs, x.Neg())
		folded := FriFormula(v0, v1, evalPoint, x.Inv())
		require.True(t, felt.Horner(next, x.Mul(x)).Equal(folded), "x = %d", n)
	}
}

func TestVerifyLastLayer(t *testing.T) {
	coeffs := []felt.Felt{felt.FromUint64(7), felt.FromUint64(5)}
	x := felt.FromUint64(3)
	good := felt.Horner(coeffs, x)
	require.True(t, VerifyLastLayer([]felt.Felt{good}, []felt.Felt{x.Inv()}, coeffs))
	require.False(t, VerifyLastLayer([]felt.Felt{good.Add(felt.One)}, []felt.Felt{x.Inv()}, coeffs))
}

func TestProofOfWork(t *testing.T) {
	digest := common.Hash{42}
	var nonce uint64
	for !CheckProofOfWork(digest, nonce, 4) {
		nonce++
	}
	require.True(t, CheckProofOfWork(digest, nonce, 4))
	require.True(t, CheckProofOfWork(digest, nonce, 0))
}

func TestGenerateQueries(t *testing.T) {
	tr := NewTranscript(common.Hash{5})
	qs := GenerateQueries(&tr, 16, 32)
	require.NotEmpty(t, qs)
	for i, q := range qs {
		require.Less(t, q, uint64(32))
		if i > 0 {
			require.Greater(t, q, qs[i-1], "sorted and deduplicated")
		}
	}

	// Same transcript state, same queries.
	tr2 := NewTranscript(common.Hash{5})
	require.Equal(t, qs, GenerateQueries(&tr2, 16, 32))
}

func TestVerifyOods(t *testing.T) {
	coeffs := make([]felt.Felt, NConstraints)
	oods := make([]felt.Felt, OodsLength)
	var lhs felt.Felt
	for i := 0; i < NConstraints; i++ {
		coeffs[i] = felt.FromUint64(uint64(i + 1))
		oods[i] = felt.FromUint64(uint64(2*i + 1))
		lhs = lhs.Add(coeffs[i].Mul(oods[i]))
	}
	inter := felt.FromUint64(123)
	oods[MaskSize] = lhs
	oods[MaskSize+1] = felt.Zero

	require.NoError(t, VerifyOods(oods, coeffs, inter))

	oods[MaskSize] = lhs.Add(felt.One)
	require.Error(t, VerifyOods(oods, coeffs, inter))

	require.Error(t, VerifyOods(oods[:10], coeffs, inter))
}

func TestPublicInput(t *testing.T) {
	pi := PublicInput{
		LogNSteps:     3,
		RangeCheckMin: 1,
		RangeCheckMax: 100,
		Segments: []Segment{
			{Begin: 1, Stop: 3},
			{Begin: 3, Stop: 3},
			{Begin: 3, Stop: 5},
		},
		Addresses: []uint64{1, 2, 3, 4},
		Values: []felt.Felt{
			felt.FromUint64(10), felt.FromUint64(11),
			felt.FromUint64(20), felt.FromUint64(21),
		},
	}
	d := NewStarkDomains(4, 1)
	require.NoError(t, pi.Validate(&d))

	hash, outputs, err := pi.VerifyOutput()
	require.NoError(t, err)
	require.False(t, hash.IsZero())
	require.Len(t, outputs, 2)
	require.True(t, outputs[0].Equal(felt.FromUint64(20)))
	require.True(t, outputs[1].Equal(felt.FromUint64(21)))

	// Digest must cover the verifier-friendly layer count.
	require.NotEqual(t, pi.Digest(1), pi.Digest(2))

	// Gapped main page fails validation.
	pi.Addresses = []uint64{1, 3, 4, 5}
	require.Error(t, pi.Validate(&d))
}
