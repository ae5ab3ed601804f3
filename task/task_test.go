// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package task

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/contract"
)

// every valid descriptor the codec admits, for the bijection check.
func validDescriptors() []Descriptor {
	plain := []Kind{
		KindVerifyProofRoot, KindStarkCommit, KindStarkCommitOodsCoef,
		KindStarkCommitFri, KindStarkCommitAssign, KindGenerateQueries,
		KindStarkVerify, KindStarkVerifyFri, KindStarkVerifyLayers,
		KindStarkVerifyLayerAssignNext, KindStarkVerifyLastLayer,
		KindVerifyOutput,
	}
	layered := []Kind{
		KindStarkVerifyFriLayer, KindComputeNextLayer, KindComputeNextInner,
		KindStarkVerifyLayerDecommitmentMont,
	}

	var out []Descriptor
	for _, k := range plain {
		out = append(out, Descriptor{Kind: k})
	}
	for _, k := range layered {
		for layer := 0; layer < 8; layer++ {
			out = append(out, Layered(k, uint8(layer)))
		}
	}
	for _, target := range []DecommitTarget{TargetOriginal, TargetInteraction, TargetComposition} {
		out = append(out, Decommit(target, 0))
	}
	for layer := 0; layer < 8; layer++ {
		out = append(out, Decommit(TargetFri, uint8(layer)))
	}
	return out
}

func TestCodecBijection(t *testing.T) {
	seen := map[[4]byte]bool{}
	for _, d := range validDescriptors() {
		r := d.Encode()
		require.False(t, seen[r], "duplicate encoding for %s", d)
		seen[r] = true

		back, err := Decode(r)
		require.NoError(t, err, "decode %s", d)
		require.Equal(t, d, back)
		require.Equal(t, r, back.Encode())
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := Decode([4]byte{0, 0, 0, 0})
	require.ErrorIs(t, err, contract.ErrUnknownTask)

	_, err = Decode([4]byte{byte(kindEnd), 0, 0, 0})
	require.ErrorIs(t, err, contract.ErrUnknownTask)
}

func TestDecodeRejectsUnknownTarget(t *testing.T) {
	_, err := Decode([4]byte{byte(KindTableDecommit), 0, 0, 0})
	require.ErrorIs(t, err, contract.ErrUnknownDecommit)

	_, err = Decode([4]byte{byte(KindTableDecommit), byte(TargetFri) + 1, 0, 0})
	require.ErrorIs(t, err, contract.ErrUnknownDecommit)
}

func TestDecodeRejectsDirtyPadding(t *testing.T) {
	_, err := Decode([4]byte{byte(KindStarkCommit), 1, 0, 0})
	require.ErrorIs(t, err, contract.ErrUnknownTask)

	_, err = Decode([4]byte{byte(KindComputeNextInner), 3, 1, 0})
	require.ErrorIs(t, err, contract.ErrUnknownTask)

	// A non-Fri decommit target carries no layer payload.
	_, err = Decode([4]byte{byte(KindTableDecommit), byte(TargetOriginal), 2, 0})
	require.ErrorIs(t, err, contract.ErrUnknownDecommit)
}

func TestString(t *testing.T) {
	require.Equal(t, "VerifyProofRoot", Root().String())
	require.Equal(t, "TableDecommit(Fri(3))", Decommit(TargetFri, 3).String())
	require.Equal(t, "StarkVerifyFriLayer(2)", Layered(KindStarkVerifyFriLayer, 2).String())
}
