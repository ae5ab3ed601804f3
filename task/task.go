// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package task defines the task taxonomy and the 4-byte descriptor codec:
// byte 0 is the kind tag, bytes 1-3 carry a small payload (a FRI layer
// index or a table-decommit target). The codec is total and reversible
// over valid records.
package task

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/starkverify/contract"
)

// Kind enumerates the task tree. The tags are wire-stable.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVerifyProofRoot
	KindStarkCommit
	KindStarkCommitOodsCoef
	KindStarkCommitFri
	KindStarkCommitAssign
	KindGenerateQueries
	KindStarkVerify
	KindTableDecommit
	KindStarkVerifyFri
	KindStarkVerifyLayers
	KindStarkVerifyFriLayer
	KindComputeNextLayer
	KindComputeNextInner
	KindStarkVerifyLayerDecommitmentMont
	KindStarkVerifyLayerAssignNext
	KindStarkVerifyLastLayer
	KindVerifyOutput

	kindEnd
)

// DecommitTarget selects which commitment/witness/decommitment triple a
// TableDecommit task consumes.
type DecommitTarget uint8

const (
	TargetInvalid DecommitTarget = iota
	TargetOriginal
	TargetInteraction
	TargetComposition
	// TargetFri is the base tag for Fri(i); the layer index rides in the
	// payload's second byte.
	TargetFri
)

// Descriptor is a decoded task record.
type Descriptor struct {
	Kind Kind
	// Payload meaning depends on the kind: layer index for the FRI layer
	// family, target (and layer for Fri targets) for TableDecommit.
	Target DecommitTarget
	Layer  uint8
}

func Root() Descriptor {
	return Descriptor{Kind: KindVerifyProofRoot}
}

func Decommit(target DecommitTarget, layer uint8) Descriptor {
	return Descriptor{Kind: KindTableDecommit, Target: target, Layer: layer}
}

func Layered(kind Kind, layer uint8) Descriptor {
	return Descriptor{Kind: kind, Layer: layer}
}

func (d Descriptor) String() string {
	switch d.Kind {
	case KindTableDecommit:
		switch d.Target {
		case TargetOriginal:
			return "TableDecommit(Original)"
		case TargetInteraction:
			return "TableDecommit(Interaction)"
		case TargetComposition:
			return "TableDecommit(Composition)"
		case TargetFri:
			return fmt.Sprintf("TableDecommit(Fri(%d))", d.Layer)
		}
		return "TableDecommit(Invalid)"
	case KindStarkVerifyFriLayer, KindComputeNextLayer, KindComputeNextInner,
		KindStarkVerifyLayerDecommitmentMont:
		return fmt.Sprintf("%s(%d)", kindName(d.Kind), d.Layer)
	default:
		return kindName(d.Kind)
	}
}

// Encode packs the descriptor into its 4-byte record.
func (d Descriptor) Encode() [4]byte {
	var r [4]byte
	r[0] = byte(d.Kind)
	switch d.Kind {
	case KindTableDecommit:
		r[1] = byte(d.Target)
		r[2] = d.Layer
	case KindStarkVerifyFriLayer, KindComputeNextLayer, KindComputeNextInner,
		KindStarkVerifyLayerDecommitmentMont:
		r[1] = d.Layer
	}
	return r
}

// Decode unpacks a 4-byte record, rejecting unknown kinds and targets.
func Decode(r [4]byte) (Descriptor, error) {
	k := Kind(r[0])
	if k == KindInvalid || k >= kindEnd {
		return Descriptor{}, contract.ErrUnknownTask
	}
	d := Descriptor{Kind: k}
	switch k {
	case KindTableDecommit:
		t := DecommitTarget(r[1])
		if t == TargetInvalid || t > TargetFri {
			return Descriptor{}, contract.ErrUnknownDecommit
		}
		d.Target = t
		d.Layer = r[2]
		if t != TargetFri && d.Layer != 0 {
			return Descriptor{}, contract.ErrUnknownDecommit
		}
		if r[3] != 0 {
			return Descriptor{}, contract.ErrUnknownTask
		}
	case KindStarkVerifyFriLayer, KindComputeNextLayer, KindComputeNextInner,
		KindStarkVerifyLayerDecommitmentMont:
		d.Layer = r[1]
		if r[2] != 0 || r[3] != 0 {
			return Descriptor{}, contract.ErrUnknownTask
		}
	default:
		if binary.LittleEndian.Uint32(r[:])>>8 != 0 {
			return Descriptor{}, contract.ErrUnknownTask
		}
	}
	return d, nil
}

func kindName(k Kind) string {
	switch k {
	case KindVerifyProofRoot:
		return "VerifyProofRoot"
	case KindStarkCommit:
		return "StarkCommit"
	case KindStarkCommitOodsCoef:
		return "StarkCommitOodsCoef"
	case KindStarkCommitFri:
		return "StarkCommitFri"
	case KindStarkCommitAssign:
		return "StarkCommitAssign"
	case KindGenerateQueries:
		return "GenerateQueries"
	case KindStarkVerify:
		return "StarkVerify"
	case KindTableDecommit:
		return "TableDecommit"
	case KindStarkVerifyFri:
		return "StarkVerifyFri"
	case KindStarkVerifyLayers:
		return "StarkVerifyLayers"
	case KindStarkVerifyFriLayer:
		return "StarkVerifyFriLayer"
	case KindComputeNextLayer:
		return "ComputeNextLayer"
	case KindComputeNextInner:
		return "ComputeNextInner"
	case KindStarkVerifyLayerDecommitmentMont:
		return "StarkVerifyLayerDecommitmentMont"
	case KindStarkVerifyLayerAssignNext:
		return "StarkVerifyLayerAssignNext"
	case KindStarkVerifyLastLayer:
		return "StarkVerifyLastLayer"
	case KindVerifyOutput:
		return "VerifyOutput"
	}
	return "Invalid"
}
