// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"encoding/binary"

	"github.com/luxfi/geth/common"
	"github.com/zeebo/blake3"

	"github.com/luxfi/starkverify/felt"
)

// Transcript is the running Fiat-Shamir state. The verifier and the prover
// drive an identical sequence of Read/Random calls, which is what makes
// the interactive protocol non-interactive.
//
// The struct is plain data so it round-trips through the account's
// intermediate region; callers load it, mutate it, and store it back.
type Transcript struct {
	Digest  common.Hash
	Counter uint64
}

func NewTranscript(seed common.Hash) Transcript {
	return Transcript{Digest: seed}
}

// RandomFelt draws a verifier challenge: hash(digest || counter), reduced
// into the field. The counter advances so consecutive draws differ; any
// prover message resets it.
func (t *Transcript) RandomFelt() felt.Felt {
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], t.Counter)
	h := blake3.New()
	h.Write(t.Digest[:])
	h.Write(ctr[:])
	t.Counter++
	var out common.Hash
	h.Digest().Read(out[:])
	return felt.FromHash(out)
}

// ReadFelt absorbs a prover message into the digest.
func (t *Transcript) ReadFelt(x felt.Felt) {
	b := x.Bytes32()
	t.absorb(b[:])
}

// ReadFelts absorbs a vector of prover messages as one block.
func (t *Transcript) ReadFelts(xs []felt.Felt) {
	h := blake3.New()
	h.Write(t.Digest[:])
	for _, x := range xs {
		b := x.Bytes32()
		h.Write(b[:])
	}
	h.Digest().Read(t.Digest[:])
	t.Counter = 0
}

// ReadUint64 absorbs a small scalar, used for the proof-of-work nonce.
func (t *Transcript) ReadUint64(n uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	t.absorb(b[:])
}

func (t *Transcript) absorb(msg []byte) {
	h := blake3.New()
	h.Write(t.Digest[:])
	h.Write(msg)
	h.Digest().Read(t.Digest[:])
	t.Counter = 0
}
