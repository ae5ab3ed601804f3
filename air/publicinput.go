// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"encoding/binary"

	"github.com/luxfi/geth/common"
	"github.com/zeebo/blake3"

	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

// Segment indices of the compiled-in layout.
const (
	SegmentProgram   = 0
	SegmentExecution = 1
	SegmentOutput    = 2
	NSegments        = 3
)

// Segment is a half-open address range in the public memory.
type Segment struct {
	Begin uint64
	Stop  uint64
}

// PublicInput is the decoded public-input contract consumed by the air
// adapters: the caller's views feed plain values in.
type PublicInput struct {
	LogNSteps     uint64
	RangeCheckMin uint64
	RangeCheckMax uint64
	Segments      []Segment
	Addresses     []uint64
	Values        []felt.Felt
}

// Digest seeds the Fiat-Shamir transcript: a hash over the whole public
// input plus the verifier-friendly layer count.
func (p *PublicInput) Digest(nVerifierFriendlyLayers uint64) common.Hash {
	h := blake3.New()
	var b [8]byte
	for _, n := range []uint64{nVerifierFriendlyLayers, p.LogNSteps, p.RangeCheckMin, p.RangeCheckMax} {
		binary.LittleEndian.PutUint64(b[:], n)
		h.Write(b[:])
	}
	for _, s := range p.Segments {
		binary.LittleEndian.PutUint64(b[:], s.Begin)
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], s.Stop)
		h.Write(b[:])
	}
	for i, a := range p.Addresses {
		binary.LittleEndian.PutUint64(b[:], a)
		h.Write(b[:])
		v := p.Values[i].Bytes32()
		h.Write(v[:])
	}
	var out common.Hash
	h.Digest().Read(out[:])
	return out
}

// Validate checks the public input against the stark domains: step count
// inside the trace, a sane range-check window, ordered segments, and a
// contiguous sorted main page.
func (p *PublicInput) Validate(d *StarkDomains) error {
	if p.LogNSteps > d.LogTraceDomainSize {
		return contract.ErrPublicInput
	}
	if p.RangeCheckMin >= p.RangeCheckMax {
		return contract.ErrPublicInput
	}
	if len(p.Segments) != NSegments {
		return contract.ErrPublicInput
	}
	for i, s := range p.Segments {
		if s.Begin > s.Stop {
			return contract.ErrPublicInput
		}
		if i > 0 && p.Segments[i-1].Stop > s.Begin {
			return contract.ErrPublicInput
		}
	}
	if len(p.Addresses) != len(p.Values) {
		return contract.ErrPublicInput
	}
	for i, a := range p.Addresses {
		if i > 0 && a != p.Addresses[i-1]+1 {
			return contract.ErrPublicInput
		}
	}
	return nil
}

// VerifyOutput extracts the program hash and the output sequence from the
// main page. The program hash commits to every value inside the program
// segment; outputs are the values inside the output segment, in address
// order.
func (p *PublicInput) VerifyOutput() (felt.Felt, []felt.Felt, error) {
	prog := p.Segments[SegmentProgram]
	out := p.Segments[SegmentOutput]

	h := blake3.New()
	var outputs []felt.Felt
	seenProgram := false
	for i, a := range p.Addresses {
		switch {
		case a >= prog.Begin && a < prog.Stop:
			b := p.Values[i].Bytes32()
			h.Write(b[:])
			seenProgram = true
		case a >= out.Begin && a < out.Stop:
			outputs = append(outputs, p.Values[i])
		}
	}
	if !seenProgram {
		return felt.Zero, nil, contract.ErrPublicInput
	}
	var d common.Hash
	h.Digest().Read(d[:])
	return felt.FromHash(d), outputs, nil
}
