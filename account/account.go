// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"encoding/binary"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

// Stage tags, stored in the account's first byte.
const (
	StagePublish  byte = 0
	StageVerify   byte = 1
	StageVerified byte = 2
)

// Account wraps the full host-owned byte image. The wrapper itself holds
// no state beyond the slice; dropping it releases the borrow.
type Account struct {
	data []byte
}

// Open validates the image size and wraps it. The host grants exclusive
// mutable access for the duration of one invocation.
func Open(data []byte) (*Account, error) {
	if len(data) != AccountSize {
		return nil, contract.ErrBadAccountSize
	}
	return &Account{data: data}, nil
}

func (a *Account) Stage() byte {
	return a.data[0]
}

func (a *Account) SetStage(s byte) {
	a.data[0] = s
}

// region carves a capped window so sibling regions cannot alias.
func (a *Account) region(off, size int) []byte {
	start := HeaderSize + off
	return a.data[start : start+size : start+size]
}

// ProofRegion is the raw window PublishFragment splices into.
func (a *Account) ProofRegion() []byte {
	return a.region(dataProofOff, ProofSize)
}

func (a *Account) Proof() Proof {
	return Proof{data: a.region(dataProofOff, ProofSize)}
}

func (a *Account) Cache() Cache {
	return Cache{data: a.region(dataCacheOff, CacheSize)}
}

func (a *Account) Intermediate() Intermediate {
	return Intermediate{data: a.region(dataInterOff, IntermediateSize)}
}

// ScheduleRegion is the raw window the schedule stack lives in.
func (a *Account) ScheduleRegion() []byte {
	return a.region(dataScheduleOff, ScheduleSize)
}

// Byte-level field helpers shared by all views.

func getU64(data []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(data[off : off+8])
}

func putU64(data []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(data[off:off+8], v)
}

func getFelt(data []byte, off int) felt.Felt {
	var b [32]byte
	copy(b[:], data[off:off+32])
	return felt.FromBytes32(b)
}

func putFelt(data []byte, off int, v felt.Felt) {
	b := v.Bytes32()
	copy(data[off:off+32], b[:])
}

func getHash(data []byte, off int) common.Hash {
	var h common.Hash
	copy(h[:], data[off:off+32])
	return h
}

func putHash(data []byte, off int, h common.Hash) {
	copy(data[off:off+32], h[:])
}
