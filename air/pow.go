// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"encoding/binary"
	"math/bits"

	"github.com/luxfi/geth/common"
	"github.com/zeebo/blake3"
)

// PowDigest hashes the transcript digest with a nonce for the
// proof-of-work check.
func PowDigest(digest common.Hash, nonce uint64) common.Hash {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	h := blake3.New()
	h.Write(digest[:])
	h.Write(n[:])
	var out common.Hash
	h.Digest().Read(out[:])
	return out
}

// CheckProofOfWork reports whether the nonce grinds the transcript digest
// below the configured difficulty: powBits leading zero bits.
func CheckProofOfWork(digest common.Hash, nonce uint64, powBits uint64) bool {
	return leadingZeroBits(PowDigest(digest, nonce)) >= int(powBits)
}

func leadingZeroBits(h common.Hash) int {
	total := 0
	for _, b := range h {
		if b == 0 {
			total += 8
			continue
		}
		total += bits.LeadingZeros8(b)
		break
	}
	return total
}
