// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"sort"

	"github.com/luxfi/starkverify/felt"
)

// GenerateQueries draws nSamples query indices below upperBound from the
// transcript, returning them sorted and deduplicated. Sorting makes the
// FRI fold consume cosets front to back; duplicates carry no information.
func GenerateQueries(t *Transcript, nSamples, upperBound uint64) []uint64 {
	out := make([]uint64, 0, nSamples)
	for i := uint64(0); i < nSamples; i++ {
		r := t.RandomFelt()
		out = append(out, r.Uint64()%upperBound)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	dedup := out[:0]
	for i, q := range out {
		if i == 0 || q != out[i-1] {
			dedup = append(dedup, q)
		}
	}
	return dedup
}

// QueriesToFelts converts index form for account storage.
func QueriesToFelts(qs []uint64) []felt.Felt {
	out := make([]felt.Felt, len(qs))
	for i, q := range qs {
		out[i] = felt.FromUint64(q)
	}
	return out
}
