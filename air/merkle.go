// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"github.com/luxfi/geth/common"
	"github.com/zeebo/blake3"

	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

// LeafHash hashes one table row. Rows are hashed in Montgomery form; the
// caller supplies values already converted. Tree digests are truncated to
// 248 bits so witness regions can carry them as field elements losslessly.
func LeafHash(row []felt.Felt) common.Hash {
	h := blake3.New()
	for _, v := range row {
		b := v.Bytes32()
		h.Write(b[:])
	}
	var out common.Hash
	h.Digest().Read(out[:])
	out[0] = 0
	return out
}

func hashNodes(a, b common.Hash) common.Hash {
	h := blake3.New()
	h.Write(a[:])
	h.Write(b[:])
	var out common.Hash
	h.Digest().Read(out[:])
	out[0] = 0
	return out
}

// Root builds a binary Merkle root over exactly 2^depth leaves.
func Root(leaves []common.Hash, depth int) common.Hash {
	level := make([]common.Hash, 1<<depth)
	copy(level, leaves)
	for len(level) > 1 {
		next := level[:len(level)/2]
		for i := range next {
			next[i] = hashNodes(level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

// Path returns the authentication path (sibling per level, leaf upward)
// for one leaf index. Prover-side companion of VerifyRow.
func Path(leaves []common.Hash, depth int, index uint64) []common.Hash {
	level := make([]common.Hash, 1<<depth)
	copy(level, leaves)
	path := make([]common.Hash, 0, depth)
	for len(level) > 1 {
		path = append(path, level[index^1])
		next := level[:len(level)/2]
		for i := range next {
			next[i] = hashNodes(level[2*i], level[2*i+1])
		}
		level = next
		index >>= 1
	}
	return path
}

// VerifyRow recomputes the root from one leaf and its path.
func VerifyRow(root common.Hash, depth int, index uint64, leaf common.Hash, path []common.Hash) bool {
	if len(path) != depth {
		return false
	}
	h := leaf
	for _, sib := range path {
		if index&1 == 1 {
			h = hashNodes(sib, h)
		} else {
			h = hashNodes(h, sib)
		}
		index >>= 1
	}
	return h == root
}

// VerifyTable checks a batch of rows against a committed root. Rows are
// given in Montgomery form, rowWidth values per index; paths holds depth
// sibling digests per index, consumed in order. This is the decommitment
// primitive every TableDecommit task bottoms out in.
func VerifyTable(root felt.Felt, depth int, indices []uint64, rows []felt.Felt, rowWidth int, paths []felt.Felt) error {
	if len(rows) != len(indices)*rowWidth || len(paths) != len(indices)*depth {
		return contract.ErrMerkleMismatch
	}
	rootHash := root.Hash()
	path := make([]common.Hash, depth)
	for i, idx := range indices {
		leaf := LeafHash(rows[i*rowWidth : (i+1)*rowWidth])
		for l := 0; l < depth; l++ {
			path[l] = paths[i*depth+l].Hash()
		}
		if !VerifyRow(rootHash, depth, idx, leaf, path) {
			return contract.ErrMerkleMismatch
		}
	}
	return nil
}
