// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"os"

	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/program"
)

// Host owns a ProofAccount and executes instructions against it. A failed
// instruction must leave the persisted account unchanged, mirroring the
// chain's revert-on-error semantics.
type Host interface {
	// Submit runs one instruction and persists the account on success.
	Submit(input []byte) error
	// View returns a snapshot of the current account image.
	View() ([]byte, error)
}

// InvocationGas is the budget granted to each submitted instruction.
const InvocationGas = 200_000

// MemoryHost keeps the account in memory. Used by tests and the
// invocation planner.
type MemoryHost struct {
	Data []byte
}

func NewMemoryHost() *MemoryHost {
	return &MemoryHost{Data: make([]byte, account.AccountSize)}
}

func (h *MemoryHost) Submit(input []byte) error {
	scratch := make([]byte, len(h.Data))
	copy(scratch, h.Data)
	if _, err := program.Run(scratch, input, InvocationGas); err != nil {
		return err
	}
	h.Data = scratch
	return nil
}

func (h *MemoryHost) View() ([]byte, error) {
	out := make([]byte, len(h.Data))
	copy(out, h.Data)
	return out, nil
}

// FileHost persists the account image to a file between invocations, so a
// verification survives process restarts the way it survives transaction
// boundaries on chain.
type FileHost struct {
	Path string
}

// CreateAccountFile writes a fresh zeroed account image.
func CreateAccountFile(path string) error {
	return os.WriteFile(path, make([]byte, account.AccountSize), 0o644)
}

func (h *FileHost) Submit(input []byte) error {
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return err
	}
	if len(data) != account.AccountSize {
		return contract.ErrBadAccountSize
	}
	if _, err := program.Run(data, input, InvocationGas); err != nil {
		return err
	}
	return os.WriteFile(h.Path, data, 0o644)
}

func (h *FileHost) View() ([]byte, error) {
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, err
	}
	if len(data) != account.AccountSize {
		return nil, contract.ErrBadAccountSize
	}
	return data, nil
}
