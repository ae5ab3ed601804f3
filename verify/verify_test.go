// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/internal/prooftest"
	"github.com/luxfi/starkverify/program"
	"github.com/luxfi/starkverify/schedule"
)

const gas = 1_000_000

// driveAll schedules the run and submits VerifyProof until the account is
// Verified or a task rejects the proof.
func driveAll(t *testing.T, data []byte) error {
	t.Helper()
	if _, err := program.Run(data, program.EncodeSchedule(), gas); err != nil {
		return err
	}
	for i := 0; i < 10_000; i++ {
		acct, err := account.Open(data)
		require.NoError(t, err)
		if acct.Stage() == account.StageVerified {
			return nil
		}
		if _, err := program.Run(data, program.EncodeVerifyProof(), gas); err != nil {
			return err
		}
	}
	t.Fatal("verification did not terminate")
	return nil
}

func TestValidProofVerifies(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	require.NoError(t, driveAll(t, data))

	acct, _ := account.Open(data)
	vo := acct.Intermediate().VerifyOutput()
	require.False(t, vo.ProgramHash().IsZero())
	require.Equal(t, 3, vo.Output().Len())
}

func TestSmallerProofVerifies(t *testing.T) {
	data := prooftest.Build(prooftest.Smaller())
	require.NoError(t, driveAll(t, data))
}

func TestOodsTamperRejected(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	oods := acct.Proof().UnsentCommitment().OodsValues()
	oods.Set(0, oods.Get(0).Add(felt.One))

	err := driveAll(t, data)
	require.ErrorIs(t, err, contract.ErrOodsMismatch)
}

func TestPowTamperRejected(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	uc := acct.Proof().UnsentCommitment()
	uc.SetPowNonce(uc.PowNonce() + 1)

	// A corrupted nonce either fails the grind outright or, if it happens
	// to clear the difficulty, derails the transcript and every
	// downstream decommitment.
	err := driveAll(t, data)
	require.Error(t, err)
}

func TestTraceWitnessTamperRejected(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	values := acct.Proof().Witness().TracesDecommitmentOriginal()
	values.Set(0, values.Get(0).Add(felt.One))

	err := driveAll(t, data)
	require.ErrorIs(t, err, contract.ErrMerkleMismatch)
}

func TestFriWitnessTamperRejected(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	layer, err := acct.Proof().Witness().FriLayer(0)
	require.NoError(t, err)
	paths := layer.TableWitness()
	require.Positive(t, paths.Len())
	paths.Set(0, paths.Get(0).Add(felt.One))

	err = driveAll(t, data)
	require.ErrorIs(t, err, contract.ErrMerkleMismatch)
}

// The declared degree bound must match the shipped coefficient count.
// Changing the bound alone leaves the transcript intact, so the failure
// surfaces exactly at the last-layer check.
func TestLastLayerBoundMismatchRejected(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	acct.Proof().Config().SetFriLogLastBound(7)

	err := driveAll(t, data)
	require.ErrorIs(t, err, contract.ErrInvalidValue)
}

func TestConfigTamperRejectedAtRoot(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	acct.Proof().Config().SetNQueries(0)

	err := driveAll(t, data)
	require.ErrorIs(t, err, contract.ErrConfigInvalid)
}

func TestUnknownDescriptorRejected(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	_, err := program.Run(data, program.EncodeSchedule(), gas)
	require.NoError(t, err)

	acct, _ := account.Open(data)
	sched := schedule.New(acct.ScheduleRegion())
	sched.Flush()
	require.NoError(t, sched.Push([4]byte{0xEE, 0, 0, 0}))

	_, err = program.Run(data, program.EncodeVerifyProof(), gas)
	require.ErrorIs(t, err, contract.ErrUnknownTask)
}

// A failed verification leaves the account in Verify stage; the client
// observes the error and abandons the account, which stays a valid
// dormant state.
func TestFailureLeavesStage(t *testing.T) {
	data := prooftest.Build(prooftest.Small())
	acct, _ := account.Open(data)
	uc := acct.Proof().UnsentCommitment()
	uc.SetPowNonce(uc.PowNonce() + 1)

	err := driveAll(t, data)
	require.Error(t, err)
	require.Equal(t, account.StageVerify, acct.Stage())
}
