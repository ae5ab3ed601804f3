// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/schedule"
	"github.com/luxfi/starkverify/task"
)

const gas = 1_000_000

func fresh(t *testing.T) []byte {
	t.Helper()
	return make([]byte, account.AccountSize)
}

func TestRejectsWrongAccountSize(t *testing.T) {
	_, err := Run(make([]byte, 10), EncodeSchedule(), gas)
	require.ErrorIs(t, err, contract.ErrBadAccountSize)
}

func TestCommandDecoding(t *testing.T) {
	_, err := Run(fresh(t), nil, gas)
	require.ErrorIs(t, err, contract.ErrTruncatedCommand)

	_, err = Run(fresh(t), []byte{0x7F}, gas)
	require.ErrorIs(t, err, contract.ErrUnknownCommand)

	_, err = Run(fresh(t), []byte{CmdPublishFragment, 1, 2}, gas)
	require.ErrorIs(t, err, contract.ErrTruncatedCommand)

	// Trailing bytes on a bare command are rejected.
	_, err = Run(fresh(t), []byte{CmdVerifyProof, 0}, gas)
	require.ErrorIs(t, err, contract.ErrTruncatedCommand)
}

func TestWrongStageMatrix(t *testing.T) {
	data := fresh(t)

	// Publish stage rejects VerifyProof with its own code.
	_, err := Run(data, EncodeVerifyProof(), gas)
	require.ErrorIs(t, err, contract.ErrVerifyWrongStage)

	// Schedule moves to Verify.
	_, err = Run(data, EncodeSchedule(), gas)
	require.NoError(t, err)
	acct, _ := account.Open(data)
	require.Equal(t, account.StageVerify, acct.Stage())

	// Verify stage rejects publish and a second schedule.
	_, err = Run(data, EncodePublishFragment(0, []byte{1}), gas)
	require.ErrorIs(t, err, contract.ErrPublishWrongStage)
	_, err = Run(data, EncodeSchedule(), gas)
	require.ErrorIs(t, err, contract.ErrScheduleWrongStage)
}

func TestUnknownStageByte(t *testing.T) {
	data := fresh(t)
	data[0] = 9
	_, err := Run(data, EncodeSchedule(), gas)
	require.ErrorIs(t, err, contract.ErrUnknownStage)
}

func TestScheduleSeedsRootTask(t *testing.T) {
	data := fresh(t)
	_, err := Run(data, EncodeSchedule(), gas)
	require.NoError(t, err)

	acct, _ := account.Open(data)
	sched := schedule.New(acct.ScheduleRegion())
	require.Equal(t, 1, sched.Remaining())
	rec, ok := sched.Next()
	require.True(t, ok)
	desc, err := task.Decode(rec)
	require.NoError(t, err)
	require.Equal(t, task.KindVerifyProofRoot, desc.Kind)
}

func TestEmptyScheduleRejected(t *testing.T) {
	data := fresh(t)
	_, err := Run(data, EncodeSchedule(), gas)
	require.NoError(t, err)

	acct, _ := account.Open(data)
	schedule.New(acct.ScheduleRegion()).Flush()

	_, err = Run(data, EncodeVerifyProof(), gas)
	require.ErrorIs(t, err, contract.ErrScheduleEmpty)
}

func TestVerifyAfterVerified(t *testing.T) {
	data := fresh(t)
	acct, _ := account.Open(data)
	acct.SetStage(account.StageVerified)

	_, err := Run(data, EncodeVerifyProof(), gas)
	require.ErrorIs(t, err, contract.ErrAlreadyVerified)
}

func TestPublishBounds(t *testing.T) {
	data := fresh(t)
	_, err := Run(data, EncodePublishFragment(account.ProofSize, []byte{1}), gas)
	require.ErrorIs(t, err, contract.ErrFragmentOutOfRange)

	_, err = Run(data, EncodePublishFragment(account.ProofSize-1, []byte{1, 2}), gas)
	require.ErrorIs(t, err, contract.ErrFragmentOutOfRange)

	_, err = Run(data, EncodePublishFragment(account.ProofSize-1, []byte{1}), gas)
	require.NoError(t, err)
}

// For any partition of the payload into contiguous fragments, in any
// arrival order, re-sent or not, the published region is byte-identical.
func TestPublishFragmentRoundTrip(t *testing.T) {
	payload := make([]byte, 4096)
	rng := rand.New(rand.NewSource(7))
	rng.Read(payload)

	for _, size := range []int{1, 7, 500, 512, 4096} {
		var fragments [][2]int
		for off := 0; off < len(payload); off += size {
			end := off + size
			if end > len(payload) {
				end = len(payload)
			}
			fragments = append(fragments, [2]int{off, end})
		}
		rng.Shuffle(len(fragments), func(i, j int) {
			fragments[i], fragments[j] = fragments[j], fragments[i]
		})

		data := fresh(t)
		for _, f := range fragments {
			input := EncodePublishFragment(uint64(f[0]), payload[f[0]:f[1]])
			_, err := Run(data, input, gas)
			require.NoError(t, err)
			// Idempotent: a duplicate send changes nothing.
			snapshot := append([]byte(nil), data...)
			_, err = Run(data, input, gas)
			require.NoError(t, err)
			require.True(t, bytes.Equal(snapshot, data))
		}

		acct, _ := account.Open(data)
		require.True(t, bytes.Equal(payload, acct.ProofRegion()[:len(payload)]), "size %d", size)
	}
}

func TestInsufficientGasLeavesAccountUntouched(t *testing.T) {
	data := fresh(t)
	snapshot := append([]byte(nil), data...)

	remaining, err := Run(data, EncodeSchedule(), contract.GasSchedule-1)
	require.ErrorIs(t, err, contract.ErrInsufficientGas)
	require.Zero(t, remaining)
	require.True(t, bytes.Equal(snapshot, data))

	remaining, err = Run(data, EncodeVerifyProof(), contract.GasVerifyTask-1)
	require.ErrorIs(t, err, contract.ErrInsufficientGas)
	require.Zero(t, remaining)
	require.True(t, bytes.Equal(snapshot, data))
}

func TestGasCharged(t *testing.T) {
	data := fresh(t)
	remaining, err := Run(data, EncodePublishFragment(0, []byte{1, 2, 3}), gas)
	require.NoError(t, err)
	require.Equal(t, uint64(gas)-contract.GasPublishBase-3*contract.GasPublishPerByte, remaining)
}

func TestWireRoundTrip(t *testing.T) {
	cmd, err := DecodeCommand(EncodePublishFragment(77, []byte{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, CmdPublishFragment, cmd.Tag)
	require.Equal(t, uint64(77), cmd.Offset)
	require.Equal(t, []byte{1, 2, 3}, cmd.Data)

	cmd, err = DecodeCommand(EncodeSchedule())
	require.NoError(t, err)
	require.Equal(t, CmdSchedule, cmd.Tag)

	cmd, err = DecodeCommand(EncodeVerifyProof())
	require.NoError(t, err)
	require.Equal(t, CmdVerifyProof, cmd.Tag)
}
