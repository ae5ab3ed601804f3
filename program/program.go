// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package program is the on-chain entrypoint: it decodes one instruction,
// enforces the stage machine, charges gas, and advances the verification
// by at most one task. On error the caller must discard the mutated
// buffer; the host reverts failed writes, which is what makes every task
// re-runnable from committed state.
package program

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/schedule"
	"github.com/luxfi/starkverify/task"
	"github.com/luxfi/starkverify/verify"
)

// Run executes one instruction against the account image and returns the
// remaining gas.
func Run(accountData, input []byte, suppliedGas uint64) (uint64, error) {
	acct, err := account.Open(accountData)
	if err != nil {
		return suppliedGas, err
	}

	cmd, err := DecodeCommand(input)
	if err != nil {
		return suppliedGas, err
	}

	stage := acct.Stage()
	if stage > account.StageVerified {
		return suppliedGas, contract.ErrUnknownStage
	}

	switch cmd.Tag {
	case CmdPublishFragment:
		cost := contract.GasPublishBase + contract.GasPublishPerByte*uint64(len(cmd.Data))
		if suppliedGas < cost {
			return 0, contract.ErrInsufficientGas
		}
		remaining := suppliedGas - cost
		if stage != account.StagePublish {
			return remaining, contract.ErrPublishWrongStage
		}
		if err := publishFragment(acct, cmd.Offset, cmd.Data); err != nil {
			return remaining, err
		}
		return remaining, nil

	case CmdSchedule:
		if suppliedGas < contract.GasSchedule {
			return 0, contract.ErrInsufficientGas
		}
		remaining := suppliedGas - contract.GasSchedule
		if stage != account.StagePublish {
			return remaining, contract.ErrScheduleWrongStage
		}
		sched := schedule.New(acct.ScheduleRegion())
		sched.Flush()
		if err := sched.Push(task.Root().Encode()); err != nil {
			return remaining, err
		}
		acct.SetStage(account.StageVerify)
		return remaining, nil

	case CmdVerifyProof:
		if suppliedGas < contract.GasVerifyTask {
			return 0, contract.ErrInsufficientGas
		}
		remaining := suppliedGas - contract.GasVerifyTask
		switch stage {
		case account.StagePublish:
			return remaining, contract.ErrVerifyWrongStage
		case account.StageVerified:
			return remaining, contract.ErrAlreadyVerified
		}
		if err := verifyProof(acct); err != nil {
			return remaining, err
		}
		return remaining, nil
	}

	return suppliedGas, contract.ErrUnknownCommand
}

// publishFragment splices bytes into the proof region. Offset-addressed
// writes make re-sends and overlaps idempotent.
func publishFragment(acct *account.Account, offset uint64, data []byte) error {
	region := acct.ProofRegion()
	if offset > uint64(len(region)) || uint64(len(data)) > uint64(len(region))-offset {
		return contract.ErrFragmentOutOfRange
	}
	copy(region[offset:], data)
	return nil
}

// verifyProof pops one task, executes it, and pushes its children in
// reverse so LIFO popping preserves execution order. The stage advances
// when the stack empties.
func verifyProof(acct *account.Account) error {
	sched := schedule.New(acct.ScheduleRegion())

	record, ok := sched.Next()
	if !ok {
		return contract.ErrScheduleEmpty
	}
	desc, err := task.Decode(record)
	if err != nil {
		return err
	}

	children, err := verify.Execute(desc, acct)
	if err != nil {
		return err
	}

	for i := len(children) - 1; i >= 0; i-- {
		if err := sched.Push(children[i].Encode()); err != nil {
			return err
		}
	}

	if sched.Finished() {
		acct.SetStage(account.StageVerified)
	}
	return nil
}
