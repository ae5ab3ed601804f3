// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client drives a verifier account from off chain: it splits the
// proof into fragments, publishes them, schedules the run, and submits
// VerifyProof instructions until the account reports Verified.
package client

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/felt"
	"github.com/luxfi/starkverify/program"
	"github.com/luxfi/starkverify/schedule"
)

// FragmentSize is the default fragment payload, small enough to fit one
// transaction comfortably.
const FragmentSize = 500

// maxSubmitAttempts bounds the per-fragment retry loop.
const maxSubmitAttempts = 8

// Fragment is one PublishFragment payload.
type Fragment struct {
	Offset uint64
	Data   []byte
}

// SplitProof partitions the proof-region bytes into contiguous fragments
// of at most size bytes.
func SplitProof(proofRegion []byte, size int) []Fragment {
	if size <= 0 {
		size = FragmentSize
	}
	var out []Fragment
	for off := 0; off < len(proofRegion); off += size {
		end := off + size
		if end > len(proofRegion) {
			end = len(proofRegion)
		}
		out = append(out, Fragment{Offset: uint64(off), Data: proofRegion[off:end]})
	}
	return out
}

// Client submits instructions to a host and tracks progress.
type Client struct {
	Host Host
	Log  *logrus.Logger
}

func New(host Host) *Client {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return &Client{Host: host, Log: log}
}

// Publish sends every fragment, retrying failures. Fragment order does
// not matter; offset writes are idempotent.
func (c *Client) Publish(fragments []Fragment, progress func()) error {
	for _, frag := range fragments {
		input := program.EncodePublishFragment(frag.Offset, frag.Data)
		var err error
		for attempt := 0; attempt < maxSubmitAttempts; attempt++ {
			if err = c.Host.Submit(input); err == nil {
				break
			}
			c.Log.WithFields(logrus.Fields{
				"offset":  frag.Offset,
				"attempt": attempt,
			}).WithError(err).Warn("fragment submit failed, retrying")
		}
		if err != nil {
			return fmt.Errorf("publish fragment at %d: %w", frag.Offset, err)
		}
		if progress != nil {
			progress()
		}
	}
	return nil
}

// Schedule seeds the task stack and moves the account into Verify.
func (c *Client) Schedule() error {
	return c.Host.Submit(program.EncodeSchedule())
}

// Drive submits VerifyProof instructions until the stage is Verified,
// returning the number of invocations it took. maxInvocations of 0 means
// no bound beyond the schedule's own capacity.
func (c *Client) Drive(maxInvocations int) (int, error) {
	invocations := 0
	for {
		st, err := c.Status()
		if err != nil {
			return invocations, err
		}
		if st.Stage == account.StageVerified {
			return invocations, nil
		}
		if maxInvocations > 0 && invocations >= maxInvocations {
			return invocations, errors.New("invocation bound reached before Verified")
		}
		if err := c.Host.Submit(program.EncodeVerifyProof()); err != nil {
			return invocations, err
		}
		invocations++
		c.Log.WithField("invocations", invocations).Debug("task executed")
	}
}

// Status is the observable account state.
type Status struct {
	Stage       byte
	Pending     int
	ProgramHash felt.Felt
	Output      []felt.Felt
}

// Status peeks at the account without mutating it.
func (c *Client) Status() (Status, error) {
	image, err := c.Host.View()
	if err != nil {
		return Status{}, err
	}
	return Peek(image)
}

// Peek decodes the observable state from an account image.
func Peek(image []byte) (Status, error) {
	acct, err := account.Open(image)
	if err != nil {
		return Status{}, err
	}
	st := Status{
		Stage:   acct.Stage(),
		Pending: schedule.New(acct.ScheduleRegion()).Remaining(),
	}
	if st.Stage == account.StageVerified {
		vo := acct.Intermediate().VerifyOutput()
		st.ProgramHash = vo.ProgramHash()
		st.Output = vo.Output().Slice()
	}
	return st, nil
}

// PlanInvocations computes, ahead of time, how many VerifyProof
// instructions a published account needs to reach Verified. It simulates
// the run on a copy, so the caller can batch exactly the right number of
// transactions.
func PlanInvocations(image []byte) (int, error) {
	sim := &MemoryHost{Data: make([]byte, len(image))}
	copy(sim.Data, image)

	st, err := Peek(sim.Data)
	if err != nil {
		return 0, err
	}
	c := New(sim)
	if st.Stage == account.StagePublish {
		if err := c.Schedule(); err != nil {
			return 0, err
		}
	}
	return c.Drive(0)
}
