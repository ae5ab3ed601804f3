// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/task"
)

// executeRoot validates the proof shape and seeds the verification run:
// column counts, stark domains, public input and the Fiat-Shamir
// transcript.
func executeRoot(acct *account.Account) ([]task.Descriptor, error) {
	proof := acct.Proof()
	cfg := proof.Config()
	iv := acct.Intermediate().Verify()

	pi := proof.PublicInput().Decode()

	nOriginal, ok := air.NumColumnsFirst(&pi)
	if !ok {
		return nil, contract.ErrColumnMissing
	}
	nInteraction, ok := air.NumColumnsSecond(&pi)
	if !ok {
		return nil, contract.ErrColumnMissing
	}
	iv.SetNOriginalColumns(nOriginal)
	iv.SetNInteractionColumns(nInteraction)

	if err := cfg.Validate(nOriginal, nInteraction); err != nil {
		return nil, err
	}

	domains := air.NewStarkDomains(cfg.LogTraceDomainSize(), cfg.LogNCosets())
	iv.StoreDomains(domains)

	if err := pi.Validate(&domains); err != nil {
		return nil, err
	}

	seed := pi.Digest(cfg.NVerifierFriendly())
	iv.StoreTranscript(air.NewTranscript(seed))

	return []task.Descriptor{
		{Kind: task.KindStarkCommit},
		{Kind: task.KindGenerateQueries},
		{Kind: task.KindStarkVerify},
		{Kind: task.KindVerifyOutput},
	}, nil
}
