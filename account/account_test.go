// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package account

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/contract"
	"github.com/luxfi/starkverify/felt"
)

func openFresh(t *testing.T) *Account {
	t.Helper()
	acct, err := Open(make([]byte, AccountSize))
	require.NoError(t, err)
	return acct
}

func TestOpenRejectsWrongSize(t *testing.T) {
	_, err := Open(make([]byte, AccountSize-1))
	require.ErrorIs(t, err, contract.ErrBadAccountSize)
	_, err = Open(make([]byte, AccountSize+1))
	require.ErrorIs(t, err, contract.ErrBadAccountSize)
}

func TestStage(t *testing.T) {
	acct := openFresh(t)
	require.Equal(t, StagePublish, acct.Stage())
	acct.SetStage(StageVerify)
	require.Equal(t, StageVerify, acct.Stage())
}

// Writing through one region's view must never reach a sibling region.
func TestRegionsDisjoint(t *testing.T) {
	data := make([]byte, AccountSize)
	acct, err := Open(data)
	require.NoError(t, err)

	region := acct.ProofRegion()
	for i := range region {
		region[i] = 0xAA
	}

	for _, b := range acct.region(dataCacheOff, CacheSize) {
		require.Zero(t, b)
	}
	for _, b := range acct.region(dataInterOff, IntermediateSize) {
		require.Zero(t, b)
	}
	for _, b := range acct.ScheduleRegion() {
		require.Zero(t, b)
	}
	require.Zero(t, data[0], "stage byte untouched")
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := openFresh(t).Proof().Config()
	cfg.SetLogTraceDomainSize(4)
	cfg.SetLogNCosets(1)
	cfg.SetNQueries(4)
	cfg.SetProofOfWorkBits(2)
	cfg.SetFriNLayers(3)
	cfg.SetFriLogLastBound(6)
	steps := cfg.FriStepSizes()
	require.NoError(t, steps.Append(0))
	require.NoError(t, steps.Append(1))
	require.NoError(t, steps.Append(1))

	require.Equal(t, uint64(4), cfg.LogTraceDomainSize())
	require.Equal(t, uint64(6), cfg.SecurityBits())
	require.NoError(t, cfg.Validate(air.NumColumnsOriginal, air.NumColumnsInteraction))
}

func TestConfigValidateRejects(t *testing.T) {
	acct := openFresh(t)
	cfg := acct.Proof().Config()
	cfg.SetLogTraceDomainSize(4)
	cfg.SetLogNCosets(1)
	cfg.SetNQueries(4)
	cfg.SetProofOfWorkBits(2)
	cfg.SetFriNLayers(3)
	cfg.SetFriLogLastBound(6)
	steps := cfg.FriStepSizes()
	require.NoError(t, steps.Append(0))
	require.NoError(t, steps.Append(1))
	require.NoError(t, steps.Append(1))

	require.Error(t, cfg.Validate(air.NumColumnsOriginal+1, air.NumColumnsInteraction))

	cfg.SetNQueries(0)
	require.Error(t, cfg.Validate(air.NumColumnsOriginal, air.NumColumnsInteraction))
	cfg.SetNQueries(4)

	// A last-layer bound too tight for the oods polynomial is rejected.
	cfg.SetFriLogLastBound(3)
	require.Error(t, cfg.Validate(air.NumColumnsOriginal, air.NumColumnsInteraction))
}

func TestDomainsTranscriptRoundTrip(t *testing.T) {
	iv := openFresh(t).Intermediate().Verify()

	d := air.NewStarkDomains(4, 1)
	iv.StoreDomains(d)
	got := iv.LoadDomains()
	require.Equal(t, d.LogEvalDomainSize, got.LogEvalDomainSize)
	require.True(t, got.EvalGenerator.Equal(d.EvalGenerator))
	require.True(t, got.CosetOffset.Equal(d.CosetOffset))

	tr := air.NewTranscript(felt.FromUint64(9).Hash())
	tr.Counter = 3
	iv.StoreTranscript(tr)
	back := iv.LoadTranscript()
	require.Equal(t, tr.Digest, back.Digest)
	require.Equal(t, uint64(3), back.Counter)
}

func TestMainPage(t *testing.T) {
	pi := openFresh(t).Proof().PublicInput()
	require.NoError(t, pi.AppendMainPage(7, felt.FromUint64(42)))
	require.Equal(t, 1, pi.MainPageLen())
	addr, v := pi.MainPageEntry(0)
	require.Equal(t, uint64(7), addr)
	require.True(t, v.Equal(felt.FromUint64(42)))
}

func TestFriQueue(t *testing.T) {
	fri := openFresh(t).Cache().Fri()
	q := fri.Queries()

	require.NoError(t, q.Append(FriQuery{
		Index: felt.FromUint64(2),
		Y:     felt.FromUint64(20),
		XInv:  felt.FromUint64(200),
	}))
	require.NoError(t, q.Append(FriQuery{
		Index: felt.FromUint64(5),
		Y:     felt.FromUint64(50),
		XInv:  felt.FromUint64(500),
	}))
	require.Equal(t, 2, q.Len())

	first, ok := q.PopFront()
	require.True(t, ok)
	require.True(t, first.Index.Equal(felt.FromUint64(2)))
	require.True(t, first.Y.Equal(felt.FromUint64(20)))
	require.Equal(t, 1, q.Len())
	require.True(t, q.Get(0).XInv.Equal(felt.FromUint64(500)))

	require.NoError(t, q.CopyTo(fri.NextQueries()))
	require.Equal(t, 1, fri.NextQueries().Len())

	q.Flush()
	_, ok = q.PopFront()
	require.False(t, ok)
}

func TestFriLayerBounds(t *testing.T) {
	wit := openFresh(t).Proof().Witness()
	_, err := wit.FriLayer(MaxFriLayers)
	require.ErrorIs(t, err, contract.ErrLayerOutOfRange)
	_, err = wit.FriLayer(0)
	require.NoError(t, err)
}
