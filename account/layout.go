// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account maps the ProofAccount: one contiguous byte image holding
// the stage byte, the published proof, scratch cache, intermediate values
// and the task schedule. The layout is version-locked; every field lives
// at a fixed offset and is used in place, with no deserialisation step.
//
// Views over the image are carved with three-index slice expressions, so
// two views handed to a task can never alias: each is capped to its own
// window.
package account

import (
	"github.com/luxfi/starkverify/air"
	"github.com/luxfi/starkverify/funvec"
)

// Fixed capacities. Reserved space is sized to the largest run the
// compiled-in layout admits; write-overflow is a protocol violation.
const (
	MaxQueries         = 32
	MaxMerkleDepth     = 24
	MaxFriLayers       = 8
	MaxLastLayerCoeffs = 256
	MaxOutput          = 256
	MaxMainPage        = 512
	MaxPowers          = 160
	ScheduleCapacity   = 1000

	// OodsCap rounds air.OodsLength up to keep the layout stable if the
	// mask grows within the same layout family.
	OodsCap = 160
)

const (
	feltSz = 32
	vecHdr = funvec.HeaderSize

	mainPageEntrySz = 8 + feltSz // address + value
	friQuerySz      = 3 * feltSz // index, y value, x inv
)

// Derived vector footprints.
const (
	powersVecSz     = vecHdr + MaxPowers*feltSz
	oodsVecSz       = vecHdr + OodsCap*feltSz
	queriesVecSz    = vecHdr + MaxQueries*feltSz
	rootsVecSz      = vecHdr + MaxFriLayers*feltSz
	lastCoeffsVecSz = vecHdr + MaxLastLayerCoeffs*feltSz
	outputVecSz     = vecHdr + MaxOutput*feltSz
	mainPageVecSz   = vecHdr + MaxMainPage*mainPageEntrySz
	stepSizesVecSz  = vecHdr + MaxFriLayers*8
	pathsVecSz      = vecHdr + MaxQueries*MaxMerkleDepth*feltSz
	friQueryVecSz   = vecHdr + MaxQueries*friQuerySz
)

// Proof region layout.
const (
	cfgLogTraceOff         = 0
	cfgLogNCosetsOff       = 8
	cfgNQueriesOff         = 16
	cfgPowBitsOff          = 24
	cfgNVerifierFriendly   = 32
	cfgFriNLayersOff       = 40
	cfgFriLogLastBoundOff  = 48
	cfgFriStepSizesOff     = 56
	cfgSz                  = cfgFriStepSizesOff + stepSizesVecSz
	piLogNStepsOff         = 0
	piRcMinOff             = 8
	piRcMaxOff             = 16
	piSegmentsOff          = 24
	piMainPageOff          = piSegmentsOff + air.NSegments*16
	piSz                   = piMainPageOff + mainPageVecSz
	ucTracesOriginalOff    = 0
	ucTracesInteractionOff = 32
	ucCompositionOff       = 64
	ucOodsValuesOff        = 96
	ucPowNonceOff          = ucOodsValuesOff + oodsVecSz
	ucFriInnerRootsOff     = ucPowNonceOff + 8
	ucLastCoeffsOff        = ucFriInnerRootsOff + rootsVecSz
	ucSz                   = ucLastCoeffsOff + lastCoeffsVecSz

	witTracesDecomOrigOff = 0
	witTracesDecomIntOff  = witTracesDecomOrigOff + vecHdr + MaxQueries*air.NumColumnsOriginal*feltSz
	witTracesWitOrigOff   = witTracesDecomIntOff + vecHdr + MaxQueries*air.NumColumnsInteraction*feltSz
	witTracesWitIntOff    = witTracesWitOrigOff + pathsVecSz
	witCompDecomOff       = witTracesWitIntOff + pathsVecSz
	witCompWitOff         = witCompDecomOff + vecHdr + MaxQueries*air.ConstraintDegree*feltSz
	witFriLayersOff       = witCompWitOff + pathsVecSz
	friLayerLeavesSz      = vecHdr + 2*MaxQueries*feltSz
	friLayerSz            = friLayerLeavesSz + pathsVecSz
	witSz                 = witFriLayersOff + MaxFriLayers*friLayerSz

	proofCfgOff = 0
	proofPiOff  = proofCfgOff + cfgSz
	proofUcOff  = proofPiOff + piSz
	proofWitOff = proofUcOff + ucSz
	ProofSize   = proofWitOff + witSz
)

// Cache region layout. Zero-initialised scratch, freely mutated, never a
// cross-task contract except for the FRI folding state the layer tasks
// hand one another and the powers array StarkCommitAssign copies the oods
// coefficients from.
const (
	cachePowersOff     = 0
	cacheMontOff       = cachePowersOff + powersVecSz
	cacheFriOff        = cacheMontOff + vecHdr + 256*feltSz
	friQueriesOff      = 0
	friNextQueriesOff  = friQueriesOff + friQueryVecSz
	friVerifyIdxOff    = friNextQueriesOff + friQueryVecSz
	friVerifyYOff      = friVerifyIdxOff + queriesVecSz
	friCosetElemsOff   = friVerifyYOff + vecHdr + 2*MaxQueries*feltSz
	friDecomValuesOff  = friCosetElemsOff + vecHdr + 16*feltSz
	friDecomMontOff    = friDecomValuesOff + vecHdr + 2*MaxQueries*feltSz
	friCtxLayerOff     = friDecomMontOff + vecHdr + 2*MaxQueries*feltSz
	friCtxCosetSizeOff = friCtxLayerOff + 8
	friCtxLeafCurOff   = friCtxCosetSizeOff + 8
	friCtxDepthOff     = friCtxLeafCurOff + 8
	friCtxEvalPointOff = friCtxDepthOff + 8
	friCacheSz         = friCtxEvalPointOff + feltSz
	CacheSize          = cacheFriOff + friCacheSz
)

// Intermediate region layout.
const (
	ivNOrigColsOff  = 0
	ivNIntColsOff   = 8
	ivDomainsOff    = 16
	domainsSz       = 16 + 5*feltSz
	ivTranscriptOff = ivDomainsOff + domainsSz
	transcriptSz    = feltSz + 8
	ivCommitmentOff = ivTranscriptOff + transcriptSz

	cmTracesOriginalOff    = 0
	cmTracesInteractionOff = 32
	cmInteractionZOff      = 64
	cmInteractionAlphaOff  = 96
	cmCompositionOff       = 128
	cmInteractionAfterOff  = 160
	cmOodsValuesOff        = 192
	cmOodsCoeffsOff        = cmOodsValuesOff + oodsVecSz
	cmFriInnerRootsOff     = cmOodsCoeffsOff + oodsVecSz
	cmFriEvalPointsOff     = cmFriInnerRootsOff + rootsVecSz
	commitmentSz           = cmFriEvalPointsOff + rootsVecSz

	ivQueriesOff = ivCommitmentOff + commitmentSz
	verifySz     = ivQueriesOff + queriesVecSz

	voProgramHashOff = 0
	voOutputOff      = feltSz
	verifyOutputSz   = voOutputOff + outputVecSz

	scTracesOriginalOff    = 0
	scTracesInteractionOff = 32
	scInteractionZOff      = 64
	scInteractionAlphaOff  = 96
	scCompositionAlphaOff  = 128
	scCompositionOff       = 160
	scInteractionAfterOff  = 192
	scOodsAlphaOff         = 224
	scFriInnerRootsOff     = 256
	scFriEvalPointsOff     = scFriInnerRootsOff + rootsVecSz
	starkCommitSz          = scFriEvalPointsOff + rootsVecSz

	svPointsOff      = 0
	svEvaluationsOff = queriesVecSz
	starkVerifySz    = 2 * queriesVecSz

	interVerifyOff       = 0
	interVerifyOutputOff = interVerifyOff + verifySz
	interStarkCommitOff  = interVerifyOutputOff + verifyOutputSz
	interStarkVerifyOff  = interStarkCommitOff + starkCommitSz
	IntermediateSize     = interStarkVerifyOff + starkVerifySz
)

// Schedule region layout: top cursor then descriptor slots.
const (
	DescriptorSize = 4
	scheduleTopOff = 0
	scheduleSlots  = 8
	ScheduleSize   = scheduleSlots + ScheduleCapacity*DescriptorSize
)

// Whole-account layout: stage byte, 7 bytes of padding, then the data
// regions in order.
const (
	HeaderSize      = 8
	dataProofOff    = 0
	dataCacheOff    = dataProofOff + ProofSize
	dataInterOff    = dataCacheOff + CacheSize
	dataScheduleOff = dataInterOff + IntermediateSize
	DataSize        = dataScheduleOff + ScheduleSize
	AccountSize     = HeaderSize + DataSize
)
