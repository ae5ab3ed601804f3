// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract defines the host-facing surface shared by the verifier
// program: numbered protocol errors and per-command gas costs. The host
// observes failures as error codes; everything else lives in the account.
package contract

import "fmt"

// Error is a protocol error with a stable numeric code. Codes are part of
// the wire contract: clients dispatch on them to distinguish wrong-stage
// submissions from completion and from malformed descriptors.
type Error struct {
	Code uint32
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("verifier error %d: %s", e.Code, e.Msg)
}

// Is reports code equality so sentinel errors work with errors.Is even when
// an error crossed a serialisation boundary and was rebuilt from its code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrUnknownCommand     = &Error{1, "unknown command tag"}
	ErrUnknownTask        = &Error{2, "unknown task kind in descriptor"}
	ErrScheduleEmpty      = &Error{3, "verify requested but schedule is empty"}
	ErrFragmentOutOfRange = &Error{4, "fragment exceeds proof region"}
	ErrBadAccountSize     = &Error{5, "account data has wrong size"}
	ErrUnknownStage       = &Error{6, "unknown stage byte"}
	ErrPublishWrongStage  = &Error{7, "publish fragment outside publish stage"}
	ErrScheduleWrongStage = &Error{8, "schedule outside publish stage"}
	ErrVerifyWrongStage   = &Error{9, "verify proof in wrong stage"}
	ErrScheduleFull       = &Error{10, "schedule capacity exceeded"}
	ErrTruncatedCommand   = &Error{11, "command payload truncated"}
	ErrInsufficientGas    = &Error{12, "insufficient gas"}
	ErrUnknownDecommit    = &Error{17, "unknown table decommit target"}
	ErrAlreadyVerified    = &Error{32, "verify proof after verified"}
)

// Verification failures. These all surface as a single outcome class to the
// client (abandon the account) but keep distinct codes for diagnostics.
var (
	ErrColumnMissing   = &Error{40, "layout column count unavailable for public input"}
	ErrConfigInvalid   = &Error{41, "proof configuration rejected"}
	ErrPublicInput     = &Error{42, "public input rejected"}
	ErrOodsMismatch    = &Error{43, "trace and composition disagree at oods point"}
	ErrProofOfWork     = &Error{44, "proof of work check failed"}
	ErrMerkleMismatch  = &Error{45, "merkle authentication path mismatch"}
	ErrInvalidLength   = &Error{46, "query and evaluation lengths differ"}
	ErrInvalidValue    = &Error{47, "last layer coefficient count mismatch"}
	ErrLastLayer       = &Error{48, "last layer verification failed"}
	ErrVectorOverflow  = &Error{49, "fixed capacity container overflow"}
	ErrLayerOutOfRange = &Error{50, "fri layer index out of range"}
)
