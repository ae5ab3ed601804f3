// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

// Gas costs charged per command before any account write. A VerifyProof
// invocation executes exactly one task, so GasVerifyTask is the ceiling a
// single task is allowed to approach; task granularity is chosen so no
// kind exceeds it.
const (
	GasPublishBase    uint64 = 600
	GasPublishPerByte uint64 = 12
	GasSchedule       uint64 = 1_500
	GasVerifyTask     uint64 = 25_000
)
