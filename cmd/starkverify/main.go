// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command starkverify drives a file-backed ProofAccount through the
// publish / schedule / verify lifecycle, one instruction per program run,
// the same way an on-chain client batches transactions.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := &cobra.Command{
		Use:     "starkverify",
		Short:   "Resumable STARK proof verification against a file-backed account",
		Version: version + " (" + commit + ")",
	}

	root.AddCommand(newCreateCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newPublishCmd())
	root.AddCommand(newScheduleCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newStatusCmd())

	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
