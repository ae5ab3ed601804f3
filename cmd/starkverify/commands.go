// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/luxfi/starkverify/account"
	"github.com/luxfi/starkverify/client"
	"github.com/luxfi/starkverify/internal/prooftest"
)

func newClient(accountPath string, verbose bool) *client.Client {
	c := client.New(&client.FileHost{Path: accountPath})
	if verbose {
		c.Log.SetLevel(logrus.DebugLevel)
	}
	return c
}

func newCreateCmd() *cobra.Command {
	var accountPath string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a zeroed proof account file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.CreateAccountFile(accountPath); err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", accountPath, humanize.Bytes(account.AccountSize))
			return nil
		},
	}
	cmd.Flags().StringVarP(&accountPath, "account", "a", "proof.account", "account file path")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var proofPath string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a small valid proof blob for demonstration",
		RunE: func(cmd *cobra.Command, args []string) error {
			image := prooftest.Build(prooftest.Small())
			region := image[account.HeaderSize : account.HeaderSize+account.ProofSize]
			if err := os.WriteFile(proofPath, region, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%s)\n", proofPath, humanize.Bytes(uint64(len(region))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&proofPath, "out", "o", "proof.bin", "proof blob output path")
	return cmd
}

func newPublishCmd() *cobra.Command {
	var (
		accountPath  string
		proofPath    string
		fragmentSize int
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Split a proof blob into fragments and publish them",
		RunE: func(cmd *cobra.Command, args []string) error {
			proof, err := os.ReadFile(proofPath)
			if err != nil {
				return err
			}
			if len(proof) > account.ProofSize {
				return fmt.Errorf("proof blob %s exceeds the proof region (%s)",
					humanize.Bytes(uint64(len(proof))), humanize.Bytes(account.ProofSize))
			}
			fragments := client.SplitProof(proof, fragmentSize)
			bar := progressbar.Default(int64(len(fragments)), "publishing")
			c := newClient(accountPath, verbose)
			if err := c.Publish(fragments, func() { _ = bar.Add(1) }); err != nil {
				return err
			}
			_ = bar.Finish()
			return nil
		},
	}
	cmd.Flags().StringVarP(&accountPath, "account", "a", "proof.account", "account file path")
	cmd.Flags().StringVarP(&proofPath, "proof", "p", "proof.bin", "proof blob path")
	cmd.Flags().IntVar(&fragmentSize, "fragment-size", client.FragmentSize, "fragment payload bytes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var accountPath string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Seed the task stack and enter the Verify stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(accountPath, false).Schedule()
		},
	}
	cmd.Flags().StringVarP(&accountPath, "account", "a", "proof.account", "account file path")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		accountPath string
		max         int
		verbose     bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Submit VerifyProof instructions until the account is Verified",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(accountPath, verbose)
			image, err := c.Host.View()
			if err != nil {
				return err
			}
			plan, err := client.PlanInvocations(image)
			if err != nil {
				return err
			}
			fmt.Printf("planned invocations: %d\n", plan)
			n, err := c.Drive(max)
			if err != nil {
				return err
			}
			fmt.Printf("verified after %d invocations\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&accountPath, "account", "a", "proof.account", "account file path")
	cmd.Flags().IntVar(&max, "max", 0, "abort after this many invocations (0 = unbounded)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func newStatusCmd() *cobra.Command {
	var accountPath string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the account stage, pending tasks, and verified output",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newClient(accountPath, false).Status()
			if err != nil {
				return err
			}
			fmt.Printf("stage:   %s\n", stageName(st.Stage))
			fmt.Printf("pending: %d\n", st.Pending)
			if st.Stage == account.StageVerified {
				fmt.Printf("program hash: %s\n", st.ProgramHash.Hex())
				for i, v := range st.Output {
					fmt.Printf("output[%d] = %s\n", i, v.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&accountPath, "account", "a", "proof.account", "account file path")
	return cmd
}

func stageName(s byte) string {
	switch s {
	case account.StagePublish:
		return "Publish"
	case account.StageVerify:
		return "Verify"
	case account.StageVerified:
		return "Verified"
	}
	return fmt.Sprintf("unknown(%d)", s)
}
