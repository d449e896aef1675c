// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/ulimit"
	"github.com/ava-labs/avalanchego/vms/rpcchainvm"
	"github.com/spf13/cobra"

	"curvevm/consts"

	cvm "curvevm/vm"
)

var rootCmd = &cobra.Command{
	Use:        "curvevm",
	Short:      "CurveVM agent",
	SuggestFor: []string{"curvevm"},
	RunE:       runFunc,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints out the version",
	RunE: func(*cobra.Command, []string) error {
		fmt.Println(consts.Version)
		return nil
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "curvevm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func runFunc(*cobra.Command, []string) error {
	if err := ulimit.Set(ulimit.DefaultFDLimit, logging.NoLog{}); err != nil {
		return fmt.Errorf("%w: failed to set fd limit correctly", err)
	}

	vm, err := cvm.New()
	if err != nil {
		return err
	}

	return rpcchainvm.Serve(context.TODO(), vm)
}
