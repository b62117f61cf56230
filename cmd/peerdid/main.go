/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the peerdid tool creating, resolving and validating did:peer identifiers.
package main

import (
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/sicpa-dlab/peer-did-go/cmd/peerdid/peerdidcmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "peerdid",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("peer-did/cmd")

	rootCmd.AddCommand(peerdidcmd.Create0Cmd(), peerdidcmd.Create2Cmd(), peerdidcmd.ResolveCmd(),
		peerdidcmd.ValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run peerdid: %s", err)
	}
}
