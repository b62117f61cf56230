/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdidcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sicpa-dlab/peer-did-go/pkg/peerdid"
)

// Create0Cmd returns the command creating numalgo 0 peer DIDs.
func Create0Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create0",
		Short: "Create a numalgo 0 peer DID",
		Long:  `Create a numalgo 0 peer DID from a single Ed25519 inception key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(cmd); err != nil {
				return err
			}

			keyArg, err := cmd.Flags().GetString(keyFlagName)
			if err != nil {
				return fmt.Errorf(keyFlagName+" flag not found: %s", err)
			}

			if keyArg == "" {
				return errors.New(keyFlagName + " flag is required")
			}

			key, err := parseKey(keyArg)
			if err != nil {
				return err
			}

			peerDID, err := peerdid.CreateNumalgo0(key)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), peerDID)

			return nil
		},
	}

	cmd.Flags().StringP(keyFlagName, keyFlagShorthand, "", keyFlagUsage)
	createCommonFlags(cmd)

	return cmd
}

// Create2Cmd returns the command creating numalgo 2 peer DIDs.
func Create2Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create2",
		Short: "Create a numalgo 2 peer DID",
		Long:  `Create a numalgo 2 peer DID from X25519 encryption keys, Ed25519 signing keys and a service`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(cmd); err != nil {
				return err
			}

			encryptionKeyArgs, err := cmd.Flags().GetStringArray(encryptionKeyFlagName)
			if err != nil {
				return fmt.Errorf(encryptionKeyFlagName+" flag not found: %s", err)
			}

			signingKeyArgs, err := cmd.Flags().GetStringArray(signingKeyFlagName)
			if err != nil {
				return fmt.Errorf(signingKeyFlagName+" flag not found: %s", err)
			}

			encryptionKeys, err := parseKeys(encryptionKeyArgs)
			if err != nil {
				return err
			}

			signingKeys, err := parseKeys(signingKeyArgs)
			if err != nil {
				return err
			}

			service, err := getUserSetVar(cmd, serviceFlagName, serviceEnvKey, true)
			if err != nil {
				return err
			}

			peerDID, err := peerdid.CreateNumalgo2(encryptionKeys, signingKeys, service)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), peerDID)

			return nil
		},
	}

	cmd.Flags().StringArrayP(encryptionKeyFlagName, encryptionKeyFlagShorthand, []string{}, encryptionKeyFlagUsage)
	cmd.Flags().StringArrayP(signingKeyFlagName, signingKeyFlagShorthand, []string{}, signingKeyFlagUsage)
	cmd.Flags().StringP(serviceFlagName, "", "", serviceFlagUsage)
	createCommonFlags(cmd)

	return cmd
}
