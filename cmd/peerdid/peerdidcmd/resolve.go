/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdidcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sicpa-dlab/peer-did-go/pkg/vdr"
	vdrapi "github.com/sicpa-dlab/peer-did-go/pkg/vdr/api"
	"github.com/sicpa-dlab/peer-did-go/pkg/vdr/peer"
)

// ResolveCmd returns the command printing the DID Doc of a peer DID.
func ResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <did>",
		Short: "Resolve a peer DID",
		Long:  `Resolve a numalgo 0 or numalgo 2 peer DID and print its DID Doc`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(cmd); err != nil {
				return err
			}

			format, err := getFormat(cmd)
			if err != nil {
				return err
			}

			registry := vdr.New(vdr.WithVDR(peer.New()))

			defer func() {
				if errClose := registry.Close(); errClose != nil {
					logger.Warnf("close registry: %s", errClose)
				}
			}()

			docResolution, err := registry.Resolve(args[0], vdrapi.WithOption(vdrapi.FormatOpt, format))
			if err != nil {
				return err
			}

			data, err := docResolution.DIDDocument.JSONBytes()
			if err != nil {
				return fmt.Errorf("render DID Doc: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}

	cmd.Flags().StringP(formatFlagName, formatFlagShorthand, "", formatFlagUsage)
	createCommonFlags(cmd)

	return cmd
}

// ValidateCmd returns the command checking that a peer DID can be resolved.
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <did>",
		Short: "Validate a peer DID",
		Long:  `Check the peer DID grammar and decode every key and service the DID carries`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(cmd); err != nil {
				return err
			}

			if _, err := peer.New().Read(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid peer DID\n", args[0])

			return nil
		},
	}

	createCommonFlags(cmd)

	return cmd
}
