/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package peerdidcmd contains the sub commands of the peerdid tool.
package peerdidcmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
)

const (
	// log level.
	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "PEERDID_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	// verification material format of resolved documents.
	formatFlagName      = "format"
	formatEnvKey        = "PEERDID_FORMAT"
	formatFlagShorthand = "f"
	formatFlagUsage     = "Verification material format of the DID Doc." +
		" Possible values [multibase] [base58] [jwk]. Defaults to multibase if not set." +
		" Alternatively, this can be set with the following environment variable: " + formatEnvKey

	// inception key of numalgo 0.
	keyFlagName      = "key"
	keyFlagShorthand = "k"
	keyFlagUsage     = "Ed25519 inception key in TYPE:VALUE format, e.g. Ed25519VerificationKey2020:z6Mk..." +
		" A JsonWebKey2020 value is the JWK JSON object."

	// keys of numalgo 2.
	encryptionKeyFlagName      = "encryption-key"
	encryptionKeyFlagShorthand = "e"
	encryptionKeyFlagUsage     = "X25519 key agreement key in TYPE:VALUE format." +
		" This flag can be repeated, keys keep the given order."

	signingKeyFlagName      = "signing-key"
	signingKeyFlagShorthand = "s"
	signingKeyFlagUsage     = "Ed25519 authentication key in TYPE:VALUE format." +
		" This flag can be repeated, keys keep the given order."

	// service of numalgo 2.
	serviceFlagName  = "service"
	serviceEnvKey    = "PEERDID_SERVICE"
	serviceFlagUsage = "Service JSON object or array (optional)." +
		" Alternatively, this can be set with the following environment variable: " + serviceEnvKey
)

var logger = log.New("peer-did/cmd")

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func setLogLevel(cmd *cobra.Command) error {
	logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
	if err != nil {
		return err
	}

	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Debugf("logger level set to %s", logLevel)
	}

	return nil
}

func getFormat(cmd *cobra.Command) (did.VerificationMaterialFormat, error) {
	format, err := getUserSetVar(cmd, formatFlagName, formatEnvKey, true)
	if err != nil {
		return 0, err
	}

	if format == "" {
		return did.FormatMultibase, nil
	}

	return did.ParseVerificationMaterialFormat(format)
}

// parseKey parses a TYPE:VALUE key argument.
func parseKey(arg string) (*did.VerificationMaterial, error) {
	const numPartsKey = 2

	parts := strings.SplitN(arg, ":", numPartsKey)
	if len(parts) != numPartsKey || parts[1] == "" {
		return nil, fmt.Errorf("key %q is not in TYPE:VALUE format", arg)
	}

	return did.ParseVerificationMaterial(parts[0], parts[1])
}

func parseKeys(args []string) ([]*did.VerificationMaterial, error) {
	keys := make([]*did.VerificationMaterial, 0, len(args))

	for _, arg := range args {
		key, err := parseKey(arg)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, nil
}

func createCommonFlags(cmd *cobra.Command) {
	// log level
	cmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
}
