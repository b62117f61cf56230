/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdid

import (
	"fmt"
	"strings"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
)

// CreateNumalgo0 creates a numalgo 0 peer DID from an Ed25519 inception key.
func CreateNumalgo0(inceptionKey *did.VerificationMaterial) (string, error) {
	if err := checkPurpose(inceptionKey, did.PurposeAuthentication); err != nil {
		return "", err
	}

	encnumbasis, err := createMultibaseEncnumbasis(inceptionKey)
	if err != nil {
		return "", &ArgumentError{Msg: "invalid inception key", Err: err}
	}

	peerDID := peerPrefix + string(numalgo0) + encnumbasis

	logger.Debugf("created peer DID %s", peerDID)

	return peerDID, nil
}

// CreateNumalgo2 creates a numalgo 2 peer DID from X25519 encryption keys, Ed25519 signing keys and an
// optional service. Keys keep the given order, encryption keys come first. service is a JSON object or
// array, an empty string means no service.
func CreateNumalgo2(encryptionKeys, signingKeys []*did.VerificationMaterial, service string) (string, error) {
	for _, key := range encryptionKeys {
		if err := checkPurpose(key, did.PurposeAgreement); err != nil {
			return "", err
		}
	}

	for _, key := range signingKeys {
		if err := checkPurpose(key, did.PurposeAuthentication); err != nil {
			return "", err
		}
	}

	if len(encryptionKeys)+len(signingKeys) == 0 {
		return "", &ArgumentError{Msg: "at least one encryption or signing key is required"}
	}

	var sb strings.Builder

	sb.WriteString(peerPrefix)
	sb.WriteByte(numalgo2)

	if err := writeKeys(&sb, transformAgreement, encryptionKeys); err != nil {
		return "", &ArgumentError{Msg: "invalid encryption key", Err: err}
	}

	if err := writeKeys(&sb, transformAuthentication, signingKeys); err != nil {
		return "", &ArgumentError{Msg: "invalid signing key", Err: err}
	}

	if strings.TrimSpace(service) != "" {
		encoded, err := encodeService(service)
		if err != nil {
			return "", &ArgumentError{Msg: "invalid service", Err: err}
		}

		sb.WriteString(encoded)
	}

	peerDID := sb.String()

	logger.Debugf("created peer DID %s", peerDID)

	return peerDID, nil
}

func writeKeys(sb *strings.Builder, transform byte, keys []*did.VerificationMaterial) error {
	for _, key := range keys {
		encnumbasis, err := createMultibaseEncnumbasis(key)
		if err != nil {
			return err
		}

		sb.WriteString(segmentDelimiter)
		sb.WriteByte(transform)
		sb.WriteString(encnumbasis)
	}

	return nil
}

func checkPurpose(key *did.VerificationMaterial, purpose did.Purpose) error {
	if key == nil {
		return &ArgumentError{Msg: "verification material is missing"}
	}

	if key.Type.Purpose() != purpose {
		return &ArgumentError{Msg: fmt.Sprintf("invalid verification material type: %s cannot be used for %s",
			key.Type, purpose)}
	}

	return nil
}
