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

type resolveOpts struct {
	format did.VerificationMaterialFormat
}

// ResolveOption configures Resolve and ResolveDoc.
type ResolveOption func(opts *resolveOpts)

// WithFormat sets the format of the verification methods in the resolved DID Doc. Default is multibase.
func WithFormat(format did.VerificationMaterialFormat) ResolveOption {
	return func(opts *resolveOpts) {
		opts.format = format
	}
}

// Resolve resolves a peer DID into its DID Doc JSON.
func Resolve(peerDID string, opts ...ResolveOption) (string, error) {
	doc, err := ResolveDoc(peerDID, opts...)
	if err != nil {
		return "", err
	}

	return renderDoc(doc)
}

func renderDoc(doc *did.DIDDoc) (string, error) {
	data, err := doc.JSONBytes()
	if err != nil {
		return "", &MalformedPeerDIDError{Msg: "Invalid DID Doc", Err: &EncodingError{Msg: "render DID Doc", Err: err}}
	}

	return string(data), nil
}

// ResolveDoc resolves a peer DID into its DID Doc. Failures are reported as *MalformedPeerDIDError.
func ResolveDoc(peerDID string, opts ...ResolveOption) (*did.DIDDoc, error) {
	o := &resolveOpts{format: did.FormatMultibase}

	for _, opt := range opts {
		opt(o)
	}

	if !IsPeerDID(peerDID) {
		return nil, &MalformedPeerDIDError{Msg: "Does not match peer DID regexp: " + peerDID}
	}

	logger.Debugf("resolving peer DID %s with %s format", peerDID, o.format)

	switch peerDID[len(peerPrefix)] {
	case numalgo0:
		return buildDocNumalgo0(peerDID, o.format)
	case numalgo2:
		return buildDocNumalgo2(peerDID, o.format)
	default:
		return nil, &MalformedPeerDIDError{Msg: fmt.Sprintf("unsupported numalgo %q", peerDID[len(peerPrefix)])}
	}
}

func buildDocNumalgo0(peerDID string, format did.VerificationMaterialFormat) (*did.DIDDoc, error) {
	inceptionKey := peerDID[len(peerPrefix)+1:]

	encnumbasis, material, err := decodeKey(inceptionKey, format, did.PurposeAuthentication)
	if err != nil {
		return nil, &MalformedPeerDIDError{Msg: "Invalid key", Err: err}
	}

	return &did.DIDDoc{
		ID:             peerDID,
		Authentication: []did.VerificationMethod{verificationMethod(peerDID, encnumbasis, material)},
		KeyAgreement:   []did.VerificationMethod{},
	}, nil
}

func buildDocNumalgo2(peerDID string, format did.VerificationMaterialFormat) (*did.DIDDoc, error) {
	doc := &did.DIDDoc{
		ID:             peerDID,
		Authentication: []did.VerificationMethod{},
		KeyAgreement:   []did.VerificationMethod{},
	}

	var services []string

	// the regexp guarantees non empty segments
	for _, segment := range strings.Split(peerDID[len(peerPrefix)+2:], segmentDelimiter) {
		value := segment[1:]

		switch segment[0] {
		case transformService:
			services = append(services, value)
		case transformAuthentication:
			vm, err := decodeVerificationMethod(peerDID, value, format, did.PurposeAuthentication)
			if err != nil {
				return nil, err
			}

			doc.Authentication = append(doc.Authentication, *vm)
		case transformAgreement:
			vm, err := decodeVerificationMethod(peerDID, value, format, did.PurposeAgreement)
			if err != nil {
				return nil, err
			}

			doc.KeyAgreement = append(doc.KeyAgreement, *vm)
		default:
			return nil, &MalformedPeerDIDError{Msg: "Unsupported transform part of peer DID: " + segment}
		}
	}

	s, err := decodeService(services)
	if err != nil {
		return nil, &MalformedPeerDIDError{Msg: "Invalid service", Err: err}
	}

	doc.Service = s

	return doc, nil
}

func decodeVerificationMethod(peerDID, multibase string, format did.VerificationMaterialFormat,
	purpose did.Purpose) (*did.VerificationMethod, error) {
	encnumbasis, material, err := decodeKey(multibase, format, purpose)
	if err != nil {
		return nil, &MalformedPeerDIDError{Msg: "Invalid key " + multibase, Err: err}
	}

	vm := verificationMethod(peerDID, encnumbasis, material)

	return &vm, nil
}

func verificationMethod(peerDID, encnumbasis string, material *did.VerificationMaterial) did.VerificationMethod {
	return did.VerificationMethod{
		ID:         peerDID + "#" + encnumbasis,
		Controller: peerDID,
		Material:   *material,
	}
}
