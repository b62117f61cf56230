/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peer

import (
	"errors"
	"fmt"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	"github.com/sicpa-dlab/peer-did-go/pkg/peerdid"
	vdrapi "github.com/sicpa-dlab/peer-did-go/pkg/vdr/api"
)

// Create encodes the keys and services of didDoc into a new peer DID and returns its resolved document.
// didDoc.ID is ignored. The numalgo option selects numalgo 0, which takes exactly one authentication key
// and nothing else, or numalgo 2.
func (v *VDR) Create(didDoc *did.DIDDoc, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
	if didDoc == nil {
		return nil, errors.New("peer vdr Create: did document is missing")
	}

	docOpts := vdrapi.NewDIDMethodOpts(opts...)

	format, err := v.format(docOpts)
	if err != nil {
		return nil, fmt.Errorf("peer vdr Create: %w", err)
	}

	numalgo := v.defaultNumalgo

	if n, ok := docOpts.Values[vdrapi.NumalgoOpt]; ok {
		if numalgo, ok = n.(int); !ok {
			return nil, fmt.Errorf("peer vdr Create: %s option not int", vdrapi.NumalgoOpt)
		}
	}

	var peerDID string

	switch numalgo {
	case 0:
		peerDID, err = createNumalgo0(didDoc)
	case 2: //nolint:gomnd
		peerDID, err = createNumalgo2(didDoc)
	default:
		return nil, fmt.Errorf("peer vdr Create: unsupported numalgo %d", numalgo)
	}

	if err != nil {
		return nil, fmt.Errorf("peer vdr Create: %w", err)
	}

	logger.Debugf("created %s", peerDID)

	return v.Read(peerDID, vdrapi.WithOption(vdrapi.FormatOpt, format))
}

func createNumalgo0(didDoc *did.DIDDoc) (string, error) {
	if len(didDoc.Authentication) != 1 || len(didDoc.KeyAgreement) != 0 || len(didDoc.Service) != 0 {
		return "", errors.New("numalgo 0 takes exactly one authentication key and no other entries")
	}

	return peerdid.CreateNumalgo0(&didDoc.Authentication[0].Material)
}

func createNumalgo2(didDoc *did.DIDDoc) (string, error) {
	var service string

	if len(didDoc.Service) > 0 {
		data, err := did.ServiceJSON(didDoc.Service)
		if err != nil {
			return "", fmt.Errorf("render services: %w", err)
		}

		service = string(data)
	}

	return peerdid.CreateNumalgo2(materials(didDoc.KeyAgreement), materials(didDoc.Authentication), service)
}

func materials(methods []did.VerificationMethod) []*did.VerificationMaterial {
	keys := make([]*did.VerificationMaterial, 0, len(methods))

	for i := range methods {
		keys = append(keys, &methods[i].Material)
	}

	return keys
}
