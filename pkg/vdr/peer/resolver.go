/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peer

import (
	"fmt"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	"github.com/sicpa-dlab/peer-did-go/pkg/peerdid"
	vdrapi "github.com/sicpa-dlab/peer-did-go/pkg/vdr/api"
)

// Read resolves a did:peer value to its DID document.
func (v *VDR) Read(peerDID string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
	format, err := v.format(vdrapi.NewDIDMethodOpts(opts...))
	if err != nil {
		return nil, fmt.Errorf("peer vdr Read: %w", err)
	}

	doc, err := peerdid.ResolveDoc(peerDID, peerdid.WithFormat(format))
	if err != nil {
		return nil, fmt.Errorf("peer vdr Read: %w", err)
	}

	return &did.DocResolution{DIDDocument: doc}, nil
}
