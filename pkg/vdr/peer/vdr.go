/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package peer adapts did:peer creation and resolution to the VDR interface. Peer DIDs carry their whole
// DID Doc, so nothing is stored: Read resolves, Create encodes.
package peer

import (
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	"github.com/sicpa-dlab/peer-did-go/pkg/peerdid"
	vdrapi "github.com/sicpa-dlab/peer-did-go/pkg/vdr/api"
)

var logger = log.New("peer-did/vdr/peer")

// VDR implements did:peer method support.
type VDR struct {
	defaultFormat  did.VerificationMaterialFormat
	defaultNumalgo int
}

// Option configures the peer VDR.
type Option func(v *VDR)

// New returns new instance of VDR that works with did:peer method.
func New(opts ...Option) *VDR {
	v := &VDR{defaultFormat: did.FormatMultibase, defaultNumalgo: 2}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// WithDefaultFormat sets the verification material format used when Read or Create gets no format option.
func WithDefaultFormat(format did.VerificationMaterialFormat) Option {
	return func(v *VDR) {
		v.defaultFormat = format
	}
}

// WithDefaultNumalgo sets the numalgo used when Create gets no numalgo option.
func WithDefaultNumalgo(numalgo int) Option {
	return func(v *VDR) {
		v.defaultNumalgo = numalgo
	}
}

// Accept accepts did:peer method.
func (v *VDR) Accept(method string) bool {
	return method == peerdid.DIDMethod
}

// Update is not supported, a peer DID is immutable.
func (v *VDR) Update(_ *did.DIDDoc, _ ...vdrapi.DIDMethodOption) error {
	return fmt.Errorf("peer vdr Update: %w", vdrapi.ErrNotSupported)
}

// Deactivate is not supported, a peer DID is immutable.
func (v *VDR) Deactivate(_ string, _ ...vdrapi.DIDMethodOption) error {
	return fmt.Errorf("peer vdr Deactivate: %w", vdrapi.ErrNotSupported)
}

// Close frees resources being maintained by VDR.
func (v *VDR) Close() error {
	return nil
}

func (v *VDR) format(docOpts *vdrapi.DIDMethodOpts) (did.VerificationMaterialFormat, error) {
	switch f := docOpts.Values[vdrapi.FormatOpt].(type) {
	case nil:
		return v.defaultFormat, nil
	case did.VerificationMaterialFormat:
		return f, nil
	case string:
		return did.ParseVerificationMaterialFormat(f)
	default:
		return 0, fmt.Errorf("%s option has unsupported type %T", vdrapi.FormatOpt, f)
	}
}
