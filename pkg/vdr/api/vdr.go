/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"errors"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
)

// ErrNotSupported is returned by operations a DID method cannot perform, peer DIDs are never updated or
// deactivated.
var ErrNotSupported = errors.New("operation not supported by DID method")

const (
	// FormatOpt selects the verification material format (did.VerificationMaterialFormat) of a read document.
	FormatOpt = "format"

	// NumalgoOpt selects the numalgo (0 or 2) of a created peer DID.
	NumalgoOpt = "numalgo"
)

// Registry vdr registry.
type Registry interface {
	Resolve(did string, opts ...DIDMethodOption) (*did.DocResolution, error)
	Create(method string, did *did.DIDDoc, opts ...DIDMethodOption) (*did.DocResolution, error)
	Update(did *did.DIDDoc, opts ...DIDMethodOption) error
	Deactivate(did string, opts ...DIDMethodOption) error
	Close() error
}

// VDR verifiable data registry interface.
type VDR interface {
	Read(did string, opts ...DIDMethodOption) (*did.DocResolution, error)
	Create(did *did.DIDDoc, opts ...DIDMethodOption) (*did.DocResolution, error)
	Accept(method string) bool
	Update(did *did.DIDDoc, opts ...DIDMethodOption) error
	Deactivate(did string, opts ...DIDMethodOption) error
	Close() error
}

// DIDMethodOpts did method opts.
type DIDMethodOpts struct {
	Values map[string]interface{}
}

// DIDMethodOption is a did method option.
type DIDMethodOption func(opts *DIDMethodOpts)

// WithOption add option for did method.
func WithOption(name string, value interface{}) DIDMethodOption {
	return func(didMethodOpts *DIDMethodOpts) {
		didMethodOpts.Values[name] = value
	}
}

// NewDIDMethodOpts applies opts to empty did method opts.
func NewDIDMethodOpts(opts ...DIDMethodOption) *DIDMethodOpts {
	docOpts := &DIDMethodOpts{Values: make(map[string]interface{})}

	for _, opt := range opts {
		opt(docOpts)
	}

	return docOpts
}
