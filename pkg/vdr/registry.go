/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vdr

import (
	"fmt"
	"strings"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	vdrapi "github.com/sicpa-dlab/peer-did-go/pkg/vdr/api"
)

// Option is a vdr instance option.
type Option func(opts *Registry)

// Registry dispatches DID operations to the VDR accepting the DID method.
type Registry struct {
	vdr         []vdrapi.VDR
	defaultOpts []vdrapi.DIDMethodOption
}

// New return new instance of vdr.
func New(opts ...Option) *Registry {
	baseVDR := &Registry{}

	// Apply options
	for _, opt := range opts {
		opt(baseVDR)
	}

	return baseVDR
}

// Resolve did document.
func (r *Registry) Resolve(did string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
	didMethod, err := GetDidMethod(did)
	if err != nil {
		return nil, err
	}

	// resolve did method
	method, err := r.resolveVDR(didMethod)
	if err != nil {
		return nil, err
	}

	// Obtain the DID Document
	didDocResolution, err := method.Read(did, r.applyDefaultOpts(opts)...)
	if err != nil {
		return nil, fmt.Errorf("did method read failed: %w", err)
	}

	return didDocResolution, nil
}

// Create a new DID Document with the given method.
func (r *Registry) Create(didMethod string, didDoc *did.DIDDoc,
	opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
	method, err := r.resolveVDR(didMethod)
	if err != nil {
		return nil, err
	}

	return method.Create(didDoc, r.applyDefaultOpts(opts)...)
}

// Update did document.
func (r *Registry) Update(didDoc *did.DIDDoc, opts ...vdrapi.DIDMethodOption) error {
	didMethod, err := GetDidMethod(didDoc.ID)
	if err != nil {
		return err
	}

	// resolve did method
	method, err := r.resolveVDR(didMethod)
	if err != nil {
		return err
	}

	return method.Update(didDoc, r.applyDefaultOpts(opts)...)
}

// Deactivate did document.
func (r *Registry) Deactivate(did string, opts ...vdrapi.DIDMethodOption) error {
	didMethod, err := GetDidMethod(did)
	if err != nil {
		return err
	}

	// resolve did method
	method, err := r.resolveVDR(didMethod)
	if err != nil {
		return err
	}

	return method.Deactivate(did, r.applyDefaultOpts(opts)...)
}

// applyDefaultOpts puts the registry defaults before opts, so that options given per call win.
func (r *Registry) applyDefaultOpts(opts []vdrapi.DIDMethodOption) []vdrapi.DIDMethodOption {
	return append(append([]vdrapi.DIDMethodOption{}, r.defaultOpts...), opts...)
}

// Close frees resources being maintained by vdr.
func (r *Registry) Close() error {
	for _, v := range r.vdr {
		if err := v.Close(); err != nil {
			return fmt.Errorf("close vdr: %w", err)
		}
	}

	return nil
}

func (r *Registry) resolveVDR(method string) (vdrapi.VDR, error) {
	for _, v := range r.vdr {
		if v.Accept(method) {
			return v, nil
		}
	}

	return nil, fmt.Errorf("did method %s not supported for vdr", method)
}

// WithVDR adds did method implementation for store.
func WithVDR(method vdrapi.VDR) Option {
	return func(opts *Registry) {
		opts.vdr = append(opts.vdr, method)
	}
}

// WithDefaultOption adds a did method option applied to every call unless the call sets it too.
func WithDefaultOption(name string, value interface{}) Option {
	return func(opts *Registry) {
		opts.defaultOpts = append(opts.defaultOpts, vdrapi.WithOption(name, value))
	}
}

// GetDidMethod get did method.
func GetDidMethod(didID string) (string, error) {
	// only the did:<method>:<method specific id> shape is checked, the method validates the rest
	const numPartsDID = 3

	didParts := strings.SplitN(didID, ":", numPartsDID)
	if len(didParts) < numPartsDID || didParts[0] != "did" {
		return "", fmt.Errorf("wrong format did input: %s", didID)
	}

	return didParts[1], nil
}
