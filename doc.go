/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package peerdidgo creates and resolves did:peer identifiers.
//
// Packages for end developer usage
//
// pkg/peerdid: Creates numalgo 0 and numalgo 2 peer DIDs from keys and services and resolves them back into
// DID Docs.
//
// pkg/doc/did: The peer DID Doc model with its JSON projection and parser.
//
// pkg/vdr/peer: did:peer support behind the VDR interface, for use with the pkg/vdr registry.
//
// cmd/peerdid: Command line tool for the operations above.
//
// Basic workflow
//
//  1. Build verification material with did.NewVerificationMaterial or did.NewJWKVerificationMaterial.
//  2. Create a peer DID with peerdid.CreateNumalgo0 or peerdid.CreateNumalgo2.
//  3. Resolve it with peerdid.Resolve (JSON) or peerdid.ResolveDoc (model) in the format you need.
package peerdidgo
