/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package peerdid creates and resolves did:peer identifiers of numalgo 0 (single inception key) and
// numalgo 2 (multiple inception keys and services).
//
// Every operation is a pure function of its input: no I/O is performed and all functions are safe for
// concurrent use.
package peerdid

import (
	"regexp"

	"github.com/hyperledger/aries-framework-go/component/log"
)

const (
	// DIDMethod is the did method name.
	DIDMethod = "peer"

	peerPrefix = "did:peer:"

	numalgo0 = '0'
	numalgo2 = '2'

	transformAgreement      = 'E'
	transformAuthentication = 'V'
	transformService        = 'S'

	segmentDelimiter = "."
)

var logger = log.New("peer-did/peerdid")

// A numalgo 2 DID may carry several service segments, one per service.
var peerDIDRegexp = regexp.MustCompile(`^did:peer:(([0]z[1-9A-HJ-NP-Za-km-z]{46,47})` +
	`|(2(\.[AEVID]z[1-9A-HJ-NP-Za-km-z]{46,47})+(\.S[0-9a-zA-Z=_-]*)*))$`)

// IsPeerDID checks if s is a syntactically valid numalgo 0 or numalgo 2 peer DID.
func IsPeerDID(s string) bool {
	return peerDIDRegexp.MatchString(s)
}
