/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	"github.com/sicpa-dlab/peer-did-go/pkg/doc/jose/jwk"
)

const (
	edKeyBase58     = "ByHnpUCFb1vAfh9CFZ8ZkmUZguURW8nSw889hy6rD8L7"
	edKeyMultibase  = "z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V"
	edKeyJWKX       = "owBhCbktDjkfS6PdQddT0D3yjSitaSysP3YimJ_YgmA"
	edKey2Base58    = "3M5RCDjPTWPkKSN3sxUmmMqHbmRPegYP1tjcKyrDbt9J"
	edKey2Multibase = "z6MkgoLTnTypo3tDRwCkZXSccTPHRLhF4ZnjhueYAFpEX6vg"
	xKeyBase58      = "JhNWeSVLMYccCk7iopQW4guaSJTojqpMEELgSLhKwRr"
	xKeyMultibase   = "z6LSbysY2xFMRpGMhb7tFTLMpeuPRaqaWM1yECx2AtzE3KCc"
	xKeyJWKX        = "BIiFcQEn3dfvB2pjlhOQQour6jXy9d5s2FKEJNTOJik"
	xKey2Base58     = "1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"
	xKey2Multibase  = "z6LSbgC4DpuCf7zxewhFPnYcyBm3YgxjEEovsehvWqZzTm8z"

	peerDIDNumalgo0 = "did:peer:0z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V"

	peerDIDNumalgo2 = "did:peer:2.Ez6LSbysY2xFMRpGMhb7tFTLMpeuPRaqaWM1yECx2AtzE3KCc" +
		".Vz6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V" +
		".Vz6MkgoLTnTypo3tDRwCkZXSccTPHRLhF4ZnjhueYAFpEX6vg"

	encodedService = ".SeyJ0IjoiZG0iLCJzIjoiaHR0cHM6Ly9leGFtcGxlLmNvbS9lbmRwb2ludCIsInIiOlsiZGlkOmV4YW1wbGU6c29tZW1lZGlhdG9yI3NvbWVrZXkiXSwiYSI6WyJkaWRjb21tL3YyIiwiZGlkY29tbS9haXAyO2Vudj1yZmM1ODciXX0" //nolint:lll

	service = `{
		"type": "DIDCommMessaging",
		"serviceEndpoint": "https://example.com/endpoint",
		"routingKeys": ["did:example:somemediator#somekey"],
		"accept": ["didcomm/v2", "didcomm/aip2;env=rfc587"]
	}`
)

func TestIsPeerDID(t *testing.T) {
	valid := []string{
		peerDIDNumalgo0,
		peerDIDNumalgo2,
		peerDIDNumalgo2 + encodedService,
		peerDIDNumalgo2 + encodedService + "=",
		peerDIDNumalgo2 + encodedService + encodedService,
		"did:peer:2.Vz6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:peer:2.Az6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
	}

	for _, s := range valid {
		require.True(t, IsPeerDID(s), s)
	}

	invalid := []string{
		"",
		"did:peer:",
		"did:peer:0",
		"did:peer:2",
		"did:peer:1z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:key:z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:peer:0z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M",
		"did:peer:06MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:peer:0z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7VV",
		"did:peer:0z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M70",
		"did:peer:0a6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:peer:2.Cz6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:peer:2.Va6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		"did:peer:2.Ez6LSbysY2xFMRpGMhb7tFTLMpeuPRaqaWM1yECx2AtzE3K",
		"did:peer:2.Vz6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V.Cfoo",
		"did:peer:2" + encodedService,
		peerDIDNumalgo2 + encodedService + ".Vz6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V",
		peerDIDNumalgo2 + ".SeyJ0Ijoi+ZG0i",
		" " + peerDIDNumalgo0,
	}

	for _, s := range invalid {
		require.False(t, IsPeerDID(s), s)
	}
}

func TestErrors(t *testing.T) {
	cause := &EncodingError{Msg: "invalid key z6Mk", Err: jwk.ErrInvalidJWK}

	err := &MalformedPeerDIDError{Msg: "Invalid key", Err: cause}
	require.EqualError(t, err, "Invalid peer DID provided. Invalid key: invalid key z6Mk: invalid JWK")
	require.ErrorIs(t, err, jwk.ErrInvalidJWK)

	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, cause, encErr)

	require.EqualError(t, &MalformedPeerDIDError{Msg: "Does not match peer DID regexp: x"},
		"Invalid peer DID provided. Does not match peer DID regexp: x")
	require.EqualError(t, &ArgumentError{Msg: "invalid service", Err: cause},
		"invalid service: invalid key z6Mk: invalid JWK")
}

func ed25519Keys() []*did.VerificationMaterial {
	return []*did.VerificationMaterial{
		did.NewVerificationMaterial(did.Ed25519VerificationKey2018, edKeyBase58),
		did.NewVerificationMaterial(did.Ed25519VerificationKey2020, edKeyMultibase),
		did.NewJWKVerificationMaterial(did.JSONWebKey2020Authentication,
			&jwk.JWK{Kty: jwk.OKPKty, Crv: jwk.Ed25519Crv, X: edKeyJWKX}),
	}
}

func x25519Keys() []*did.VerificationMaterial {
	return []*did.VerificationMaterial{
		did.NewVerificationMaterial(did.X25519KeyAgreementKey2019, xKeyBase58),
		did.NewVerificationMaterial(did.X25519KeyAgreementKey2020, xKeyMultibase),
		did.NewJWKVerificationMaterial(did.JSONWebKey2020Agreement,
			&jwk.JWK{Kty: jwk.OKPKty, Crv: jwk.X25519Crv, X: xKeyJWKX}),
	}
}
