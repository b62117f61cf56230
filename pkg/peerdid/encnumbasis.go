/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdid

import (
	"fmt"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	"github.com/sicpa-dlab/peer-did-go/pkg/doc/jose/jwk"
	"github.com/sicpa-dlab/peer-did-go/pkg/vdr/fingerprint"
)

//nolint:gochecknoglobals
var (
	purposeToCodec = map[did.Purpose]uint64{
		did.PurposeAgreement:      fingerprint.X25519PubKeyMultiCodec,
		did.PurposeAuthentication: fingerprint.ED25519PubKeyMultiCodec,
	}

	codecToPurpose = map[uint64]did.Purpose{
		fingerprint.X25519PubKeyMultiCodec:  did.PurposeAgreement,
		fingerprint.ED25519PubKeyMultiCodec: did.PurposeAuthentication,
	}
)

// createMultibaseEncnumbasis encodes key as multibase(multicodec(raw key)).
func createMultibaseEncnumbasis(key *did.VerificationMaterial) (string, error) {
	raw, err := rawPublicKey(key)
	if err != nil {
		return "", err
	}

	return fingerprint.KeyFingerprint(purposeToCodec[key.Type.Purpose()], raw), nil
}

func rawPublicKey(key *did.VerificationMaterial) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, &EncodingError{Msg: "invalid verification material", Err: err}
	}

	var (
		purpose = key.Type.Purpose()
		raw     []byte
		err     error
	)

	switch key.Format {
	case did.FormatBase58:
		raw, err = fingerprint.Base58Decode(key.Value)
	case did.FormatMultibase:
		raw, err = multibaseRawKey(key.Value, purpose)
	case did.FormatJWK:
		raw, err = jwkRawKey(key.JWK, purpose)
	}

	if err != nil {
		return nil, &EncodingError{Msg: fmt.Sprintf("invalid %s key", key.Format), Err: err}
	}

	if err = fingerprint.ValidateRawKeyLength(raw); err != nil {
		return nil, &EncodingError{Msg: fmt.Sprintf("invalid %s key", key.Format), Err: err}
	}

	return raw, nil
}

func multibaseRawKey(value string, purpose did.Purpose) ([]byte, error) {
	_, mc, err := fingerprint.MultibaseDecode(value)
	if err != nil {
		return nil, err
	}

	code, raw, err := fingerprint.MulticodecDecode(mc)
	if err != nil {
		return nil, err
	}

	if codecToPurpose[code] != purpose {
		return nil, fmt.Errorf("%s key instead of %s", codecToPurpose[code], purpose)
	}

	return raw, nil
}

func jwkRawKey(key *jwk.JWK, purpose did.Purpose) ([]byte, error) {
	raw, err := key.PublicKeyBytes()
	if err != nil {
		return nil, err
	}

	if expected := did.CrvOf(purpose); key.Crv != expected {
		return nil, fmt.Errorf("%s key must have crv %s, got %s", purpose, expected, key.Crv)
	}

	return raw, nil
}

// decodeMultibaseEncnumbasis decodes a multibase encnumbasis and renders the key in format. The returned
// encnumbasis has no transform character.
func decodeMultibaseEncnumbasis(multibase string,
	format did.VerificationMaterialFormat) (string, *did.VerificationMaterial, error) {
	encnumbasis, mc, err := fingerprint.MultibaseDecode(multibase)
	if err != nil {
		return "", nil, &EncodingError{Msg: "invalid key " + multibase, Err: err}
	}

	code, raw, err := fingerprint.MulticodecDecode(mc)
	if err != nil {
		return "", nil, &EncodingError{Msg: "invalid key " + multibase, Err: err}
	}

	if err = fingerprint.ValidateRawKeyLength(raw); err != nil {
		return "", nil, &EncodingError{Msg: "invalid key " + multibase, Err: err}
	}

	purpose := codecToPurpose[code]

	t, err := did.TypeFor(format, purpose)
	if err != nil {
		return "", nil, &EncodingError{Msg: "invalid key " + multibase, Err: err}
	}

	switch format {
	case did.FormatBase58:
		return encnumbasis, did.NewVerificationMaterial(t, fingerprint.Base58Encode(raw)), nil
	case did.FormatMultibase:
		return encnumbasis, did.NewVerificationMaterial(t, fingerprint.KeyFingerprint(code, raw)), nil
	default:
		key, err := jwk.NewOKP(did.CrvOf(purpose), raw)
		if err != nil {
			return "", nil, &EncodingError{Msg: "invalid key " + multibase, Err: err}
		}

		return encnumbasis, did.NewJWKVerificationMaterial(t, key), nil
	}
}

// decodeKey decodes a multibase encnumbasis that must hold a key with the given purpose.
func decodeKey(multibase string, format did.VerificationMaterialFormat,
	purpose did.Purpose) (string, *did.VerificationMaterial, error) {
	encnumbasis, material, err := decodeMultibaseEncnumbasis(multibase, format)
	if err != nil {
		return "", nil, err
	}

	if actual := material.Type.Purpose(); actual != purpose {
		return "", nil, &EncodingError{Msg: fmt.Sprintf("%s instead of %s", actual, purpose)}
	}

	return encnumbasis, material, nil
}
