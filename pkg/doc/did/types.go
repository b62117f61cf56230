/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"fmt"
	"strings"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/jose/jwk"
)

// VerificationMaterialFormat is the encoding of a public key inside a verification method.
type VerificationMaterialFormat int

const (
	// FormatJWK renders keys as publicKeyJwk.
	FormatJWK VerificationMaterialFormat = iota + 1
	// FormatBase58 renders keys as publicKeyBase58.
	FormatBase58
	// FormatMultibase renders keys as publicKeyMultibase.
	FormatMultibase
)

func (f VerificationMaterialFormat) String() string {
	switch f {
	case FormatJWK:
		return "jwk"
	case FormatBase58:
		return "base58"
	case FormatMultibase:
		return "multibase"
	default:
		return fmt.Sprintf("VerificationMaterialFormat(%d)", int(f))
	}
}

// ParseVerificationMaterialFormat parses "jwk", "base58" or "multibase", case-insensitively.
func ParseVerificationMaterialFormat(s string) (VerificationMaterialFormat, error) {
	for _, f := range []VerificationMaterialFormat{FormatJWK, FormatBase58, FormatMultibase} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unsupported verification material format: %s", s)
}

// Purpose is the verification relationship a key is used for.
type Purpose int

const (
	// PurposeAgreement keys (X25519) land in keyAgreement.
	PurposeAgreement Purpose = iota + 1
	// PurposeAuthentication keys (Ed25519) land in authentication.
	PurposeAuthentication
)

func (p Purpose) String() string {
	switch p {
	case PurposeAgreement:
		return "key agreement"
	case PurposeAuthentication:
		return "authentication"
	default:
		return fmt.Sprintf("Purpose(%d)", int(p))
	}
}

// VerificationMethodType is one of the verification method types usable in a peer DID Doc.
// The set is closed: only the package level values below exist.
type VerificationMethodType struct {
	purpose Purpose
	name    string
}

// Verification method types. JsonWebKey2020 exists once per purpose since the JWK curve decides the purpose.
//
//nolint:gochecknoglobals
var (
	X25519KeyAgreementKey2019    = VerificationMethodType{PurposeAgreement, "X25519KeyAgreementKey2019"}
	X25519KeyAgreementKey2020    = VerificationMethodType{PurposeAgreement, "X25519KeyAgreementKey2020"}
	JSONWebKey2020Agreement      = VerificationMethodType{PurposeAgreement, "JsonWebKey2020"}
	Ed25519VerificationKey2018   = VerificationMethodType{PurposeAuthentication, "Ed25519VerificationKey2018"}
	Ed25519VerificationKey2020   = VerificationMethodType{PurposeAuthentication, "Ed25519VerificationKey2020"}
	JSONWebKey2020Authentication = VerificationMethodType{PurposeAuthentication, "JsonWebKey2020"}
)

// Purpose of keys of this type.
func (t VerificationMethodType) Purpose() Purpose {
	return t.purpose
}

// String returns the JSON "type" value.
func (t VerificationMethodType) String() string {
	return t.name
}

// PublicKeyField is the verification method member carrying the key value.
type PublicKeyField string

// Public key members.
const (
	PublicKeyBase58    PublicKeyField = "publicKeyBase58"
	PublicKeyMultibase PublicKeyField = "publicKeyMultibase"
	PublicKeyJwk       PublicKeyField = "publicKeyJwk"
)

//nolint:gochecknoglobals
var (
	verTypeToFormat = map[VerificationMethodType]VerificationMaterialFormat{
		X25519KeyAgreementKey2019:    FormatBase58,
		X25519KeyAgreementKey2020:    FormatMultibase,
		JSONWebKey2020Agreement:      FormatJWK,
		Ed25519VerificationKey2018:   FormatBase58,
		Ed25519VerificationKey2020:   FormatMultibase,
		JSONWebKey2020Authentication: FormatJWK,
	}

	formatToField = map[VerificationMaterialFormat]PublicKeyField{
		FormatBase58:    PublicKeyBase58,
		FormatMultibase: PublicKeyMultibase,
		FormatJWK:       PublicKeyJwk,
	}

	formatToType = map[VerificationMaterialFormat]map[Purpose]VerificationMethodType{
		FormatBase58: {
			PurposeAgreement:      X25519KeyAgreementKey2019,
			PurposeAuthentication: Ed25519VerificationKey2018,
		},
		FormatMultibase: {
			PurposeAgreement:      X25519KeyAgreementKey2020,
			PurposeAuthentication: Ed25519VerificationKey2020,
		},
		FormatJWK: {
			PurposeAgreement:      JSONWebKey2020Agreement,
			PurposeAuthentication: JSONWebKey2020Authentication,
		},
	}

	purposeToCrv = map[Purpose]string{
		PurposeAgreement:      jwk.X25519Crv,
		PurposeAuthentication: jwk.Ed25519Crv,
	}

	typeNames = map[string]VerificationMethodType{
		X25519KeyAgreementKey2019.name:  X25519KeyAgreementKey2019,
		X25519KeyAgreementKey2020.name:  X25519KeyAgreementKey2020,
		Ed25519VerificationKey2018.name: Ed25519VerificationKey2018,
		Ed25519VerificationKey2020.name: Ed25519VerificationKey2020,
	}
)

// FormatOf returns the material format bound to t.
func FormatOf(t VerificationMethodType) (VerificationMaterialFormat, bool) {
	f, ok := verTypeToFormat[t]

	return f, ok
}

// FieldOf returns the public key member used by keys of format f.
func FieldOf(f VerificationMaterialFormat) (PublicKeyField, bool) {
	field, ok := formatToField[f]

	return field, ok
}

// TypeFor returns the verification method type of a key rendered in format f for purpose p.
func TypeFor(f VerificationMaterialFormat, p Purpose) (VerificationMethodType, error) {
	t, ok := formatToType[f][p]
	if !ok {
		return VerificationMethodType{}, fmt.Errorf("no verification method type for format %s and purpose %s", f, p)
	}

	return t, nil
}

// CrvOf returns the JWK curve of keys with purpose p.
func CrvOf(p Purpose) string {
	return purposeToCrv[p]
}

// parseVerificationMethodType resolves a JSON "type" value. JsonWebKey2020 needs the JWK curve to pick
// the purpose: X25519 is key agreement, anything else authentication.
func parseVerificationMethodType(name, crv string) (VerificationMethodType, bool) {
	if name == JSONWebKey2020Agreement.name {
		if crv == jwk.X25519Crv {
			return JSONWebKey2020Agreement, true
		}

		return JSONWebKey2020Authentication, true
	}

	t, ok := typeNames[name]

	return t, ok
}
