/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwk holds the OKP JSON Web Key form of X25519 and Ed25519 public keys.
package jwk

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwa"
	jwxjwk "github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/x25519"
)

const (
	// OKPKty is the key type of octet key pairs.
	OKPKty = "OKP"
	// Ed25519Crv is the curve of authentication keys.
	Ed25519Crv = "Ed25519"
	// X25519Crv is the curve of key agreement keys.
	X25519Crv = "X25519"
)

// ErrInvalidJWK is returned for JWKs that do not describe an OKP public key.
var ErrInvalidJWK = errors.New("invalid JWK")

// JWK is a public OKP JSON Web Key.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
}

// NewOKP creates the JWK of a raw public key on curve crv.
func NewOKP(crv string, pubKey []byte) (*JWK, error) {
	var raw interface{}

	switch crv {
	case Ed25519Crv:
		raw = ed25519.PublicKey(pubKey)
	case X25519Crv:
		raw = x25519.PublicKey(pubKey)
	default:
		return nil, fmt.Errorf("%w: unsupported crv %s", ErrInvalidJWK, crv)
	}

	key, err := jwxjwk.FromRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("create OKP JWK: %w", err)
	}

	okp, ok := key.(jwxjwk.OKPPublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected key %T", ErrInvalidJWK, key)
	}

	return &JWK{
		Kty: key.KeyType().String(),
		Crv: okp.Crv().String(),
		X:   base64.RawURLEncoding.EncodeToString(okp.X()),
	}, nil
}

// PublicKeyBytes returns the raw public key held by the "x" member. A missing "kty" is read as OKP.
func (j *JWK) PublicKeyBytes() ([]byte, error) {
	if j.Crv == "" {
		return nil, fmt.Errorf("%w: missing crv", ErrInvalidJWK)
	}

	if j.X == "" {
		return nil, fmt.Errorf("%w: missing x", ErrInvalidJWK)
	}

	kty := j.Kty
	if kty == "" {
		kty = OKPKty
	}

	data, err := json.Marshal(&JWK{Kty: kty, Crv: j.Crv, X: j.X})
	if err != nil {
		return nil, fmt.Errorf("marshal JWK: %w", err)
	}

	key, err := jwxjwk.ParseKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJWK, err.Error())
	}

	okp, ok := key.(jwxjwk.OKPPublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported kty %s", ErrInvalidJWK, kty)
	}

	switch okp.Crv() {
	case jwa.Ed25519, jwa.X25519:
	default:
		return nil, fmt.Errorf("%w: unsupported crv %s", ErrInvalidJWK, j.Crv)
	}

	return okp.X(), nil
}
