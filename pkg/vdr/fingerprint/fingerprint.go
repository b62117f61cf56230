/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fingerprint

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/btcsuite/btcutil/base58"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

const (
	// X25519PubKeyMultiCodec for Curve25519 public key in multicodec table.
	// source: https://github.com/multiformats/multicodec/blob/master/table.csv.
	X25519PubKeyMultiCodec = 0xec
	// ED25519PubKeyMultiCodec for Ed25519 public key in multicodec table.
	ED25519PubKeyMultiCodec = 0xed

	// PublicKeySize is the raw length of both X25519 and Ed25519 public keys.
	PublicKeySize = 32

	maxMulticodecBytes = 9
)

var (
	// ErrInvalidBase58 is returned when a string carries characters outside the base58 alphabet.
	ErrInvalidBase58 = errors.New("invalid base58 encoding")
	// ErrUnsupportedTransform is returned for a multibase string not using the base58btc ('z') transform.
	ErrUnsupportedTransform = errors.New("unsupported multibase transform")
	// ErrUnsupportedCodec is returned when the multicodec prefix is neither X25519 nor Ed25519.
	ErrUnsupportedCodec = errors.New("prefix not supported")
	// ErrInvalidKeyLength is returned when a raw public key is not PublicKeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

var base58Regexp = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]*$`)

// Base58Encode encodes data with the bitcoin base58 alphabet.
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode decodes a bitcoin base58 string. Unlike base58.Decode it reports invalid characters
// instead of returning an empty slice.
func Base58Decode(s string) ([]byte, error) {
	if !base58Regexp.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBase58, s)
	}

	return base58.Decode(s), nil
}

// MultibaseEncode encodes data as a base58btc multibase string ("z" + base58).
func MultibaseEncode(data []byte) string {
	// base58btc is always registered in go-multibase.
	s, _ := multibase.Encode(multibase.Base58BTC, data) //nolint:errcheck

	return s
}

// MultibaseDecode decodes a base58btc multibase string. It returns the encoded value without its transform
// character together with the decoded bytes.
func MultibaseDecode(s string) (string, []byte, error) {
	if s == "" {
		return "", nil, fmt.Errorf("%w: no transform part in multibase encoding", ErrUnsupportedTransform)
	}

	if s[0] != byte(multibase.Base58BTC) {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedTransform, s[0])
	}

	encnumbasis := s[1:]

	if !base58Regexp.MatchString(encnumbasis) {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidBase58, encnumbasis)
	}

	enc, data, err := multibase.Decode(s)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidBase58, err.Error())
	}

	if enc != multibase.Base58BTC {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedTransform, s[0])
	}

	return encnumbasis, data, nil
}

// MulticodecEncode prefixes value with the varint encoded multicodec code.
func MulticodecEncode(code uint64, value []byte) []byte {
	prefix := varint.ToUvarint(code)

	buf := make([]byte, len(prefix)+len(value))
	copy(buf, prefix)
	copy(buf[len(prefix):], value)

	return buf
}

// MulticodecDecode reads the varint multicodec prefix of data. Only the X25519 and Ed25519 codes are accepted.
func MulticodecDecode(data []byte) (uint64, []byte, error) {
	code, br, err := varint.FromUvarint(data)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, err.Error())
	}

	if br > maxMulticodecBytes {
		return 0, nil, fmt.Errorf("%w: code exceeds maximum size", ErrUnsupportedCodec)
	}

	switch code {
	case X25519PubKeyMultiCodec, ED25519PubKeyMultiCodec:
		return code, data[br:], nil
	default:
		return 0, nil, fmt.Errorf("%w: 0x%x", ErrUnsupportedCodec, code)
	}
}

// ValidateRawKeyLength checks that key has the size of an X25519 or Ed25519 public key.
func ValidateRawKeyLength(key []byte) error {
	if len(key) != PublicKeySize {
		return fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}

	return nil
}

// KeyFingerprint generates a multicodec fingerprint for pubKeyValue (raw key []byte), i.e.
// MULTIBASE(base58-btc, MULTICODEC(code, raw-public-key-bytes)).
func KeyFingerprint(code uint64, pubKeyValue []byte) string {
	return MultibaseEncode(MulticodecEncode(code, pubKeyValue))
}

// PubKeyFromFingerprint extracts the raw public key and its multicodec code from a fingerprint.
func PubKeyFromFingerprint(fingerprint string) ([]byte, uint64, error) {
	_, mc, err := MultibaseDecode(fingerprint)
	if err != nil {
		return nil, 0, err
	}

	code, pubKey, err := MulticodecDecode(mc)
	if err != nil {
		return nil, 0, err
	}

	if err = ValidateRawKeyLength(pubKey); err != nil {
		return nil, 0, err
	}

	return pubKey, code, nil
}
