/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdid

// EncodingError reports malformed key or service material. Creation and resolution never return it
// directly, it is the cause wrapped by MalformedPeerDIDError and ArgumentError.
type EncodingError struct {
	Msg string
	Err error
}

func (e *EncodingError) Error() string {
	return withCause(e.Msg, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// MalformedPeerDIDError is returned when a peer DID cannot be resolved.
type MalformedPeerDIDError struct {
	Msg string
	Err error
}

func (e *MalformedPeerDIDError) Error() string {
	return withCause("Invalid peer DID provided. "+e.Msg, e.Err)
}

func (e *MalformedPeerDIDError) Unwrap() error {
	return e.Err
}

// ArgumentError is returned when a peer DID cannot be created from the given keys or service.
type ArgumentError struct {
	Msg string
	Err error
}

func (e *ArgumentError) Error() string {
	return withCause(e.Msg, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func withCause(msg string, err error) string {
	if err == nil {
		return msg
	}

	return msg + ": " + err.Error()
}
