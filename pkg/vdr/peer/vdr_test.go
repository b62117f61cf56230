/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
	"github.com/sicpa-dlab/peer-did-go/pkg/peerdid"
	vdrapi "github.com/sicpa-dlab/peer-did-go/pkg/vdr/api"
)

var _ vdrapi.VDR = (*VDR)(nil) // verify interface compliance

const (
	edKeyBase58    = "ByHnpUCFb1vAfh9CFZ8ZkmUZguURW8nSw889hy6rD8L7"
	edKeyMultibase = "z6MkqRYqQiSgvZQdnBytw86Qbs2ZWUkGv22od935YF4s8M7V"
	xKeyBase58     = "JhNWeSVLMYccCk7iopQW4guaSJTojqpMEELgSLhKwRr"
	xKeyMultibase  = "z6LSbysY2xFMRpGMhb7tFTLMpeuPRaqaWM1yECx2AtzE3KCc"

	peerDIDNumalgo0 = "did:peer:0" + edKeyMultibase
	peerDIDNumalgo2 = "did:peer:2.E" + xKeyMultibase + ".V" + edKeyMultibase
)

func TestAccept(t *testing.T) {
	t.Run("peer method", func(t *testing.T) {
		v := New()
		require.NotNil(t, v)

		require.True(t, v.Accept("peer"))
	})

	t.Run("other method", func(t *testing.T) {
		v := New()
		require.NotNil(t, v)

		require.False(t, v.Accept("key"))
	})
}

func TestUpdateAndDeactivate(t *testing.T) {
	v := New()

	err := v.Update(&did.DIDDoc{ID: peerDIDNumalgo0})
	require.True(t, errors.Is(err, vdrapi.ErrNotSupported))

	err = v.Deactivate(peerDIDNumalgo0)
	require.ErrorIs(t, err, vdrapi.ErrNotSupported)

	require.NoError(t, v.Close())
}

func TestRead(t *testing.T) {
	t.Run("default format", func(t *testing.T) {
		docResolution, err := New().Read(peerDIDNumalgo0)
		require.NoError(t, err)
		require.Equal(t, peerDIDNumalgo0, docResolution.DIDDocument.ID)
		require.Equal(t, did.FormatMultibase, docResolution.DIDDocument.Authentication[0].Material.Format)
	})

	t.Run("configured default format", func(t *testing.T) {
		docResolution, err := New(WithDefaultFormat(did.FormatBase58)).Read(peerDIDNumalgo2)
		require.NoError(t, err)
		require.Equal(t, xKeyBase58, docResolution.DIDDocument.KeyAgreement[0].Material.Value)
		require.Equal(t, edKeyBase58, docResolution.DIDDocument.Authentication[0].Material.Value)
	})

	t.Run("format option", func(t *testing.T) {
		v := New()

		docResolution, err := v.Read(peerDIDNumalgo2, vdrapi.WithOption(vdrapi.FormatOpt, did.FormatJWK))
		require.NoError(t, err)
		require.Equal(t, did.JSONWebKey2020Agreement, docResolution.DIDDocument.KeyAgreement[0].Material.Type)

		docResolution, err = v.Read(peerDIDNumalgo2, vdrapi.WithOption(vdrapi.FormatOpt, "Base58"))
		require.NoError(t, err)
		require.Equal(t, did.X25519KeyAgreementKey2019, docResolution.DIDDocument.KeyAgreement[0].Material.Type)
	})

	t.Run("invalid format option", func(t *testing.T) {
		_, err := New().Read(peerDIDNumalgo0, vdrapi.WithOption(vdrapi.FormatOpt, "hex"))
		require.EqualError(t, err, "peer vdr Read: unsupported verification material format: hex")

		_, err = New().Read(peerDIDNumalgo0, vdrapi.WithOption(vdrapi.FormatOpt, 1))
		require.EqualError(t, err, "peer vdr Read: format option has unsupported type int")
	})

	t.Run("malformed peer DID", func(t *testing.T) {
		_, err := New().Read("did:peer:1" + edKeyMultibase)

		var malformed *peerdid.MalformedPeerDIDError
		require.ErrorAs(t, err, &malformed)
	})
}
