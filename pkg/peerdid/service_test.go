/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
)

//nolint:lll
const (
	encodedMinimalService  = ".SeyJ0IjoiZG0iLCJzIjoiaHR0cHM6Ly9leGFtcGxlLmNvbS9lbmRwb2ludCJ9"
	encodedEndpointObject  = ".SeyJ0IjoiZG0iLCJzIjp7InVyaSI6Imh0dHA6Ly9leGFtcGxlLmNvbS9kaWRjb21tIiwiYSI6WyJkaWRjb21tL3YyIl0sInIiOlsiZGlkOmV4YW1wbGU6MTIzNDU2Nzg5YWJjZGVmZ2hpI2tleS0xIl19fQ"
	encodedEndpointObject2 = ".SeyJ0IjoiZG0iLCJzIjp7InVyaSI6Imh0dHA6Ly9leGFtcGxlLmNvbS9hbm90aGVyLWRpZGNvbW0iLCJhIjpbImRpZGNvbW0vdjIiXSwiciI6WyJkaWQ6ZXhhbXBsZToxMjM0NTY3ODlhYmNkZWZnaGkja2V5LTIiXX19"
	encodedLegacyArray     = ".SW3sidCI6ImRtIiwicyI6Imh0dHBzOi8vZXhhbXBsZS5jb20vZW5kcG9pbnQiLCJyIjpbImRpZDpleGFtcGxlOnNvbWVtZWRpYXRvciNzb21la2V5Il0sImEiOlsiZGlkY29tbS92MiIsImRpZGNvbW0vYWlwMjtlbnY9cmZjNTg3Il19LHsidCI6ImRtIiwicyI6Imh0dHBzOi8vZXhhbXBsZS5jb20vZW5kcG9pbnQyIiwiciI6WyJkaWQ6ZXhhbXBsZTpzb21lbWVkaWF0b3Ijc29tZWtleTIiXX1d"
	encodedOtherService    = ".SeyJ0IjoiTGlua2VkRG9tYWlucyIsInMiOiJodHRwczovL2Jhci5leGFtcGxlLmNvbSJ9"

	endpointObjectService = `{
		"type": "DIDCommMessaging",
		"serviceEndpoint": {
			"uri": "http://example.com/didcomm",
			"accept": ["didcomm/v2"],
			"routingKeys": ["did:example:123456789abcdefghi#key-1"]
		}
	}`

	endpointObjectService2 = `{
		"type": "DIDCommMessaging",
		"serviceEndpoint": {
			"uri": "http://example.com/another-didcomm",
			"accept": ["didcomm/v2"],
			"routingKeys": ["did:example:123456789abcdefghi#key-2"]
		}
	}`

	legacyServices = `[
		{
			"type": "DIDCommMessaging",
			"serviceEndpoint": "https://example.com/endpoint",
			"routingKeys": ["did:example:somemediator#somekey"],
			"accept": ["didcomm/v2", "didcomm/aip2;env=rfc587"]
		},
		{
			"type": "DIDCommMessaging",
			"serviceEndpoint": "https://example.com/endpoint2",
			"routingKeys": ["did:example:somemediator#somekey2"]
		}
	]`
)

func TestEncodeService(t *testing.T) {
	tests := []struct {
		name    string
		service string
		encoded string
	}{
		{
			name:    "legacy endpoint with all fields",
			service: service,
			encoded: encodedService,
		},
		{
			name:    "minimal",
			service: `{"type": "DIDCommMessaging", "serviceEndpoint": "https://example.com/endpoint"}`,
			encoded: encodedMinimalService,
		},
		{
			name:    "endpoint object",
			service: endpointObjectService,
			encoded: encodedEndpointObject,
		},
		{
			name:    "array with endpoint objects encodes one segment per service",
			service: "[" + endpointObjectService + "," + endpointObjectService2 + "]",
			encoded: encodedEndpointObject + encodedEndpointObject2,
		},
		{
			name:    "legacy array encodes a single segment",
			service: legacyServices,
			encoded: encodedLegacyArray,
		},
		{
			name:    "other service type",
			service: `{"type": "LinkedDomains", "serviceEndpoint": "https://bar.example.com"}`,
			encoded: encodedOtherService,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := encodeService(tc.service)
			require.NoError(t, err)
			require.Equal(t, tc.encoded, encoded)
		})
	}
}

func TestEncodeServiceKeepsStrings(t *testing.T) {
	encoded, err := encodeService(`{"type": "DIDCommMessaging", "serviceEndpoint": "https://example.com/a b?x=1&y=<2>",
		"note": "type serviceEndpoint DIDCommMessaging", "weight": 1.50}`)
	require.NoError(t, err)

	services, err := decodeService([]string{strings.TrimPrefix(encoded, ".S")})
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "https://example.com/a b?x=1&y=<2>", services[0].(*did.DIDCommService).ServiceEndpoint.URI)
}

func TestEncodeServiceTypeArray(t *testing.T) {
	encoded, err := encodeService(`{"type": ["DIDCommMessaging", "X"], "serviceEndpoint": "https://example.com"}`)
	require.NoError(t, err)

	data, err := decodeServiceSegment(strings.TrimPrefix(encoded, ".S"))
	require.NoError(t, err)
	require.Equal(t, `{"t":["DIDCommMessaging","X"],"s":"https://example.com"}`, string(data))

	services, err := decodeService([]string{strings.TrimPrefix(encoded, ".S")})
	require.NoError(t, err)
	require.Len(t, services, 1)

	other, ok := services[0].(*did.OtherService)
	require.True(t, ok)
	require.Equal(t, []interface{}{"DIDCommMessaging", "X"}, other.Data["type"])
}

func TestEncodeServiceErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"not a JSON",
		`{"type": "DIDCommMessaging"`,
		`"DIDCommMessaging"`,
		`[]`,
		`[1, 2]`,
	} {
		_, err := encodeService(s)

		var encErr *EncodingError
		require.ErrorAs(t, err, &encErr, s)
		require.Contains(t, err.Error(), "invalid JSON")
	}
}

func TestDecodeService(t *testing.T) {
	t.Run("no segments", func(t *testing.T) {
		services, err := decodeService(nil)
		require.NoError(t, err)
		require.Nil(t, services)
	})

	t.Run("legacy endpoint", func(t *testing.T) {
		services, err := decodeService([]string{strings.TrimPrefix(encodedService, ".S")})
		require.NoError(t, err)
		require.Equal(t, []did.Service{&did.DIDCommService{
			ID: "#service",
			ServiceEndpoint: did.DIDCommEndpoint{
				URI:         "https://example.com/endpoint",
				RoutingKeys: []string{"did:example:somemediator#somekey"},
				Accept:      []string{"didcomm/v2", "didcomm/aip2;env=rfc587"},
			},
		}}, services)
	})

	t.Run("padded segment", func(t *testing.T) {
		services, err := decodeService([]string{strings.TrimPrefix(encodedMinimalService, ".S") + "="})
		require.NoError(t, err)
		require.Equal(t, "https://example.com/endpoint", services[0].(*did.DIDCommService).ServiceEndpoint.URI)
	})

	t.Run("legacy array in a single segment", func(t *testing.T) {
		services, err := decodeService([]string{strings.TrimPrefix(encodedLegacyArray, ".S")})
		require.NoError(t, err)
		require.Len(t, services, 2)
		require.Equal(t, "#service", services[0].ServiceID())
		require.Equal(t, "#service-1", services[1].ServiceID())
		require.Equal(t, did.DIDCommEndpoint{
			URI:         "https://example.com/endpoint2",
			RoutingKeys: []string{"did:example:somemediator#somekey2"},
		}, services[1].(*did.DIDCommService).ServiceEndpoint)
	})

	t.Run("one segment per service", func(t *testing.T) {
		services, err := decodeService([]string{
			strings.TrimPrefix(encodedEndpointObject, ".S"),
			strings.TrimPrefix(encodedEndpointObject2, ".S"),
		})
		require.NoError(t, err)
		require.Equal(t, []did.Service{
			&did.DIDCommService{ID: "#service", ServiceEndpoint: did.DIDCommEndpoint{
				URI:         "http://example.com/didcomm",
				RoutingKeys: []string{"did:example:123456789abcdefghi#key-1"},
				Accept:      []string{"didcomm/v2"},
			}},
			&did.DIDCommService{ID: "#service-1", ServiceEndpoint: did.DIDCommEndpoint{
				URI:         "http://example.com/another-didcomm",
				RoutingKeys: []string{"did:example:123456789abcdefghi#key-2"},
				Accept:      []string{"didcomm/v2"},
			}},
		}, services)
	})

	t.Run("other service kept verbatim", func(t *testing.T) {
		services, err := decodeService([]string{strings.TrimPrefix(encodedOtherService, ".S")})
		require.NoError(t, err)
		require.Equal(t, []did.Service{&did.OtherService{Data: map[string]interface{}{
			"id":              "#service",
			"type":            "LinkedDomains",
			"serviceEndpoint": "https://bar.example.com",
		}}}, services)
	})
}

func TestServiceIdempotence(t *testing.T) {
	for _, s := range []string{service, endpointObjectService, legacyServices} {
		encoded, err := encodeService(s)
		require.NoError(t, err)

		services, err := decodeService(splitServiceSegments(encoded))
		require.NoError(t, err)

		data, err := did.ServiceJSON(services)
		require.NoError(t, err)

		reencoded, err := encodeService(string(data))
		require.NoError(t, err)

		decoded, err := decodeService(splitServiceSegments(reencoded))
		require.NoError(t, err)
		require.Equal(t, services, decoded)
	}
}

func splitServiceSegments(encoded string) []string {
	var segments []string

	for _, segment := range strings.Split(encoded, ".")[1:] {
		segments = append(segments, strings.TrimPrefix(segment, "S"))
	}

	return segments
}

func TestDecodeServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		err      string
	}{
		{
			name:     "truncated JSON",
			segments: []string{"eyJ0IjoiZG0iLCJzIjo"},
			err:      "invalid JSON",
		},
		{
			name:     "not base64url",
			segments: []string{"eyJ0Ijoi+ZG0i"},
			err:      "invalid service encoding",
		},
		{
			name:     "empty segment",
			segments: []string{""},
			err:      "invalid JSON",
		},
		{
			// {"type":"dm","s":"https://example.com/endpoint"}
			name:     "unabbreviated type",
			segments: []string{"eyJ0eXBlIjoiZG0iLCJzIjoiaHR0cHM6Ly9leGFtcGxlLmNvbS9lbmRwb2ludCJ9"},
			err:      "service doesn't contain a type",
		},
		{
			// {"t":"dm"}
			name:     "DIDComm service without endpoint",
			segments: []string{"eyJ0IjoiZG0ifQ"},
			err:      "service doesn't contain a valid serviceEndpoint",
		},
		{
			name: "array in one of several segments",
			segments: []string{
				strings.TrimPrefix(encodedMinimalService, ".S"),
				strings.TrimPrefix(encodedLegacyArray, ".S"),
			},
			err: "invalid JSON",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeService(tc.segments)

			var encErr *EncodingError
			require.ErrorAs(t, err, &encErr)
			require.Contains(t, err.Error(), tc.err)
		})
	}
}
