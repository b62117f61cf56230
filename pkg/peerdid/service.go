/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package peerdid

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/did"
)

const (
	serviceType        = "type"
	serviceEndpoint    = "serviceEndpoint"
	serviceRoutingKeys = "routingKeys"
	serviceAccept      = "accept"
	serviceID          = "id"

	didCommMessagingAbbreviation = "dm"
)

//nolint:gochecknoglobals
var (
	serviceAbbreviations = map[string]string{
		serviceType:        "t",
		serviceEndpoint:    "s",
		serviceRoutingKeys: "r",
		serviceAccept:      "a",
	}

	serviceExpansions = map[string]string{
		"t": serviceType,
		"s": serviceEndpoint,
		"r": serviceRoutingKeys,
		"a": serviceAccept,
	}
)

// encodeService encodes a service JSON object, or an array of them, into ".S" segments. An array whose
// first service has an object serviceEndpoint is encoded one segment per service, any other array as a
// single segment.
func encodeService(service string) (string, error) {
	data := []byte(strings.TrimSpace(service))

	if !json.Valid(data) || !bytes.ContainsRune(data, '{') {
		return "", &EncodingError{Msg: "invalid JSON: " + service}
	}

	switch data[0] {
	case '{':
		return encodeServiceSegment(data)
	case '[':
		var services []json.RawMessage
		if err := json.Unmarshal(data, &services); err != nil {
			return "", &EncodingError{Msg: "invalid JSON: " + service, Err: err}
		}

		if !hasEndpointObject(services[0]) {
			return encodeServiceSegment(data)
		}

		var sb strings.Builder

		for _, s := range services {
			segment, err := encodeServiceSegment(s)
			if err != nil {
				return "", err
			}

			sb.WriteString(segment)
		}

		return sb.String(), nil
	default:
		return "", &EncodingError{Msg: "invalid JSON: " + service}
	}
}

func hasEndpointObject(service json.RawMessage) bool {
	var s struct {
		ServiceEndpoint json.RawMessage `json:"serviceEndpoint"`
	}

	if err := json.Unmarshal(service, &s); err != nil {
		return false
	}

	return bytes.HasPrefix(bytes.TrimSpace(s.ServiceEndpoint), []byte("{"))
}

func encodeServiceSegment(service []byte) (string, error) {
	abbreviated, err := abbreviateService(service)
	if err != nil {
		return "", &EncodingError{Msg: "invalid JSON", Err: err}
	}

	return segmentDelimiter + string(transformService) + base64.RawURLEncoding.EncodeToString(abbreviated), nil
}

// abbreviateService compacts service JSON and shortens its well-known member names. Member order is kept
// so that equal input always produces the same DID.
func abbreviateService(service []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(service))
	dec.UseNumber()

	buf := &bytes.Buffer{}

	if err := abbreviateValue(dec, buf, ""); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func abbreviateValue(dec *json.Decoder, buf *bytes.Buffer, member string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return abbreviateObject(dec, buf)
		}

		return abbreviateArray(dec, buf)
	case string:
		if member == serviceType && v == did.DIDCommMessagingType {
			v = didCommMessagingAbbreviation
		}

		return writeJSON(buf, v)
	default:
		return writeJSON(buf, v)
	}
}

func abbreviateObject(dec *json.Decoder, buf *bytes.Buffer) error {
	buf.WriteByte('{')

	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}

		tok, err := dec.Token()
		if err != nil {
			return err
		}

		member, _ := tok.(string)

		name := member
		if short, ok := serviceAbbreviations[member]; ok {
			name = short
		}

		if err = writeJSON(buf, name); err != nil {
			return err
		}

		buf.WriteByte(':')

		if err = abbreviateValue(dec, buf, member); err != nil {
			return err
		}
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}

	buf.WriteByte('}')

	return nil
}

func abbreviateArray(dec *json.Decoder, buf *bytes.Buffer) error {
	buf.WriteByte('[')

	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}

		// only a scalar type member is abbreviated
		if err := abbreviateValue(dec, buf, ""); err != nil {
			return err
		}
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return err
	}

	buf.WriteByte(']')

	return nil
}

func writeJSON(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}

// decodeService decodes the ".S" segments (without the leading ".S") of a peer DID. A single segment
// may hold one service or an array of them, several segments hold one service each.
func decodeService(segments []string) ([]did.Service, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	var raw []map[string]interface{}

	if len(segments) == 1 {
		data, err := decodeServiceSegment(segments[0])
		if err != nil {
			return nil, err
		}

		if raw, err = parseServices(data); err != nil {
			return nil, err
		}
	} else {
		for _, segment := range segments {
			data, err := decodeServiceSegment(segment)
			if err != nil {
				return nil, err
			}

			var s map[string]interface{}
			if err = json.Unmarshal(data, &s); err != nil || s == nil {
				return nil, &EncodingError{Msg: "invalid JSON " + string(data), Err: err}
			}

			raw = append(raw, s)
		}
	}

	services := make([]did.Service, 0, len(raw))

	for i, s := range raw {
		if _, ok := s[serviceAbbreviations[serviceType]]; !ok {
			return nil, &EncodingError{Msg: "service doesn't contain a type"}
		}

		expanded, _ := expandService(s).(map[string]interface{})
		expanded[serviceID] = serviceIDAt(i)

		service, err := did.ServiceFromMap(expanded)
		if err != nil {
			return nil, &EncodingError{Msg: "invalid service", Err: err}
		}

		services = append(services, service)
	}

	return services, nil
}

func decodeServiceSegment(segment string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
	if err != nil {
		return nil, &EncodingError{Msg: "invalid service encoding " + segment, Err: err}
	}

	return data, nil
}

func parseServices(data []byte) ([]map[string]interface{}, error) {
	var services []map[string]interface{}
	if err := json.Unmarshal(data, &services); err == nil {
		if services == nil || slices.ContainsFunc(services, isNullService) {
			return nil, &EncodingError{Msg: "invalid JSON " + string(data)}
		}

		return services, nil
	}

	var service map[string]interface{}
	if err := json.Unmarshal(data, &service); err != nil || service == nil {
		return nil, &EncodingError{Msg: "invalid JSON " + string(data), Err: err}
	}

	return []map[string]interface{}{service}, nil
}

func isNullService(s map[string]interface{}) bool {
	return s == nil
}

func expandService(v interface{}) interface{} {
	switch e := v.(type) {
	case map[string]interface{}:
		expanded := make(map[string]interface{}, len(e))

		for k, value := range e {
			if long, ok := serviceExpansions[k]; ok {
				k = long
			}

			if s, ok := value.(string); ok && k == serviceType && s == didCommMessagingAbbreviation {
				value = did.DIDCommMessagingType
			}

			expanded[k] = expandService(value)
		}

		return expanded
	case []interface{}:
		expanded := make([]interface{}, 0, len(e))
		for _, value := range e {
			expanded = append(expanded, expandService(value))
		}

		return expanded
	default:
		return v
	}
}

func serviceIDAt(i int) string {
	if i == 0 {
		return "#service"
	}

	return fmt.Sprintf("#service-%d", i)
}
