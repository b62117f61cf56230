/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sicpa-dlab/peer-did-go/pkg/doc/jose/jwk"
)

const (
	jsonldID             = "id"
	jsonldType           = "type"
	jsonldController     = "controller"
	jsonldServicePoint   = "serviceEndpoint"
	jsonldRoutingKeys    = "routingKeys"
	jsonldAccept         = "accept"
	jsonldURI            = "uri"
	jsonldAuthentication = "authentication"
	jsonldKeyAgreement   = "keyAgreement"

	jwkCrv = "crv"
	jwkKty = "kty"
	jwkX   = "x"
)

var schemaLoader = gojsonschema.NewStringLoader(schemaPeerDIDDoc) //nolint:gochecknoglobals

// MalformedPeerDIDDocError is returned when a peer DID Doc JSON cannot be parsed.
type MalformedPeerDIDDocError struct {
	Msg string
	Err error
}

func (e *MalformedPeerDIDDocError) Error() string {
	msg := "Invalid peer DID Doc"
	if e.Msg != "" {
		msg += ". " + e.Msg
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedPeerDIDDocError) Unwrap() error {
	return e.Err
}

func malformedDoc(msg string, err error) error {
	return &MalformedPeerDIDDocError{Msg: msg, Err: err}
}

// VerificationMaterial is a public key together with the verification method type it is published as.
// Value holds the base58 or multibase string, JWK the key of JsonWebKey2020 material.
type VerificationMaterial struct {
	Format VerificationMaterialFormat
	Type   VerificationMethodType
	Value  string
	JWK    *jwk.JWK
}

// NewVerificationMaterial creates base58 or multibase material, the format follows from t.
func NewVerificationMaterial(t VerificationMethodType, value string) *VerificationMaterial {
	f, _ := FormatOf(t)

	return &VerificationMaterial{Format: f, Type: t, Value: value}
}

// NewJWKVerificationMaterial creates JsonWebKey2020 material.
func NewJWKVerificationMaterial(t VerificationMethodType, key *jwk.JWK) *VerificationMaterial {
	f, _ := FormatOf(t)

	return &VerificationMaterial{Format: f, Type: t, JWK: key}
}

// ParseVerificationMaterial builds material from a verification method type name and a key value. The
// value of JsonWebKey2020 is the JWK JSON object, any other type takes the base58 or multibase string.
func ParseVerificationMaterial(typeName, value string) (*VerificationMaterial, error) {
	if typeName != JSONWebKey2020Agreement.name {
		t, ok := parseVerificationMethodType(typeName, "")
		if !ok {
			return nil, fmt.Errorf("unknown verification method type %q", typeName)
		}

		return NewVerificationMaterial(t, value), nil
	}

	key := &jwk.JWK{}
	if err := json.Unmarshal([]byte(value), key); err != nil {
		return nil, fmt.Errorf("invalid JWK: %w", err)
	}

	t, _ := parseVerificationMethodType(typeName, key.Crv)

	return NewJWKVerificationMaterial(t, key), nil
}

// Validate checks that format and type agree and that the value matching the format is set.
func (m *VerificationMaterial) Validate() error {
	f, ok := FormatOf(m.Type)
	if !ok {
		return fmt.Errorf("unknown verification method type %q", m.Type.name)
	}

	if f != m.Format {
		return fmt.Errorf("format %s does not match verification method type %s", m.Format, m.Type)
	}

	if f == FormatJWK {
		if m.JWK == nil {
			return errors.New("JWK value is missing")
		}

		return nil
	}

	if m.Value == "" {
		return errors.New("key value is missing")
	}

	return nil
}

// VerificationMethod is an authentication or key agreement entry of a DID Doc.
type VerificationMethod struct {
	ID         string
	Controller string
	Material   VerificationMaterial
}

// DIDDoc is a resolved peer DID Doc. Service is nil when the DID carries no service.
type DIDDoc struct {
	ID             string
	Authentication []VerificationMethod
	KeyAgreement   []VerificationMethod
	Service        []Service
}

// DocResolution did resolution.
type DocResolution struct {
	DIDDocument *DIDDoc
}

// AuthenticationKIDs returns the ids of the authentication methods in document order.
func (doc *DIDDoc) AuthenticationKIDs() []string {
	return methodIDs(doc.Authentication)
}

// AgreementKIDs returns the ids of the key agreement methods in document order.
func (doc *DIDDoc) AgreementKIDs() []string {
	return methodIDs(doc.KeyAgreement)
}

func methodIDs(methods []VerificationMethod) []string {
	ids := make([]string, 0, len(methods))
	for i := range methods {
		ids = append(ids, methods[i].ID)
	}

	return ids
}

type rawDoc struct {
	ID             string                   `json:"id,omitempty"`
	Authentication []map[string]interface{} `json:"authentication,omitempty"`
	KeyAgreement   []map[string]interface{} `json:"keyAgreement,omitempty"`
	Service        []map[string]interface{} `json:"service,omitempty"`
}

// docJSON fixes the member order of the JSON projection.
type docJSON struct {
	ID             string                    `json:"id"`
	Authentication []*verificationMethodJSON `json:"authentication"`
	KeyAgreement   []*verificationMethodJSON `json:"keyAgreement,omitempty"`
	Service        []interface{}             `json:"service,omitempty"`
}

type verificationMethodJSON struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Controller         string   `json:"controller"`
	PublicKeyBase58    string   `json:"publicKeyBase58,omitempty"`
	PublicKeyMultibase string   `json:"publicKeyMultibase,omitempty"`
	PublicKeyJwk       *jwk.JWK `json:"publicKeyJwk,omitempty"`
}

// JSONBytes converts document to indented JSON: id, authentication, then keyAgreement and service when present.
func (doc *DIDDoc) JSONBytes() ([]byte, error) {
	raw := &docJSON{
		ID:             doc.ID,
		Authentication: populateRawVerificationMethods(doc.Authentication),
		KeyAgreement:   populateRawVerificationMethods(doc.KeyAgreement),
	}

	if doc.Service != nil {
		raw.Service = populateRawServices(doc.Service)
	}

	return marshalIndent(raw)
}

func populateRawVerificationMethods(methods []VerificationMethod) []*verificationMethodJSON {
	raw := make([]*verificationMethodJSON, 0, len(methods))

	for i := range methods {
		m := &methods[i]
		rawVM := &verificationMethodJSON{
			ID:         m.ID,
			Type:       m.Material.Type.String(),
			Controller: m.Controller,
		}

		switch m.Material.Format {
		case FormatBase58:
			rawVM.PublicKeyBase58 = m.Material.Value
		case FormatMultibase:
			rawVM.PublicKeyMultibase = m.Material.Value
		case FormatJWK:
			rawVM.PublicKeyJwk = m.Material.JWK
		}

		raw = append(raw, rawVM)
	}

	return raw
}

func marshalIndent(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("JSON marshalling of did doc failed: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ParseDocument creates an instance of DIDDoc by reading a JSON document from bytes.
// All failures are reported as *MalformedPeerDIDDocError.
func ParseDocument(data []byte) (*DIDDoc, error) {
	raw := &rawDoc{}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, malformedDoc("JSON unmarshalling of did doc bytes failed", err)
	} else if raw == nil {
		return nil, malformedDoc("document payload is not provided", nil)
	}

	if err = validate(data); err != nil {
		return nil, malformedDoc("", err)
	}

	auth, err := populateVerificationMethods(raw.Authentication)
	if err != nil {
		return nil, malformedDoc("populate "+jsonldAuthentication+" failed", err)
	}

	agreement, err := populateVerificationMethods(raw.KeyAgreement)
	if err != nil {
		return nil, malformedDoc("populate "+jsonldKeyAgreement+" failed", err)
	}

	services, err := populateServices(raw.Service)
	if err != nil {
		return nil, malformedDoc("populate services failed", err)
	}

	return &DIDDoc{
		ID:             raw.ID,
		Authentication: auth,
		KeyAgreement:   agreement,
		Service:        services,
	}, nil
}

func validate(data []byte) error {
	documentLoader := gojsonschema.NewStringLoader(string(data))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation of DID doc failed: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}

		return fmt.Errorf("did document not valid: %s", strings.Join(errs, "; "))
	}

	return nil
}

func populateVerificationMethods(raw []map[string]interface{}) ([]VerificationMethod, error) {
	methods := make([]VerificationMethod, 0, len(raw))

	for _, rawVM := range raw {
		vm, err := populateVerificationMethod(rawVM)
		if err != nil {
			return nil, err
		}

		methods = append(methods, *vm)
	}

	return methods, nil
}

func populateVerificationMethod(raw map[string]interface{}) (*VerificationMethod, error) {
	id := stringEntry(raw[jsonldID])

	for _, key := range []string{jsonldID, jsonldController, jsonldType} {
		if stringEntry(raw[key]) == "" {
			return nil, fmt.Errorf("no '%s' field in method %s", key, id)
		}
	}

	jwkEntry := mapEntry(raw[string(PublicKeyJwk)])

	t, ok := parseVerificationMethodType(stringEntry(raw[jsonldType]), stringEntry(jwkEntry[jwkCrv]))
	if !ok {
		return nil, fmt.Errorf("unknown verification method type %s", stringEntry(raw[jsonldType]))
	}

	material := VerificationMaterial{Type: t, Format: verTypeToFormat[t]}
	field := formatToField[material.Format]

	switch material.Format {
	case FormatJWK:
		if jwkEntry == nil {
			return nil, fmt.Errorf("no '%s' field in method %s", field, id)
		}

		if stringEntry(jwkEntry[jwkCrv]) == "" {
			return nil, fmt.Errorf("no '%s' field in JWK of method %s", jwkCrv, id)
		}

		material.JWK = &jwk.JWK{
			Kty: stringEntry(jwkEntry[jwkKty]),
			Crv: stringEntry(jwkEntry[jwkCrv]),
			X:   stringEntry(jwkEntry[jwkX]),
		}
	default:
		material.Value = stringEntry(raw[string(field)])
		if material.Value == "" {
			return nil, fmt.Errorf("no '%s' field in method %s", field, id)
		}
	}

	return &VerificationMethod{
		ID:         id,
		Controller: stringEntry(raw[jsonldController]),
		Material:   material,
	}, nil
}

func populateServices(raw []map[string]interface{}) ([]Service, error) {
	if raw == nil {
		return nil, nil
	}

	services := make([]Service, 0, len(raw))

	for _, rawService := range raw {
		s, err := ServiceFromMap(rawService)
		if err != nil {
			return nil, err
		}

		services = append(services, s)
	}

	return services, nil
}

func stringEntry(entry interface{}) string {
	s, _ := entry.(string)

	return s
}

func stringArray(entry interface{}) ([]string, error) {
	if entry == nil {
		return nil, nil
	}

	entries, ok := entry.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of strings, got %T", entry)
	}

	result := make([]string, 0, len(entries))

	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("expected an array of strings, got element %T", e)
		}

		result = append(result, s)
	}

	return result, nil
}

func mapEntry(entry interface{}) map[string]interface{} {
	m, _ := entry.(map[string]interface{})

	return m
}
