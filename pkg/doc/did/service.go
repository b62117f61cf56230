/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// DIDCommMessagingType is the DIDComm v2 service type.
const DIDCommMessagingType = "DIDCommMessaging"

// Service is either a *DIDCommService or an *OtherService.
type Service interface {
	ServiceID() string
	ServiceType() string

	rawService() interface{}
}

// DIDCommEndpoint is the object form of a DIDCommMessaging service endpoint.
type DIDCommEndpoint struct {
	URI         string   `json:"uri,omitempty"`
	RoutingKeys []string `json:"routingKeys,omitempty"`
	Accept      []string `json:"accept,omitempty"`
}

// DIDCommService is a DIDCommMessaging service.
type DIDCommService struct {
	ID              string
	ServiceEndpoint DIDCommEndpoint
}

// ServiceID returns the service id.
func (s *DIDCommService) ServiceID() string {
	return s.ID
}

// ServiceType always returns DIDCommMessaging.
func (s *DIDCommService) ServiceType() string {
	return DIDCommMessagingType
}

type didCommServiceJSON struct {
	ID              string          `json:"id,omitempty"`
	Type            string          `json:"type"`
	ServiceEndpoint DIDCommEndpoint `json:"serviceEndpoint"`
}

func (s *DIDCommService) rawService() interface{} {
	return &didCommServiceJSON{ID: s.ID, Type: DIDCommMessagingType, ServiceEndpoint: s.ServiceEndpoint}
}

// OtherService is a service of any other type, kept as its decoded JSON object.
type OtherService struct {
	Data map[string]interface{}
}

// ServiceID returns the "id" member, if any.
func (s *OtherService) ServiceID() string {
	return stringEntry(s.Data[jsonldID])
}

// ServiceType returns the "type" member, if any.
func (s *OtherService) ServiceType() string {
	return stringEntry(s.Data[jsonldType])
}

func (s *OtherService) rawService() interface{} {
	return s.Data
}

// ServiceFromMap builds a service from its JSON object. A DIDCommMessaging endpoint is accepted both as a
// bare URI with routingKeys and accept next to it and as an {uri, routingKeys, accept} object.
func ServiceFromMap(raw map[string]interface{}) (Service, error) {
	if stringEntry(raw[jsonldType]) != DIDCommMessagingType {
		return &OtherService{Data: raw}, nil
	}

	id := stringEntry(raw[jsonldID])
	if id == "" {
		return nil, errors.New("service doesn't contain an id")
	}

	endpoint, err := populateEndpoint(raw)
	if err != nil {
		return nil, fmt.Errorf("service %s: %w", id, err)
	}

	return &DIDCommService{ID: id, ServiceEndpoint: *endpoint}, nil
}

func populateEndpoint(raw map[string]interface{}) (*DIDCommEndpoint, error) {
	var (
		holder = raw
		uri    string
	)

	switch e := raw[jsonldServicePoint].(type) {
	case string:
		uri = e
	case map[string]interface{}:
		holder = e
		uri = stringEntry(e[jsonldURI])
	default:
		return nil, errors.New("service doesn't contain a valid serviceEndpoint")
	}

	routingKeys, err := stringArray(holder[jsonldRoutingKeys])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jsonldRoutingKeys, err)
	}

	accept, err := stringArray(holder[jsonldAccept])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jsonldAccept, err)
	}

	return &DIDCommEndpoint{URI: uri, RoutingKeys: routingKeys, Accept: accept}, nil
}

func populateRawServices(services []Service) []interface{} {
	raw := make([]interface{}, 0, len(services))
	for _, s := range services {
		raw = append(raw, s.rawService())
	}

	return raw
}

// ServiceJSON renders services without their ids, the form accepted by peer DID creation.
func ServiceJSON(services []Service) ([]byte, error) {
	raw := make([]interface{}, 0, len(services))

	for _, s := range services {
		switch svc := s.(type) {
		case *DIDCommService:
			raw = append(raw, &didCommServiceJSON{Type: DIDCommMessagingType, ServiceEndpoint: svc.ServiceEndpoint})
		case *OtherService:
			data := make(map[string]interface{}, len(svc.Data))

			for k, v := range svc.Data {
				if k != jsonldID {
					data[k] = v
				}
			}

			raw = append(raw, data)
		}
	}

	return marshalIndent(raw)
}

// LookupService returns the first service of the given type.
func LookupService(doc *DIDDoc, serviceType string) (Service, bool) {
	i := slices.IndexFunc(doc.Service, func(s Service) bool {
		return s.ServiceType() == serviceType
	})
	if i < 0 {
		return nil, false
	}

	return doc.Service[i], true
}

// LookupVerificationMethod finds an authentication or key agreement method by id.
func LookupVerificationMethod(doc *DIDDoc, id string) (*VerificationMethod, bool) {
	for _, methods := range [][]VerificationMethod{doc.Authentication, doc.KeyAgreement} {
		i := slices.IndexFunc(methods, func(vm VerificationMethod) bool {
			return vm.ID == id
		})
		if i >= 0 {
			return &methods[i], true
		}
	}

	return nil, false
}
