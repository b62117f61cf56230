/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

const schemaPeerDIDDoc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id"],
  "properties": {
    "id": {
      "type": "string"
    },
    "authentication": {
      "type": "array",
      "items": {
        "$ref": "#/definitions/verificationMethod"
      }
    },
    "keyAgreement": {
      "type": "array",
      "items": {
        "$ref": "#/definitions/verificationMethod"
      }
    },
    "service": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "id": {
            "type": "string"
          },
          "type": {
            "type": "string"
          }
        }
      }
    }
  },
  "definitions": {
    "verificationMethod": {
      "type": "object",
      "required": ["id", "type", "controller"],
      "properties": {
        "id": {
          "type": "string"
        },
        "type": {
          "type": "string"
        },
        "controller": {
          "type": "string"
        },
        "publicKeyBase58": {
          "type": "string"
        },
        "publicKeyMultibase": {
          "type": "string"
        },
        "publicKeyJwk": {
          "type": "object",
          "properties": {
            "kty": {
              "type": "string"
            },
            "crv": {
              "type": "string"
            },
            "x": {
              "type": "string"
            }
          }
        }
      }
    }
  }
}`
