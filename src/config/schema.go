// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// pinningSchema is the JSON Schema every pinning configuration document must
// satisfy before anchor-level validation runs. It pins the shape only;
// fingerprint format is enforced separately so the error messages stay exact.
const pinningSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "PinningConfiguration",
  "type": "object",
  "properties": {
    "defaultFingerprint": { "type": "string" },
    "defaultFingerprints": {
      "type": "array",
      "items": { "type": "string" }
    },
    "certsByDomain": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": { "type": "string" }
      }
    },
    "globalCerts": {
      "type": "array",
      "items": { "type": "string" }
    },
    "excludedDomains": {
      "type": "array",
      "items": { "type": "string" }
    }
  },
  "additionalProperties": false
}`

// validateSchema checks the raw configuration document against pinningSchema.
// Validation runs before unmarshaling into the typed struct so unknown keys
// are rejected instead of silently dropped; YAML documents are lifted to a
// generic value first so both formats are held to the identical shape.
func validateSchema(data []byte, format configFormat) error {
	var doc gojsonschema.JSONLoader
	switch format {
	case configFormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("config: failed to parse YAML config file: %w", err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
		doc = gojsonschema.NewGoLoader(raw)
	default:
		doc = gojsonschema.NewBytesLoader(data)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(pinningSchema), doc)
	if err != nil {
		return fmt.Errorf("config: schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("config: invalid pinning configuration: %s", strings.Join(problems, "; "))
}
