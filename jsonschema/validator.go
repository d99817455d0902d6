// Package jsonschema validates record files against the JSON contract of
// the extraction output.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/infobox"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Ensure Validator implements infobox.RecordValidator at compile time.
var _ infobox.RecordValidator = (*Validator)(nil)

// RecordsSchema describes a list of {title, infobox} records. Parameter
// values are strings, or arrays of strings for multi-valued fields.
// Title and infobox may be absent or null; the reports label such records
// with a placeholder title and treat them as having no parameters.
const RecordsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "title": {"type": ["string", "null"]},
      "infobox": {
        "type": ["object", "null"],
        "additionalProperties": {
          "oneOf": [
            {"type": "string"},
            {"type": "array", "items": {"type": "string"}}
          ]
        }
      }
    }
  }
}`

const schemaURL = "records.json"

// Validator checks serialized records against RecordsSchema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the records schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(RecordsSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateRecords returns EINVALID when data is not valid JSON or does not
// match the records schema.
func (v *Validator) ValidateRecords(data []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return infobox.Errorf(infobox.EINVALID, "record file is not valid JSON: %v", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return infobox.Errorf(infobox.EINVALID, "record file does not match schema: %v", err)
	}
	return nil
}
