package tagdoc

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError reports a JSON document that failed schema validation.
type ValidationError struct {
	// Details holds one line per schema violation.
	Details string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document failed schema validation:\n%s", e.Details)
}

// documentSchema is the draft-07 schema JSON documents must satisfy
// before unmarshalling. Byte fields (flags, payload) appear as base64
// strings in JSON, hence the string types below.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "tag document",
  "type": "object",
  "required": ["id", "version", "created_at", "frames"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "version": { "type": "string", "enum": ["ID3v2.2", "ID3v2.3", "ID3v2.4"] },
    "created_at": { "type": "string" },
    "frames": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["wire_id", "size", "payload"],
        "properties": {
          "wire_id": { "type": "string", "minLength": 3, "maxLength": 4 },
          "size": { "type": "integer", "minimum": 0 },
          "flags": { "type": "string" },
          "payload": { "type": "string" }
        }
      }
    }
  }
}`

// validateJSON checks a JSON document against the embedded schema.
func validateJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate document: %w", err)
	}

	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, fmt.Sprintf("  - %s", desc))
		}
		return &ValidationError{Details: strings.Join(details, "\n")}
	}
	return nil
}
