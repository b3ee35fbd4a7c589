package export

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// jsonSchema is the fixed shape every document produced by JSON must satisfy.
const jsonSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["vertices", "links"],
  "properties": {
    "vertices": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["d", "ind", "w", "e"],
        "properties": {
          "d":   {"type": "integer", "minimum": 0},
          "ind": {"type": "integer", "minimum": 0},
          "w":   {"type": "array", "items": {"type": "integer"}},
          "e":   {"type": "array", "items": {"type": "integer"}}
        }
      }
    },
    "links": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["source_id", "target_id"],
        "properties": {
          "source_id": {"type": "integer", "minimum": 0},
          "target_id": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

// ValidateJSON checks doc (the output of JSON) against the fixed schema
// above, returning ErrSchemaCheck wrapping every violation found.
func ValidateJSON(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(jsonSchema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaLoad, err)
	}

	if !result.Valid() {
		msg := ""
		for _, e := range result.Errors() {
			msg += e.String() + "; "
		}

		return fmt.Errorf("%w: %s", ErrSchemaCheck, msg)
	}

	return nil
}
