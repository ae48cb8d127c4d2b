package trace

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// traceSchema is the canonical JSON Schema for trace documents.
//
//go:embed trace-schema.json
var traceSchema []byte

// ErrSchema indicates a raw trace document that does not match the trace
// JSON schema.
var ErrSchema = errors.New("trace document does not match schema")

// ValidateDocument checks a raw JSON trace document against the embedded
// schema. It runs before decoding, so structurally malformed documents from
// external sources are rejected with field-level detail instead of
// surfacing as opaque unmarshal failures.
func ValidateDocument(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(traceSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))

	for _, verr := range result.Errors() {
		details = append(details, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
}
