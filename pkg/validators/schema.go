package validators

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-validatedinput/pkg/validated"
)

// ErrNotStringSchema is returned when a schema declares a non string type.
var ErrNotStringSchema = errors.New("validators: schema must describe a string")

// FromSchema builds a validator that checks candidates against an OpenAPI
// string schema (minLength, maxLength, pattern, enum, format). The first
// schema error reason becomes the Invalid description.
func FromSchema(schema *openapi3.Schema) (validated.Validator, error) {
	if schema == nil {
		return nil, errors.New("validators: schema is required")
	}
	if schema.Type != nil && !schema.Type.Is(openapi3.TypeString) {
		return nil, errors.Wrapf(ErrNotStringSchema, "got %v", schema.Type.Slice())
	}
	if err := schema.Validate(context.Background()); err != nil {
		return nil, errors.Wrap(err, "validators: invalid schema")
	}

	return func(ctx context.Context, candidate string) (validated.Result, error) {
		if err := ctx.Err(); err != nil {
			return validated.Result{}, err
		}
		if err := schema.VisitJSON(candidate); err != nil {
			return validated.Invalid(schemaReason(err)), nil
		}
		return validated.Ok(candidate), nil
	}, nil
}

// ParseSchema decodes a JSON or YAML encoded schema.
func ParseSchema(raw []byte) (*openapi3.Schema, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, errors.New("validators: schema document is empty")
	}

	data := []byte(trimmed)
	if !strings.HasPrefix(trimmed, "{") {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "validators: decode yaml schema")
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "validators: convert yaml schema")
		}
		data = converted
	}

	schema := &openapi3.Schema{}
	if err := schema.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "validators: decode schema")
	}
	return schema, nil
}

// LoadSchema reads and parses a schema file.
func LoadSchema(path string) (*openapi3.Schema, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "validators: read schema %s", path)
	}
	return ParseSchema(data)
}

func schemaReason(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) && strings.TrimSpace(schemaErr.Reason) != "" {
		return schemaErr.Reason
	}
	var multi openapi3.MultiError
	if errors.As(err, &multi) && len(multi) > 0 {
		return schemaReason(multi[0])
	}
	return strings.TrimSpace(err.Error())
}
