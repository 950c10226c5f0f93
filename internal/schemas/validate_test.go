package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "email"],
	"properties": {
		"name": {"type": "string", "minLength": 2},
		"email": {"type": "string", "pattern": "^[^@]+@[^@]+\\.[^@]+$"}
	}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	schemaPath := writeTemp(t, "contact.schema.json", contactSchema)
	jsonPath := writeTemp(t, "contact.json", `{"name": "Alex Smith", "email": "alex@acme.com"}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingField(t *testing.T) {
	schemaPath := writeTemp(t, "contact.schema.json", contactSchema)
	jsonPath := writeTemp(t, "contact.json", `{"name": "Alex Smith"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_WrongType(t *testing.T) {
	schemaPath := writeTemp(t, "contact.schema.json", contactSchema)
	jsonPath := writeTemp(t, "contact.json", `{"name": 42, "email": "alex@acme.com"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTemp(t, "contact.json", `{"name": "Alex Smith", "email": "alex@acme.com"}`)

	err := ValidateJSON("does/not/exist.schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeTemp(t, "contact.schema.json", contactSchema)

	err := ValidateJSON(schemaPath, "does/not/exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	schemaPath := writeTemp(t, "contact.schema.json", contactSchema)
	jsonPath := writeTemp(t, "malformed.json", "{ invalid json }")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(contactSchema, `{"name": "Alex Smith", "email": "alex@acme.com"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(contactSchema, `{"name": "Alex Smith", "email": "nope"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString("{ not a schema", `{"name": "x"}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "email", Message: "does not match pattern"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "name")
	assert.Contains(t, msg, "email")
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["contact"],
		"properties": {
			"contact": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	err := ValidateJSONString(schema, `{"contact": {}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.NotEmpty(t, validationErr.Errors[0].Field)
}

func TestResolveSchemaPath_Found(t *testing.T) {
	// The session schema lives two levels up from this package.
	path := ResolveSchemaPath(filepath.Join("schemas", "session.schema.json"))
	assert.NotEmpty(t, path)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("no/such/schema.json"))
}
