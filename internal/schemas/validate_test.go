package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CatalogValid(t *testing.T) {
	doc := `{"standardSculptures": [{"name": "Polar Bear", "imageUrl": "https://example.com/bear.png"}]}`

	err := Validate(Catalog, []byte(doc))
	assert.NoError(t, err)
}

func TestValidate_CatalogEmptyList(t *testing.T) {
	err := Validate(Catalog, []byte(`{"standardSculptures": []}`))
	assert.NoError(t, err)
}

func TestValidate_CatalogInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing list field", doc: `{"sculptures": []}`},
		{name: "list is an object", doc: `{"standardSculptures": {"name": "x"}}`},
		{name: "item is a string", doc: `{"standardSculptures": ["Polar Bear"]}`},
		{name: "name is a number", doc: `{"standardSculptures": [{"name": 42}]}`},
		{name: "top level array", doc: `[{"name": "Polar Bear"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Catalog, []byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.Greater(t, len(validationErr.Errors), 0)
			assert.Contains(t, validationErr.Error(), "catalog schema validation failed")
		})
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(Catalog, []byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "schema not embedded")
}

func TestValidationError_ErrorFormat(t *testing.T) {
	err := &ValidationError{
		Schema: "catalog",
		Errors: []FieldError{
			{Field: "(root)", Message: "standardSculptures is required"},
			{Field: "standardSculptures.0", Message: "Invalid type"},
		},
	}

	assert.Equal(t,
		"catalog schema validation failed: 1. (root): standardSculptures is required; 2. standardSculptures.0: Invalid type",
		err.Error())
}
