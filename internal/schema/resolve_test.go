package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdlet-generator/internal/codemodel"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		schema      *codemodel.Schema
		declaration string
	}{
		{"string", &codemodel.Schema{Type: "string"}, "string"},
		{"int32", &codemodel.Schema{Type: "integer", Format: "int32"}, "int"},
		{"int64", &codemodel.Schema{Type: "integer", Format: "int64"}, "long"},
		{"number", &codemodel.Schema{Type: "number"}, "double"},
		{"boolean", &codemodel.Schema{Type: "boolean"}, "bool"},
		{
			"untyped dictionary",
			&codemodel.Schema{Type: "dictionary"},
			"System.Collections.Generic.Dictionary<string,object>",
		},
		{
			"typed dictionary",
			&codemodel.Schema{Type: "dictionary", AdditionalProperties: &codemodel.Schema{Type: "string"}},
			"System.Collections.Generic.Dictionary<string,string>",
		},
		{
			"object with additional properties",
			&codemodel.Schema{Type: "object", AdditionalProperties: &codemodel.Schema{Type: "boolean"}},
			"System.Collections.Generic.Dictionary<string,bool>",
		},
		{
			"nested dictionary",
			&codemodel.Schema{
				Type:                 "dictionary",
				AdditionalProperties: &codemodel.Schema{Type: "dictionary"},
			},
			"System.Collections.Generic.Dictionary<string,System.Collections.Generic.Dictionary<string,object>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.declaration, d.Declaration())
		})
	}
}

func TestResolveVariants(t *testing.T) {
	typed, err := Resolve(&codemodel.Schema{Type: "dictionary", AdditionalProperties: &codemodel.Schema{Type: "string"}})
	require.NoError(t, err)
	assert.IsType(t, &Wildcard{}, typed)

	untyped, err := Resolve(&codemodel.Schema{Type: "dictionary"})
	require.NoError(t, err)
	assert.IsType(t, &UntypedWildcard{}, untyped)
}

func TestResolveUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		schema *codemodel.Schema
	}{
		{"nil", nil},
		{"plain object", &codemodel.Schema{Type: "object"}},
		{"unknown type", &codemodel.Schema{Type: "file"}},
		{"dictionary of object", &codemodel.Schema{Type: "dictionary", AdditionalProperties: &codemodel.Schema{Type: "object"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.schema)
			require.ErrorIs(t, err, ErrUnsupportedShape)
		})
	}
}
