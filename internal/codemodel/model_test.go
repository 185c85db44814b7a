package codemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		cmd      Command
		expected string
	}{
		{"no prefix", "", Command{Verb: "Get", Noun: "Widget"}, "Get-Widget"},
		{"with prefix", "Az", Command{Verb: "Get", Noun: "Widget"}, "Get-AzWidget"},
		{"empty noun", "Az", Command{Verb: "Invoke"}, "Invoke-Az"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Model{Info: Info{NounPrefix: tt.prefix}}
			assert.Equal(t, tt.expected, m.DisplayName(&tt.cmd))
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := &Model{
		Commands: map[string]*Command{"b": {}, "a": {}, "c": {}},
		Schemas:  map[string]*Schema{"Z": {}, "A": {}},
	}

	assert.Equal(t, []string{"a", "b", "c"}, m.CommandKeys())
	assert.Equal(t, []string{"A", "Z"}, m.SchemaNames())
}

func TestIsContainer(t *testing.T) {
	tests := []struct {
		name     string
		schema   *Schema
		expected bool
	}{
		{"nil", nil, false},
		{"string", &Schema{Type: TypeString}, false},
		{"dictionary", &Schema{Type: TypeDictionary}, true},
		{"typed dictionary", &Schema{Type: TypeDictionary, AdditionalProperties: &Schema{Type: TypeString}}, true},
		{"object without additional properties", &Schema{Type: TypeObject}, false},
		{"object with additional properties", &Schema{Type: TypeObject, AdditionalProperties: &Schema{Type: TypeInteger}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.schema.IsContainer())
		})
	}
}
