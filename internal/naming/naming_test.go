package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeconstruct(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"WidgetClient", []string{"widget", "client"}},
		{"widgetClient", []string{"widget", "client"}},
		{"storage_account-name", []string{"storage", "account", "name"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"Az.Widgets", []string{"az", "widgets"}},
		{"ID", []string{"id"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Deconstruct(tt.input))
		})
	}
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "WidgetService", PascalCase([]string{"widget", "service"}))
	assert.Equal(t, "Http", PascalCase([]string{"", "http"}))
	assert.Empty(t, PascalCase(nil))
}

func TestPascalCaseOfDeconstruct(t *testing.T) {
	assert.Equal(t, "StorageAccount", PascalCase(Deconstruct("storage-account")))
	assert.Equal(t, "GetHttpResponse", PascalCase(Deconstruct("getHTTPResponse")))
}

func TestFixPropertyName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tags", "Tags"},
		{"this.Tags", "Tags"},
		{"_tags", "_tags"},
		{"this._additionalProperties", "_additionalProperties"},
		{"Foo.Bar", "FooBar"},
		{"item[0]", "item0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FixPropertyName(tt.input))
		})
	}
}
