package directive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cmdlet-generator/internal/diagnostic"
)

func decode(t *testing.T, src string) any {
	t.Helper()

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(src), &raw))

	return raw["directive"]
}

func TestFromValueNil(t *testing.T) {
	directives, err := FromValue(nil)
	require.NoError(t, err)
	assert.Empty(t, directives)
}

func TestFromValueFiltersRecognizedKeys(t *testing.T) {
	raw := decode(t, `
directive:
  - where: $.paths
    transform: $.x = 1
  - remove-command: "^Get-"
  - hide-command: get-widget
  - set:
      property-name: Foo
  - just a string
`)

	directives, err := FromValue(raw)
	require.NoError(t, err)

	assert.Equal(t, []Directive{
		{Kind: KindRemoveCommand, Pattern: "^Get-"},
		{Kind: KindHideCommand, Pattern: "get-widget"},
	}, directives)
}

func TestFromValueSingleMapping(t *testing.T) {
	directives, err := FromValue(map[string]any{"hide-command": "Get-Widget"})
	require.NoError(t, err)

	assert.Equal(t, []Directive{{Kind: KindHideCommand, Pattern: "Get-Widget"}}, directives)
}

func TestFromValueTableList(t *testing.T) {
	directives, err := FromValue([]map[string]any{
		{"remove-command": "Widget$"},
		{"other": "x"},
	})
	require.NoError(t, err)

	assert.Equal(t, []Directive{{Kind: KindRemoveCommand, Pattern: "Widget$"}}, directives)
}

func TestFromValuePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		entry    map[string]any
		expected []Directive
	}{
		{
			name:     "remove wins over hide",
			entry:    map[string]any{"hide-command": "Get-Widget", "remove-command": "Set-Widget"},
			expected: []Directive{{Kind: KindRemoveCommand, Pattern: "Set-Widget"}},
		},
		{
			name:     "empty remove falls through to hide",
			entry:    map[string]any{"remove-command": "", "hide-command": "Get-Widget"},
			expected: []Directive{{Kind: KindHideCommand, Pattern: "Get-Widget"}},
		},
		{
			name:     "null values are ignored",
			entry:    map[string]any{"remove-command": nil},
			expected: nil,
		},
		{
			name:     "empty pattern is ignored",
			entry:    map[string]any{"hide-command": ""},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives, err := FromValue([]any{tt.entry})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, directives)
		})
	}
}

func TestFromValueInvalidEntries(t *testing.T) {
	raw := []any{
		map[string]any{"remove-command": 42},
		map[string]any{"hide-command": "^Get-"},
		map[string]any{"hide-command": "(["},
	}

	directives, err := FromValue(raw)
	require.Error(t, err)

	assert.Equal(t, []Directive{{Kind: KindHideCommand, Pattern: "^Get-"}}, directives)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	require.Len(t, joined.Unwrap(), 2)

	var first *InvalidError
	require.True(t, errors.As(joined.Unwrap()[0], &first))
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, KindRemoveCommand, first.Kind)
	assert.Equal(t, diagnostic.CodeDirectiveValue, first.Code)

	var second *InvalidError
	require.True(t, errors.As(joined.Unwrap()[1], &second))
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, KindHideCommand, second.Kind)
	assert.Equal(t, diagnostic.CodeDirectivePattern, second.Code)
	assert.Contains(t, second.Error(), "directive #2 (hide-command)")
}

func TestFromValueWrongShape(t *testing.T) {
	_, err := FromValue("remove-command: Get-Widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a list of mappings")
}

func TestDirectiveString(t *testing.T) {
	d := Directive{Kind: KindRemoveCommand, Pattern: "^Get-"}
	assert.Equal(t, "remove-command: ^Get-", d.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "hide-command", KindHideCommand.String())
}
