package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failing struct{}

func (failing) GetValue(context.Context, string) (any, error) {
	return nil, errors.New("unavailable")
}

func TestString(t *testing.T) {
	ctx := context.Background()
	values := Values{"name": "x", "empty": "", "number": 3}

	s, ok, err := String(ctx, values, "name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok, err = String(ctx, values, "empty")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = String(ctx, values, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = String(ctx, values, "number")
	require.Error(t, err)

	_, _, err = String(ctx, failing{}, "name")
	require.Error(t, err)
}

func TestBool(t *testing.T) {
	ctx := context.Background()
	values := Values{
		"true":      true,
		"false":     false,
		"zero":      0,
		"zero64":    int64(0),
		"one":       1,
		"string":    "yes",
		"empty":     "",
		"float":     1.5,
		"directive": []any{},
	}

	tests := []struct {
		key      string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"zero", false},
		{"zero64", false},
		{"one", true},
		{"string", true},
		{"empty", false},
		{"float", true},
		{"directive", true},
		{"missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Bool(ctx, values, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Bool(ctx, failing{}, "true")
	require.Error(t, err)
}

func TestInt(t *testing.T) {
	ctx := context.Background()
	values := Values{"int": 4, "int64": int64(5), "float": 6.0, "string": "7"}

	for key, expected := range map[string]int{"int": 4, "int64": 5, "float": 6} {
		got, ok, err := Int(ctx, values, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, expected, got, key)
	}

	_, ok, err := Int(ctx, values, "string")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Int(ctx, values, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIntRejectsFraction(t *testing.T) {
	_, ok, err := Int(context.Background(), Values{"max-inlined-parameters": 4.7}, "max-inlined-parameters")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "max-inlined-parameters")
}
