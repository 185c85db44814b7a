package config

import (
	"context"
	"fmt"
	"math"
)

// String reads a string value. ok is false when the key is unset or empty.
func String(ctx context.Context, svc Service, key string) (string, bool, error) {
	raw, err := svc.GetValue(ctx, key)
	if err != nil || raw == nil {
		return "", false, err
	}

	s, isString := raw.(string)
	if !isString {
		return "", false, fmt.Errorf("config %s: expected string, got %T", key, raw)
	}

	return s, s != "", nil
}

// Bool reads a value with truthiness semantics: unset, false, zero and the
// empty string are false; any other value is true.
func Bool(ctx context.Context, svc Service, key string) (bool, error) {
	raw, err := svc.GetValue(ctx, key)
	if err != nil {
		return false, err
	}

	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		return v != "", nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return true, nil
	}
}

// Int reads an integer value. ok is false when the key is unset or holds a
// non-numeric value; a number with a fractional part is an error.
func Int(ctx context.Context, svc Service, key string) (int, bool, error) {
	raw, err := svc.GetValue(ctx, key)
	if err != nil {
		return 0, false, err
	}

	switch v := raw.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, false, fmt.Errorf("setting %q must be an integer, got %v", key, v)
		}

		return int(v), true, nil
	default:
		return 0, false, nil
	}
}
