package directive

import (
	"errors"
	"fmt"
	"regexp"

	"cmdlet-generator/internal/diagnostic"
)

// Directive is one recognized rule read from configuration.
type Directive struct {
	Kind    Kind
	Pattern string
}

// String returns the directive in its configuration spelling.
func (d Directive) String() string {
	return d.Kind.String() + ": " + d.Pattern
}

// InvalidError reports a directive that carries a recognized key but cannot
// be applied.
type InvalidError struct {
	// Index is the position of the entry in the configured list.
	Index int
	Kind  Kind
	// Code is the diagnostic code to report the problem under.
	Code string
	Err  error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("directive #%d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

// FromValue builds the ordered directive list from a raw configuration value.
//
// The value may be nil (no directives), a single mapping or a list of
// mappings. Entries without a recognized key are dropped silently, as are
// recognized keys with an empty pattern. Entries whose pattern is not a
// string or does not compile are reported as *InvalidError values joined
// into the returned error; every valid entry is still returned.
func FromValue(raw any) ([]Directive, error) {
	var entries []any

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		entries = v
	case []map[string]any:
		entries = make([]any, 0, len(v))
		for _, e := range v {
			entries = append(entries, e)
		}
	case map[string]any:
		entries = []any{v}
	default:
		return nil, fmt.Errorf("directive value must be a list of mappings, got %T", raw)
	}

	var (
		directives []Directive
		errs       []error
	)

	for i, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		d, err := fromEntry(fields)
		if err != nil {
			err.Index = i
			errs = append(errs, err)

			continue
		}

		if d != nil {
			directives = append(directives, *d)
		}
	}

	return directives, errors.Join(errs...)
}

// fromEntry returns nil, nil for entries with no applicable recognized key.
func fromEntry(fields map[string]any) (*Directive, *InvalidError) {
	for _, kind := range recognized {
		value, ok := fields[kind.String()]
		if !ok || value == nil {
			continue
		}

		pattern, ok := value.(string)
		if !ok {
			return nil, &InvalidError{
				Kind: kind,
				Code: diagnostic.CodeDirectiveValue,
				Err:  fmt.Errorf("pattern must be a string, got %T", value),
			}
		}

		if pattern == "" {
			continue
		}

		if !IsLiteral(pattern) {
			if _, err := regexp.Compile(pattern); err != nil {
				return nil, &InvalidError{
					Kind: kind,
					Code: diagnostic.CodeDirectivePattern,
					Err:  err,
				}
			}
		}

		return &Directive{Kind: kind, Pattern: pattern}, nil
	}

	return nil, nil
}
