package schema

import (
	"errors"
	"fmt"

	"cmdlet-generator/internal/codemodel"
)

// ErrUnsupportedShape is returned for schemas no emitter handles.
var ErrUnsupportedShape = errors.New("unsupported schema shape")

// Resolve returns the emitter for an inline schema definition. Container
// schemas resolve to Wildcard (or UntypedWildcard when additionalProperties
// is absent); scalars resolve to Primitive. Options are passed to every
// container created along the way.
func Resolve(s *codemodel.Schema, opts ...Option) (Declaration, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrUnsupportedShape)
	}

	if s.IsContainer() {
		if s.AdditionalProperties == nil {
			return NewUntypedWildcard(opts...), nil
		}

		leaf, err := Resolve(s.AdditionalProperties, opts...)
		if err != nil {
			return nil, fmt.Errorf("dictionary value: %w", err)
		}

		w, err := NewWildcard(leaf, opts...)
		if err != nil {
			return nil, err
		}

		return w, nil
	}

	switch s.Type {
	case codemodel.TypeString:
		return Primitive{Kind: PrimitiveString}, nil
	case codemodel.TypeInteger:
		if s.Format == "int64" {
			return Primitive{Kind: PrimitiveLong}, nil
		}

		return Primitive{Kind: PrimitiveInt}, nil
	case codemodel.TypeNumber:
		return Primitive{Kind: PrimitiveDouble}, nil
	case codemodel.TypeBoolean:
		return Primitive{Kind: PrimitiveBool}, nil
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnsupportedShape, s.Type)
	}
}
