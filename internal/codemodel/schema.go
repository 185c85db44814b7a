package codemodel

// Schema type names understood by the emitters.
const (
	TypeString     = "string"
	TypeInteger    = "integer"
	TypeNumber     = "number"
	TypeBoolean    = "boolean"
	TypeObject     = "object"
	TypeDictionary = "dictionary"
)

// Schema is an inline, already resolved schema definition.
type Schema struct {
	Type        string `yaml:"type"`
	Format      string `yaml:"format,omitempty"`
	Description string `yaml:"description,omitempty"`
	// AdditionalProperties is the value shape of a keyed container.
	// Nil on a container means values are unconstrained.
	AdditionalProperties *Schema `yaml:"additionalProperties,omitempty"`
}

// IsContainer reports whether the schema resolves to a string-keyed container.
func (s *Schema) IsContainer() bool {
	if s == nil {
		return false
	}

	return s.Type == TypeDictionary || (s.Type == TypeObject && s.AdditionalProperties != nil)
}
