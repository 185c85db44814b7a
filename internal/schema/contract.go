package schema

// Serialization emits the type spelling and JSON (de)serialization code of a
// shape.
type Serialization interface {
	// Declaration returns the target-language type of the shape.
	Declaration() string
	// JSONSerializationImplementation writes property into container under serializedName.
	JSONSerializationImplementation(container, property, serializedName string) string
	// JSONDeserializationImplementationOnProperty reads serializedName from container into property.
	JSONDeserializationImplementationOnProperty(container, property, serializedName string) string
	// SerializeInstanceToJSON returns an expression converting instance to a JSON node.
	SerializeInstanceToJSON(instance string) string
	// JSONDeserializationImplementationOnNode returns an expression rebuilding a value from node.
	JSONDeserializationImplementationOnNode(node string) string
}

// Validation emits validation statements for a property of the shape.
// An empty string means no check is needed.
type Validation interface {
	ValidatePresence(property string) string
	ValidateValue(property string) string
}

// Declaration is the contract every schema shape implements.
type Declaration interface {
	Serialization
	Validation
}

var (
	_ Declaration = (*Wildcard)(nil)
	_ Declaration = (*UntypedWildcard)(nil)
	_ Declaration = Primitive{}
)
