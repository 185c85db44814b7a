package schema

import (
	"fmt"
	"strings"

	"cmdlet-generator/internal/naming"
)

//go:generate go tool stringer -type=PrimitiveKind -linecomment -output=primitive_string.go

// PrimitiveKind enumerates the scalar shapes; String returns the C# type.
type PrimitiveKind int

const (
	_ PrimitiveKind = iota // skip zero value, it marks an unknown scalar

	PrimitiveString // string
	PrimitiveInt    // int
	PrimitiveLong   // long
	PrimitiveDouble // double
	PrimitiveBool   // bool
)

// jsonNode returns the Carbon.Json node class carrying the scalar.
func (k PrimitiveKind) jsonNode() string {
	switch k {
	case PrimitiveString:
		return "Carbon.Json.JsonString"
	case PrimitiveBool:
		return "Carbon.Json.JsonBoolean"
	default:
		return "Carbon.Json.JsonNumber"
	}
}

// Primitive is a scalar leaf shape.
type Primitive struct {
	Kind PrimitiveKind
}

func (p Primitive) Declaration() string {
	return p.Kind.String()
}

// ValidatePresence only checks reference types; value types are always present.
func (p Primitive) ValidatePresence(property string) string {
	if p.Kind != PrimitiveString {
		return ""
	}

	return fmt.Sprintf("await listener.AssertNotNull(nameof(%s),%s);", naming.FixPropertyName(property), property)
}

func (p Primitive) ValidateValue(string) string {
	return ""
}

func (p Primitive) JSONSerializationImplementation(container, property, serializedName string) string {
	return strings.TrimSpace(fmt.Sprintf(`%s.SafeAdd( "%s", %s);`,
		container, serializedName, p.SerializeInstanceToJSON(property)))
}

func (p Primitive) JSONDeserializationImplementationOnProperty(container, property, serializedName string) string {
	node := fmt.Sprintf(`%s?.PropertyT<Carbon.Json.JsonNode>("%s")`, container, serializedName)

	return fmt.Sprintf("%s = %s;", property, p.JSONDeserializationImplementationOnNode(node))
}

func (p Primitive) SerializeInstanceToJSON(instance string) string {
	if p.Kind == PrimitiveString {
		return fmt.Sprintf("null != %s ? (Carbon.Json.JsonNode) new %s(%s) : null", instance, p.Kind.jsonNode(), instance)
	}

	return fmt.Sprintf("(Carbon.Json.JsonNode) new %s(%s)", p.Kind.jsonNode(), instance)
}

func (p Primitive) JSONDeserializationImplementationOnNode(node string) string {
	fallback := fmt.Sprintf("default(%s)", p.Kind)
	if p.Kind == PrimitiveString {
		fallback = "null"
	}

	return fmt.Sprintf("%s is %s __value ? (%s)__value : %s", node, p.Kind.jsonNode(), p.Kind, fallback)
}
