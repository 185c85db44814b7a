package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cmdlet-generator/internal/naming"
)

const dictionaryType = "System.Collections.Generic.Dictionary<string,%s>"

// ErrNilLeaf is returned when a Wildcard is built without a value shape.
var ErrNilLeaf = errors.New("wildcard requires a leaf shape")

// Wildcard is a string-keyed container whose values have a known shape.
// The leaf shape is shared, never copied or modified.
type Wildcard struct {
	leaf             Serialization
	nodeDeserializer NodeDeserializer
	logger           *slog.Logger
}

// NewWildcard creates a Wildcard over leaf.
func NewWildcard(leaf Serialization, opts ...Option) (*Wildcard, error) {
	if leaf == nil {
		return nil, ErrNilLeaf
	}

	o := newOptions(opts)

	return &Wildcard{
		leaf:             leaf,
		nodeDeserializer: o.nodeDeserializer,
		logger:           o.logger,
	}, nil
}

// Leaf returns the value shape.
func (w *Wildcard) Leaf() Serialization {
	return w.leaf
}

func (w *Wildcard) Declaration() string {
	return fmt.Sprintf(dictionaryType, w.leaf.Declaration())
}

// ValidatePresence emits nothing: leaf values are validated when they are
// processed individually.
func (w *Wildcard) ValidatePresence(string) string {
	return ""
}

func (w *Wildcard) ValidateValue(string) string {
	return ""
}

func (w *Wildcard) JSONSerializationImplementation(container, property, serializedName string) string {
	return strings.TrimSpace(fmt.Sprintf(`%s.SafeAdd( "%s", %s);`,
		container, serializedName, w.SerializeInstanceToJSON(property)))
}

func (w *Wildcard) JSONDeserializationImplementationOnProperty(container, property, serializedName string) string {
	return fmt.Sprintf(`%s.DictionaryProperty("%s", ref %s, __each => %s );`,
		container, serializedName, property, w.leaf.JSONDeserializationImplementationOnNode("__each"))
}

func (w *Wildcard) SerializeInstanceToJSON(instance string) string {
	return fmt.Sprintf("Carbon.Json.JsonObject.Create( %s, __each=> %s)",
		instance, w.leaf.SerializeInstanceToJSON("__each"))
}

func (w *Wildcard) JSONDeserializationImplementationOnNode(node string) string {
	if w.nodeDeserializer != nil {
		return w.nodeDeserializer(w.leaf, node)
	}

	return placeholder(w.logger, "wildcard", "JSONDeserializationImplementationOnNode", node,
		"wildcard deserialize node")
}

// UntypedWildcard is a string-keyed container with unconstrained values.
type UntypedWildcard struct {
	emitter UntypedEmitter
}

// NewUntypedWildcard creates an UntypedWildcard.
func NewUntypedWildcard(opts ...Option) *UntypedWildcard {
	o := newOptions(opts)

	emitter := o.untyped
	if emitter == nil {
		emitter = placeholderEmitter{logger: o.logger}
	}

	return &UntypedWildcard{emitter: emitter}
}

func (u *UntypedWildcard) Declaration() string {
	return fmt.Sprintf(dictionaryType, "object")
}

func (u *UntypedWildcard) ValidatePresence(property string) string {
	return strings.TrimSpace(fmt.Sprintf("await listener.AssertNotNull(nameof(%s),%s);",
		naming.FixPropertyName(property), property))
}

func (u *UntypedWildcard) ValidateValue(property string) string {
	return u.emitter.ValidateValue(property)
}

func (u *UntypedWildcard) JSONSerializationImplementation(container, property, serializedName string) string {
	return strings.TrimSpace(fmt.Sprintf(`%s.SafeAdd( "%s", %s);`,
		container, serializedName, u.SerializeInstanceToJSON(property)))
}

func (u *UntypedWildcard) JSONDeserializationImplementationOnProperty(container, property, serializedName string) string {
	return u.emitter.JSONDeserializationImplementationOnProperty(container, property, serializedName)
}

func (u *UntypedWildcard) SerializeInstanceToJSON(instance string) string {
	return u.emitter.SerializeInstanceToJSON(instance)
}

func (u *UntypedWildcard) JSONDeserializationImplementationOnNode(node string) string {
	return u.emitter.JSONDeserializationImplementationOnNode(node)
}
