package schema

import (
	"log/slog"
)

// NodeDeserializer emits an expression rebuilding a Dictionary<string,T>
// from a parsed JSON node, given the leaf shape T.
type NodeDeserializer func(leaf Serialization, node string) string

// UntypedEmitter supplies the emission paths of UntypedWildcard that have
// no built-in generator.
type UntypedEmitter interface {
	ValidateValue(property string) string
	JSONDeserializationImplementationOnProperty(container, property, serializedName string) string
	JSONDeserializationImplementationOnNode(node string) string
	SerializeInstanceToJSON(instance string) string
}

type options struct {
	logger           *slog.Logger
	nodeDeserializer NodeDeserializer
	untyped          UntypedEmitter
}

// Option configures a shape.
type Option func(*options)

// WithLogger sets the logger that receives placeholder warnings.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNodeDeserializer replaces the placeholder emitted by
// Wildcard.JSONDeserializationImplementationOnNode.
func WithNodeDeserializer(fn NodeDeserializer) Option {
	return func(o *options) {
		o.nodeDeserializer = fn
	}
}

// WithUntypedEmitter replaces the placeholder paths of UntypedWildcard.
func WithUntypedEmitter(e UntypedEmitter) Option {
	return func(o *options) {
		o.untyped = e
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
