package schema

import (
	"fmt"
	"log/slog"
	"strings"
)

// PlaceholderMarker opens every fragment emitted for an unimplemented path.
const PlaceholderMarker = "/* FIXME:"

// IsPlaceholder reports whether fragment contains placeholder output.
func IsPlaceholder(fragment string) bool {
	return strings.Contains(fragment, PlaceholderMarker)
}

// placeholder logs the unimplemented path and returns its marker comment.
func placeholder(logger *slog.Logger, shape, path, subject, text string) string {
	logger.Warn("unimplemented emission path",
		slog.String("shape", shape),
		slog.String("path", path),
		slog.String("subject", subject))

	return fmt.Sprintf("%s %s */", PlaceholderMarker, text)
}

// placeholderEmitter is the default UntypedEmitter.
type placeholderEmitter struct {
	logger *slog.Logger
}

const untypedShape = "untyped-wildcard"

func (e placeholderEmitter) ValidateValue(property string) string {
	return placeholder(e.logger, untypedShape, "ValidateValue", property,
		"untyped wildcard validate value for "+property)
}

func (e placeholderEmitter) JSONDeserializationImplementationOnProperty(_, property, _ string) string {
	return placeholder(e.logger, untypedShape, "JSONDeserializationImplementationOnProperty", property,
		"untyped wildcard json deserialize for "+property)
}

func (e placeholderEmitter) JSONDeserializationImplementationOnNode(node string) string {
	return placeholder(e.logger, untypedShape, "JSONDeserializationImplementationOnNode", node,
		"untyped wildcard deserialize node")
}

func (e placeholderEmitter) SerializeInstanceToJSON(instance string) string {
	return placeholder(e.logger, untypedShape, "SerializeInstanceToJSON", instance,
		"untyped wildcard serialize")
}
