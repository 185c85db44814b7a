// Package schema emits C# source fragments for resolved schema shapes.
//
// Every shape implements Declaration: its type spelling, presence and value
// validation statements, and JSON (de)serialization statements written
// against the Carbon.Json runtime. Callers holding a Declaration never need
// to know which shape they have.
//
// Container shapes:
//   - Wildcard: Dictionary<string,T> for a resolved leaf shape T
//   - UntypedWildcard: Dictionary<string,object>
//
// Emission paths that have no generator yet return a fragment containing
// PlaceholderMarker and log a warning. Wildcard node deserialization and the
// untyped paths can be supplied through WithNodeDeserializer and
// WithUntypedEmitter.
package schema
