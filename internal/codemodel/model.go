package codemodel

import (
	"context"
	"maps"
	"slices"
)

// Model is the command model for one generation run.
type Model struct {
	Info     Info                `yaml:"info"`
	Commands map[string]*Command `yaml:"commands"`
	Schemas  map[string]*Schema  `yaml:"schemas,omitempty"`
}

// Info holds model-wide defaults.
type Info struct {
	// Name is the service client name (e.g. "WidgetClient").
	Name string `yaml:"name"`
	// NounPrefix is inserted between the verb and the noun of every command name.
	NounPrefix string `yaml:"nounPrefix,omitempty"`
	// Namespace is the root namespace of the generated module.
	Namespace string `yaml:"namespace,omitempty"`
}

// Command is one generated operation entry.
type Command struct {
	Verb        string `yaml:"verb"`
	Noun        string `yaml:"noun"`
	Description string `yaml:"description,omitempty"`
	// HideDirective holds the pattern of the hide-command directive that
	// marked this command as non-primary. Empty means the command is visible.
	HideDirective string `yaml:"hideDirective,omitempty"`
}

// Hidden reports whether a hide-command directive matched the command.
func (c *Command) Hidden() bool {
	return c.HideDirective != ""
}

// TransformFunc rewrites a model. Implementations may mutate the model in
// place and return it.
type TransformFunc func(ctx context.Context, model *Model) (*Model, error)

// DisplayName synthesizes the Verb-<NounPrefix><Noun> name of a command.
func (m *Model) DisplayName(cmd *Command) string {
	return cmd.Verb + "-" + m.Info.NounPrefix + cmd.Noun
}

// CommandKeys returns the command keys in sorted order.
func (m *Model) CommandKeys() []string {
	return slices.Sorted(maps.Keys(m.Commands))
}

// SchemaNames returns the schema names in sorted order.
func (m *Model) SchemaNames() []string {
	return slices.Sorted(maps.Keys(m.Schemas))
}
