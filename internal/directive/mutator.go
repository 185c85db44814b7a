package directive

import (
	"context"
	"log/slog"

	"cmdlet-generator/internal/codemodel"
	"cmdlet-generator/internal/diagnostic"
)

// Mutator applies directives to a command model in place.
type Mutator struct {
	matcher *Matcher
	logger  *slog.Logger
}

// MutatorOption configures a Mutator.
type MutatorOption func(*Mutator)

// WithMatcher sets the matcher used to evaluate patterns.
func WithMatcher(m *Matcher) MutatorOption {
	return func(mu *Mutator) {
		mu.matcher = m
	}
}

// WithLogger sets the logger that receives per-directive debug records.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) MutatorOption {
	return func(mu *Mutator) {
		if l != nil {
			mu.logger = l
		}
	}
}

// NewMutator creates a Mutator. Without WithMatcher, patterns are compiled
// on every evaluation.
func NewMutator(opts ...MutatorOption) *Mutator {
	mu := &Mutator{logger: slog.Default()}
	for _, opt := range opts {
		opt(mu)
	}

	return mu
}

// Apply runs every directive over the model, in order, and returns the same
// model. remove-command deletes matching commands; hide-command sets their
// HideDirective to the directive's pattern. Each directive sees the commands
// left by the ones before it.
func (mu *Mutator) Apply(model *codemodel.Model, directives []Directive) *codemodel.Model {
	return mu.apply(model, directives, nil)
}

func (mu *Mutator) apply(model *codemodel.Model, directives []Directive, diags *diagnostic.Diagnostics) *codemodel.Model {
	for _, d := range directives {
		keys := mu.matching(model, d.Pattern)

		switch d.Kind {
		case KindRemoveCommand:
			for _, key := range keys {
				delete(model.Commands, key)
			}
		case KindHideCommand:
			for _, key := range keys {
				model.Commands[key].HideDirective = d.Pattern
			}
		default:
			continue
		}

		if len(keys) == 0 && diags != nil {
			diags.AddInfo(diagnostic.CodeDirectiveNoMatch, "directive matched no commands", StageName, d.String())
		}

		mu.logger.Debug("applied directive",
			slog.String("kind", d.Kind.String()),
			slog.String("pattern", d.Pattern),
			slog.Int("matched", len(keys)),
			slog.Any("commands", keys))
	}

	return model
}

// Transform adapts Apply to the host's transform callback for a fixed
// directive list. When diags is not nil, every directive that selects no
// command is recorded there as an info diagnostic.
func (mu *Mutator) Transform(directives []Directive, diags *diagnostic.Diagnostics) codemodel.TransformFunc {
	return func(_ context.Context, model *codemodel.Model) (*codemodel.Model, error) {
		return mu.apply(model, directives, diags), nil
	}
}

// matching collects the keys of commands selected by pattern before the
// caller mutates the collection.
func (mu *Mutator) matching(model *codemodel.Model, pattern string) []string {
	var keys []string

	for _, key := range model.CommandKeys() {
		if mu.matcher.Matches(pattern, model.DisplayName(model.Commands[key])) {
			keys = append(keys, key)
		}
	}

	return keys
}
