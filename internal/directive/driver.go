package directive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cmdlet-generator/internal/codemodel"
	"cmdlet-generator/internal/diagnostic"
)

const (
	// ConfigKey is the configuration key holding the directive list.
	ConfigKey = "directive"
	// StageName is the name the driver registers under with the host.
	StageName = "modifiers"
)

// Host is the part of the generation pipeline the driver talks to.
type Host interface {
	// GetValue returns a configuration value, or nil when it is not set.
	GetValue(ctx context.Context, key string) (any, error)
	// ProcessCodeModel hands the current model to transform and keeps the result.
	ProcessCodeModel(ctx context.Context, transform codemodel.TransformFunc) (*codemodel.Model, error)
	// Diagnostics returns the accumulator consulted at the next checkpoint.
	Diagnostics() *diagnostic.Diagnostics
}

// Driver reads the configured directives and applies them to the host's model.
type Driver struct {
	mutator *Mutator
	logger  *slog.Logger
}

// NewDriver creates a Driver. A nil mutator gets a default one.
func NewDriver(mutator *Mutator, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}

	if mutator == nil {
		mutator = NewMutator(WithLogger(logger))
	}

	return &Driver{mutator: mutator, logger: logger}
}

// Run performs one directive pass. The directive list is rebuilt from
// configuration on every call. Invalid directives are recorded as error
// diagnostics, so the next checkpoint aborts the pipeline; valid ones are
// still applied.
func (d *Driver) Run(ctx context.Context, host Host) (*codemodel.Model, error) {
	raw, err := host.GetValue(ctx, ConfigKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigKey, err)
	}

	directives, err := FromValue(raw)
	if err != nil {
		d.report(host.Diagnostics(), err)
	}

	d.logger.Debug("loaded directives", slog.Int("count", len(directives)))

	return host.ProcessCodeModel(ctx, d.mutator.Transform(directives, host.Diagnostics()))
}

func (d *Driver) report(diags *diagnostic.Diagnostics, err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		var invalid *InvalidError
		if errors.As(e, &invalid) {
			diags.AddError(invalid.Code, invalid.Err.Error(), StageName,
				fmt.Sprintf("directive #%d (%s)", invalid.Index, invalid.Kind))

			continue
		}

		diags.AddError(diagnostic.CodeDirectiveValue, e.Error(), StageName, ConfigKey)
	}
}
