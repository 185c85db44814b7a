// Package extension registers the generator's stages with a pipeline host.
package extension

import (
	"context"
	"fmt"
	"log/slog"

	"cmdlet-generator/internal/directive"
	"cmdlet-generator/internal/pipeline"
)

// StageDictionaries is the name of the container emission stage.
const StageDictionaries = "dictionaries"

// InitializePlugins registers, in run order, the directive pass and the
// container emission stage.
func InitializePlugins(host *pipeline.Host, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	matcher, err := directive.NewMatcher(directive.DefaultCacheSize)
	if err != nil {
		return fmt.Errorf("creating directive matcher: %w", err)
	}

	driver := directive.NewDriver(
		directive.NewMutator(directive.WithMatcher(matcher), directive.WithLogger(logger)),
		logger)

	host.Add(directive.StageName, func(ctx context.Context, s *pipeline.Session) error {
		_, err := driver.Run(ctx, s)
		return err
	})
	host.Add(StageDictionaries, Dictionaries(logger))

	return nil
}
