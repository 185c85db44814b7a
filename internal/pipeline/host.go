package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// Plugin is one generation stage.
type Plugin func(ctx context.Context, s *Session) error

type registration struct {
	name   string
	plugin Plugin
}

// Host runs plugins in registration order.
type Host struct {
	plugins []registration
	logger  *slog.Logger
}

// NewHost creates an empty Host.
func NewHost(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}

	return &Host{logger: logger}
}

// Add registers a plugin under name. Registering the same name again
// replaces the earlier plugin in place.
func (h *Host) Add(name string, plugin Plugin) {
	for i := range h.plugins {
		if h.plugins[i].name == name {
			h.plugins[i].plugin = plugin
			return
		}
	}

	h.plugins = append(h.plugins, registration{name: name, plugin: plugin})
}

// Names returns the registered plugin names in run order.
func (h *Host) Names() []string {
	names := make([]string, 0, len(h.plugins))
	for _, r := range h.plugins {
		names = append(names, r.name)
	}

	return names
}

// Run executes every plugin, checkpointing after each one. The first plugin
// error or failed checkpoint stops the run.
func (h *Host) Run(ctx context.Context, s *Session) error {
	for _, r := range h.plugins {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.logger.Debug("running plugin", slog.String("plugin", r.name))

		if err := r.plugin(ctx, s); err != nil {
			return fmt.Errorf("plugin %s: %w", r.name, err)
		}

		if err := s.Checkpoint(); err != nil {
			return fmt.Errorf("after plugin %s: %w", r.name, err)
		}
	}

	return nil
}
