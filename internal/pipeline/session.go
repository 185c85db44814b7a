package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"cmdlet-generator/internal/codemodel"
	"cmdlet-generator/internal/config"
	"cmdlet-generator/internal/diagnostic"
)

// ErrAborted is returned once a checkpoint found error diagnostics.
var ErrAborted = errors.New("generation aborted")

// Session is the state of one generation run.
type Session struct {
	config  config.Service
	model   *codemodel.Model
	diags   diagnostic.Diagnostics
	history diagnostic.Diagnostics
	outputs map[string][]byte
	logger  *slog.Logger
}

// NewSession creates a session over a configuration provider and a model.
func NewSession(cfg config.Service, model *codemodel.Model, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		config:  cfg,
		model:   model,
		outputs: make(map[string][]byte),
		logger:  logger,
	}
}

// GetValue returns a configuration value, or nil when it is not set.
func (s *Session) GetValue(ctx context.Context, key string) (any, error) {
	if s.config == nil {
		return nil, nil
	}

	return s.config.GetValue(ctx, key)
}

// Config returns the configuration provider.
func (s *Session) Config() config.Service {
	return s.config
}

// Model returns the current model.
func (s *Session) Model() *codemodel.Model {
	return s.model
}

// ProcessCodeModel hands the current model to transform and keeps whatever
// model it returns.
func (s *Session) ProcessCodeModel(ctx context.Context, transform codemodel.TransformFunc) (*codemodel.Model, error) {
	if s.model == nil {
		return nil, errors.New("no code model loaded")
	}

	m, err := transform(ctx, s.model)
	if err != nil {
		return nil, fmt.Errorf("failed to process code model: %w", err)
	}

	s.model = m

	return m, nil
}

// Diagnostics returns the run's accumulator.
func (s *Session) Diagnostics() *diagnostic.Diagnostics {
	return &s.diags
}

// Checkpoint reports accumulated infos and warnings, moves them to the
// run's history and returns an error wrapping ErrAborted when any error
// diagnostic was recorded.
func (s *Session) Checkpoint() error {
	for _, i := range s.diags.Infos {
		s.logger.Info(i.Message, slog.String("code", i.Code), slog.String("stage", i.Stage), slog.String("subject", i.Subject))
	}

	for _, w := range s.diags.Warnings {
		s.logger.Warn(w.Message, slog.String("code", w.Code), slog.String("stage", w.Stage), slog.String("subject", w.Subject))
	}

	s.history.Merge(diagnostic.Diagnostics{Warnings: s.diags.Warnings, Infos: s.diags.Infos})
	s.diags.Warnings = nil
	s.diags.Infos = nil

	if !s.diags.HasErrors() {
		return nil
	}

	for _, e := range s.diags.Errors {
		s.logger.Error(e.Message, slog.String("code", e.Code), slog.String("stage", e.Stage), slog.String("subject", e.Subject))
	}

	return fmt.Errorf("%w: %w", ErrAborted, s.diags.Error())
}

// Reported returns the infos and warnings released by earlier checkpoints.
func (s *Session) Reported() diagnostic.Diagnostics {
	return s.history
}

// AddOutput stores a generated file under a path relative to the output directory.
func (s *Session) AddOutput(name string, content []byte) {
	s.outputs[name] = content
}

// Outputs returns the generated files sorted by name.
func (s *Session) Outputs() []File {
	files := make([]File, 0, len(s.outputs))
	for _, name := range slices.Sorted(maps.Keys(s.outputs)) {
		files = append(files, File{Name: name, Content: s.outputs[name]})
	}

	return files
}
