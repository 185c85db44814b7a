package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"cmdlet-generator/internal/codemodel"
	"cmdlet-generator/internal/config"
	"cmdlet-generator/internal/extension"
	"cmdlet-generator/internal/pipeline"
)

// ModelOutputFile is the name of the transformed model written to the output directory.
const ModelOutputFile = "model.yaml"

// ParseConfig parses environment and flags into config.Env. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (config.Env, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return config.Env{}, err
	}

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "configuration file (.yaml, .json or .toml)")
	fs.StringVar(&cfg.ModelFile, "model", cfg.ModelFile, "command model file (YAML)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump the transformed model to stdout")

	if err := fs.Parse(args); err != nil {
		return config.Env{}, err
	}

	return cfg, nil
}

// Run loads the configuration and model, runs every stage and writes the results.
func Run(ctx context.Context, cfg config.Env, stdout, stderr io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.ModelFile == "" {
		return errors.New("a model file is required (-model)")
	}

	values := config.Values{}
	if cfg.ConfigFile != "" {
		values, err = config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
	}

	model, err := codemodel.LoadFile(cfg.ModelFile)
	if err != nil {
		return err
	}

	host := pipeline.NewHost(logger)
	if err := extension.InitializePlugins(host, logger); err != nil {
		return err
	}

	session := pipeline.NewSession(values, model, logger)
	if err := host.Run(ctx, session); err != nil {
		return err
	}

	if cfg.Dump {
		spew.Fdump(stdout, session.Model())
	}

	files := session.Outputs()
	if err := pipeline.WriteFiles(files, cfg.OutputDir); err != nil {
		return err
	}

	if err := codemodel.WriteFile(session.Model(), filepath.Join(cfg.OutputDir, ModelOutputFile)); err != nil {
		return err
	}

	reported := session.Reported()
	logger.Info("generation complete",
		slog.Int("commands", len(session.Model().Commands)),
		slog.Int("files", len(files)+1),
		slog.Int("warnings", len(reported.Warnings)),
		slog.Int("infos", len(reported.Infos)),
		slog.String("out", cfg.OutputDir))

	return nil
}
