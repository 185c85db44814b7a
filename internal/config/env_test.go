package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "./generated", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Dump)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CMDLET_GENERATOR_CONFIG", "readme.yaml")
	t.Setenv("CMDLET_GENERATOR_MODEL", "model.yaml")
	t.Setenv("CMDLET_GENERATOR_OUTPUT_DIR", "out")
	t.Setenv("CMDLET_GENERATOR_LOG_LEVEL", "debug")
	t.Setenv("CMDLET_GENERATOR_DUMP", "true")

	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, Env{
		ConfigFile: "readme.yaml",
		ModelFile:  "model.yaml",
		OutputDir:  "out",
		LogLevel:   "debug",
		Dump:       true,
	}, cfg)
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("CMDLET_GENERATOR_DUMP", "maybe")

	_, err := ParseEnv()
	require.Error(t, err)
}

func TestEnvLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := Env{LogLevel: tt.input}.Level()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
