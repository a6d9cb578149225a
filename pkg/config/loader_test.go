package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/config"
)

type testConfig struct {
	Definition string     `env:"TEST_FSM_DEFINITION" envDefault:"machine.yaml"`
	Capacity   int        `env:"TEST_FSM_CAPACITY" envDefault:"10"`
	Level      slog.Level `env:"TEST_FSM_LEVEL" envDefault:"info"`
}

type requiredConfig struct {
	Required string `env:"TEST_FSM_REQUIRED,required"`
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_FSM_DEFINITION")
	os.Unsetenv("TEST_FSM_CAPACITY")
	os.Unsetenv("TEST_FSM_LEVEL")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "machine.yaml", cfg.Definition)
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, slog.LevelInfo, cfg.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_FSM_DEFINITION", "door.yaml")
	t.Setenv("TEST_FSM_CAPACITY", "3")
	t.Setenv("TEST_FSM_LEVEL", "debug")

	cfg, err := config.Parse[testConfig]()
	require.NoError(t, err)
	assert.Equal(t, "door.yaml", cfg.Definition)
	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, slog.LevelDebug, cfg.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("TEST_FSM_REQUIRED")
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_FSM_CAPACITY", "many")
		_, err := config.Parse[testConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("TEST_FSM_REQUIRED")
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_FSM_REQUIRED=from_file\n"), 0o600))
		t.Setenv("TEST_FSM_REQUIRED", "")
		os.Unsetenv("TEST_FSM_REQUIRED")

		require.NoError(t, config.LoadEnv(path))
		cfg, err := config.Parse[requiredConfig]()
		require.NoError(t, err)
		assert.Equal(t, "from_file", cfg.Required)
	})

	t.Run("existing variables win", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_FSM_DEFINITION=from_file.yaml\n"), 0o600))
		t.Setenv("TEST_FSM_DEFINITION", "from_env.yaml")

		require.NoError(t, config.LoadEnv(path))
		cfg, err := config.Parse[testConfig]()
		require.NoError(t, err)
		assert.Equal(t, "from_env.yaml", cfg.Definition)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, config.LoadEnv())
	})
}
