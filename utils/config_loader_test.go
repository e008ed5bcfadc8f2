package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"core-temp/utils"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "core-temp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := utils.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultConfig(), cfg)
	assert.Equal(t, utils.ModeRows, cfg.Pipeline.Mode)
	assert.Equal(t, 4, cfg.Pipeline.Channels)
	assert.Equal(t, 30.0, cfg.Pipeline.TimeStep)
	assert.Equal(t, "round_robin", cfg.Pipeline.Distribution)
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	path := writeYAML(t, `
pipeline:
  mode: reshape
  channels: 8
output:
  csv: true
  dir: out
`)
	cfg, err := utils.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, utils.ModeReshape, cfg.Pipeline.Mode)
	assert.Equal(t, 8, cfg.Pipeline.Channels)
	assert.True(t, cfg.Output.CSV)
	assert.Equal(t, "out", cfg.Output.Dir)

	// untouched keys keep their defaults
	assert.Equal(t, 30.0, cfg.Pipeline.TimeStep)
	assert.Equal(t, 4, cfg.Output.Workers)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, "pipeline:\n  time_step: 10\n")
	t.Setenv("CORETEMP_PIPELINE_TIME_STEP", "2.5")
	t.Setenv("CORETEMP_LOGGING_LEVEL", "debug")

	cfg, err := utils.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Pipeline.TimeStep)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := utils.LoadConfig(writeYAML(t, "pipeline:\n  channels: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Channels")

	_, err = utils.LoadConfig(writeYAML(t, "pipeline:\n  distribution: zigzag\n"))
	assert.ErrorContains(t, err, "oneof")

	_, err = utils.LoadConfig(writeYAML(t, "pipeline: [1, 2"))
	assert.ErrorContains(t, err, "parse config")

	_, err = utils.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_TimeStep(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Pipeline.TimeStep = 0
	assert.ErrorContains(t, cfg.Validate(), "TimeStep")
}
