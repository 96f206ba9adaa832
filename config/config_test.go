package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Len(t, cfg.Sources, 3)
	assert.Equal(t, "rus.xlsx", cfg.Sources[0].Path)
	assert.Equal(t, "русский вариант", cfg.Sources[0].Variant)
	assert.Equal(t, "русская речь билингва", cfg.Sources[1].Variant)
	assert.Equal(t, "кабардинский язык", cfg.Sources[2].Variant)
	assert.Equal(t, "info", cfg.Pipeline.LogLvl)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Sources, 3)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.yaml")
	content := `
pipeline:
  log_level: debug
sources:
  - path: data/rus.csv
    variant: русский вариант
report:
  csv_dir: out
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Pipeline.LogLvl)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "data/rus.csv", cfg.Sources[0].Path)
	assert.Equal(t, "out", cfg.Report.CSVDir)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: {broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLogLevelEnvOverride(t *testing.T) {
	t.Setenv("TEMPO_LOG_LEVEL", "warning")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.Pipeline.LogLvl)
}

func TestLoadEmptySources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: []"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
