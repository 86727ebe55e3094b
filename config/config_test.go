package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestDefault is valid and points at the top-left corner heading right.
func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	entry, err := c.BeamEntry()
	require.NoError(t, err)
	assert.Equal(t, beam.State{X: 0, Y: 0, Dir: beam.Right}, entry)
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)
}

// TestLoad_Full reads every key.
func TestLoad_Full(t *testing.T) {
	path := writeFile(t, `
input: layouts/contraption.txt.zst
mode: maximize
entry:
  x: 3
  y: 0
  dir: down
workers: 4
render: true
log_level: debug
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Input:    "layouts/contraption.txt.zst",
		Mode:     config.ModeMaximize,
		Entry:    config.Entry{X: 3, Y: 0, Dir: "down"},
		Workers:  4,
		Render:   true,
		LogLevel: "debug",
	}, c)
}

// TestLoad_Partial keeps defaults for missing keys.
func TestLoad_Partial(t *testing.T) {
	c, err := config.Load(writeFile(t, "input: a.txt\n"))
	require.NoError(t, err)
	want := config.Default()
	want.Input = "a.txt"
	assert.Equal(t, want, c)
}

// TestLoad_Errors covers a missing file, broken YAML and each validation rule.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "mode: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run.yaml")

	cases := map[string]string{
		"BadMode":      "mode: sideways\n",
		"BadDirection": "entry: {dir: north}\n",
		"NegWorkers":   "workers: -1\n",
		"BadLevel":     "log_level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
