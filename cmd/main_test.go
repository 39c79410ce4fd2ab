package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ParamsOverride(t *testing.T) {
	t.Setenv("PARAMETERS_FILE", "from-env.yaml")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.Model.ParametersFile)

	cfg, err = loadConfig("from-flag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "from-flag.yaml", cfg.Model.ParametersFile)
}

func TestSummaryCmd(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	params := ""
	cmd := summaryCmd(&params)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--lang", "nl"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "7.615.042")
}

func TestExportCmd(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	params := ""
	cmd := exportCmd(&params)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dir", dir})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 4)
	_, err := os.Stat(filepath.Join(dir, "scenario_results.csv"))
	assert.NoError(t, err)
}

func TestExportCmd_MissingParameters(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	params := filepath.Join(t.TempDir(), "missing.yaml")
	cmd := exportCmd(&params)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", t.TempDir()})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
