package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFileFlag(t *testing.T) {
	dir := t.TempDir()
	file := writeCatalog(t, "products: []\n")

	require.NoError(t, validateFileFlag("config", ""))
	require.NoError(t, validateFileFlag("config", file))

	err := validateFileFlag("config", filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "--config file does not exist")

	err = validateFileFlag("catalog", dir)
	require.ErrorContains(t, err, "is a directory")
}

func TestRootRejectsMissingConfig(t *testing.T) {
	_, _, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "catalog")
	require.ErrorContains(t, err, "--config file does not exist")
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, _, err := executeCommand(t, "catalog", "extra")
	require.Error(t, err)
}

func TestConfigFileSettingsApply(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "twisted.yaml")
	writeFile(t, cfg, "currency: EUR\n")

	stdout, _, err := executeCommand(t, "--config", cfg, "catalog")
	require.NoError(t, err)
	require.Contains(t, stdout, "299.00 EUR")
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "twisted.yaml")
	writeFile(t, cfg, "log_level: loud\n")

	_, _, err := executeCommand(t, "--config", cfg, "catalog")
	require.ErrorContains(t, err, "loading settings")
}
