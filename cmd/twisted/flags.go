package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateRootFlags(flags *rootFlags) error {
	if err := validateFileFlag("config", flags.configPath); err != nil {
		return err
	}
	if err := validateFileFlag("env-file", flags.envFile); err != nil {
		return err
	}
	return validateFileFlag("catalog", flags.catalogPath)
}

// validateFileFlag checks that an optional path flag, when set, names an
// existing regular file.
func validateFileFlag(name, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve --%s path: %w", name, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("--%s file does not exist: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("--%s path %s is a directory", name, abs)
	}

	return nil
}
