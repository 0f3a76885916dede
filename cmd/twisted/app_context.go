package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/twistedcolors/storefront/internal/catalog"
	"github.com/twistedcolors/storefront/internal/config"
	"github.com/twistedcolors/storefront/internal/logger"
)

// appContext is everything a command needs after settings are resolved.
type appContext struct {
	settings config.Settings
	log      *logger.Logger
	catalog  *catalog.Catalog
	closer   io.Closer
}

// Close releases the log file, if one was opened.
func (a *appContext) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// newAppContext resolves settings and builds the logger and catalog. When
// interactive is true the terminal belongs to the storefront, so logs go to
// the log file or nowhere.
func newAppContext(cmd *cobra.Command, flags *rootFlags, operation string, interactive bool) (*appContext, error) {
	settings, err := config.Load(config.LoadOptions{ConfigPath: flags.configPath, EnvFile: flags.envFile})
	if err != nil {
		return nil, newCommandError(operation, "loading settings", err, "Check the settings file and TWISTED_* environment variables.")
	}
	applyFlagOverrides(&settings, flags)
	if err := config.Validate(settings); err != nil {
		return nil, newCommandError(operation, "validating settings", err, "Check the command line flags.")
	}

	app := &appContext{settings: settings}

	var writer io.Writer = cmd.ErrOrStderr()
	humanReadable := true
	if settings.LogFile != "" {
		file, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, newCommandError(operation, "opening log file", err, "Choose a writable --log-file location.")
		}
		writer = file
		humanReadable = false
		app.closer = file
	} else if interactive {
		writer = io.Discard
	}

	log, err := logger.New(logger.Options{Level: settings.LogLevel, HumanReadable: humanReadable, Writer: writer})
	if err != nil {
		_ = app.Close()
		return nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn, error or disabled.")
	}
	app.log = log.With("command", operation)

	if settings.CatalogPath != "" {
		cat, err := catalog.Load(settings.CatalogPath)
		if err != nil {
			_ = app.Close()
			return nil, newCommandError(operation, "loading catalog", err, "Fix the catalog file or drop --catalog to use the built-in one.")
		}
		app.catalog = cat
		app.log.Info("catalog loaded from " + settings.CatalogPath)
	} else {
		app.catalog = catalog.Default()
	}

	return app, nil
}

func applyFlagOverrides(s *config.Settings, flags *rootFlags) {
	if flags.verbose {
		s.LogLevel = "debug"
	}
	if flags.logFile != "" {
		s.LogFile = flags.logFile
	}
	if flags.catalogPath != "" {
		s.CatalogPath = flags.catalogPath
	}
}
