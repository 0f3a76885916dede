// Package config resolves runtime settings for the storefront CLI.
package config

import (
	"time"

	"github.com/twistedcolors/storefront/internal/contact"
)

// EnvPrefix is prepended to every environment variable, e.g. TWISTED_LOG_LEVEL.
const EnvPrefix = "TWISTED"

// Settings is the resolved configuration for one run.
type Settings struct {
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=trace debug info warn error disabled"`
	// LogFile receives log output while the storefront owns the terminal.
	// Empty discards logs in interactive mode.
	LogFile     string        `yaml:"log_file" envconfig:"LOG_FILE"`
	CatalogPath string        `yaml:"catalog" envconfig:"CATALOG"`
	AckDuration time.Duration `yaml:"ack_duration" envconfig:"ACK_DURATION" validate:"min=500ms,max=1m"`
	Currency    string        `yaml:"currency" envconfig:"CURRENCY" validate:"required,max=4"`
	// ASCII swaps unicode glyphs for plain-text fallbacks.
	ASCII          bool   `yaml:"ascii" envconfig:"ASCII"`
	InitialSection string `yaml:"initial_section" envconfig:"INITIAL_SECTION" validate:"oneof=home shop about contact"`
	AltScreen      bool   `yaml:"alt_screen" envconfig:"ALT_SCREEN"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		LogLevel:       "info",
		AckDuration:    contact.DefaultAckDuration,
		Currency:       "$",
		InitialSection: "home",
		AltScreen:      true,
	}
}
