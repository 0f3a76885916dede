package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/twistedcolors/storefront/internal/validation"
	twistederrors "github.com/twistedcolors/storefront/pkg/errors"
)

// DefaultEnvFile is read when present in the working directory.
const DefaultEnvFile = ".env"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions selects the optional sources merged over Defaults.
type LoadOptions struct {
	// ConfigPath is a YAML settings file. Empty skips it.
	ConfigPath string
	// EnvFile is a dotenv file. Empty means DefaultEnvFile, which may be
	// absent; an explicitly named file must exist.
	EnvFile string
}

// Load resolves settings from defaults, the YAML file, the dotenv file and
// the process environment, later sources winning, then validates them.
func Load(opts LoadOptions) (Settings, error) {
	settings := Defaults()

	if opts.ConfigPath != "" {
		if err := mergeFile(&settings, opts.ConfigPath); err != nil {
			return Settings{}, err
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Settings{}, err
	}

	if err := envconfig.Process(EnvPrefix, &settings); err != nil {
		return Settings{}, twistederrors.NewValidationError("environment", err.Error(), err)
	}

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// Validate checks a fully merged Settings value.
func Validate(s Settings) error {
	return validation.Struct(s)
}

func mergeFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return twistederrors.NewParseError(path, 0, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return twistederrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return twistederrors.NewParseError(path, 0, err)
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
