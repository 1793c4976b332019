package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultEnvFile    = ".env"
	DefaultOutput     = "table"
	DefaultConfigFile = ".stc.toml"
	ConfigEnvVar      = "STC_CONFIG"
)

type Config struct {
	Keys    KeysConfig    `toml:"keys"`
	Cleanup CleanupConfig `toml:"cleanup"`
	Audit   AuditConfig   `toml:"audit"`

	// Path is where the config was read from, empty when defaults were used.
	Path string `toml:"-"`

	// Unknown lists keys present in the file that were not recognised.
	Unknown []string `toml:"-"`
}

type KeysConfig struct {
	EnvFile string `toml:"env_file"`
	Output  string `toml:"output"`
}

type CleanupConfig struct {
	Blacklist []string `toml:"blacklist"`
}

type AuditConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keys: KeysConfig{
			EnvFile: DefaultEnvFile,
			Output:  DefaultOutput,
		},
	}
}

// ResolvePath picks the config file to read. explicit reports whether the
// path was requested by the user rather than the built-in default.
func ResolvePath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if envPath := os.Getenv(ConfigEnvVar); envPath != "" {
		return envPath, true
	}
	return DefaultConfigFile, false
}

// Load reads the configuration selected by flagPath (see ResolvePath) and
// fills unset values with defaults.
func Load(flagPath string) (*Config, error) {
	path, explicit := ResolvePath(flagPath)
	config := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigNotFound, path)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	unknown, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if config.Keys.EnvFile == "" {
		config.Keys.EnvFile = DefaultEnvFile
	}
	if config.Keys.Output == "" {
		config.Keys.Output = DefaultOutput
	}
	config.Path = path
	config.Unknown = unknown

	return config, nil
}
