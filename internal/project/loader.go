package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dosanma1/modelforge/internal/errors"
)

// Environment variable prefix, e.g. MODELFORGE_DEFAULTS_DRIVER.
const envPrefix = "MODELFORGE"

// Loader reads the project file, letting environment variables override it.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", ConfigVersion)
	v.SetDefault("defaults.driver", "orm")
	v.SetDefault("defaults.format", "xml")

	return &Loader{v: v}
}

// Load reads and validates the project file.
func (l *Loader) Load(configFile string) (*Config, error) {
	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("project file not found", configFile, "run modelforge init")
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	return &cfg, nil
}

// FindRoot walks up from dir looking for the project file.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.NewNotFoundError(
		ConfigFileName+" not found in current directory or any parent directory",
		"",
		"run modelforge init",
	)
}
