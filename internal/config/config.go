// Package config loads the application config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "pomodoro"
	yamlFileName   = "config.yaml"
	tomlFileName   = "config.toml"
	stateFileName  = "state.json"
	defaultLevel   = "info"
	defaultVariant = VariantAuto
)

// Variant names accepted in the config file and on the command line.
const (
	VariantAuto    = "auto"
	VariantDesktop = "desktop"
	VariantMobile  = "mobile"
)

// ErrInvalidConfig reports an unusable config value.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the application configuration.
type Config struct {
	LogLevel      string
	LogFile       string
	Variant       string
	SoundFile     string
	Notifications bool
	StateFile     string
	// BreakReminder opens a small reminder window on the desktop when a
	// break begins.
	BreakReminder bool

	// Path is the file the config was read from, empty if none was found.
	Path string
}

type fileConfig struct {
	LogLevel      string `yaml:"log_level" toml:"log_level"`
	LogFile       string `yaml:"log_file" toml:"log_file"`
	Variant       string `yaml:"variant" toml:"variant"`
	SoundFile     string `yaml:"sound_file" toml:"sound_file"`
	Notifications *bool  `yaml:"notifications" toml:"notifications"`
	StateFile     string `yaml:"state_file" toml:"state_file"`
	BreakReminder *bool  `yaml:"break_reminder" toml:"break_reminder"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:      defaultLevel,
		Variant:       defaultVariant,
		Notifications: true,
		BreakReminder: true,
	}
}

// Dir returns the per-user config directory of the application.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName), nil
}

// Load reads the config at path. An empty path searches the config directory
// for config.yaml, then config.toml, and falls back to defaults when neither
// exists. An explicit path must exist.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		found, err := findConfigFile()
		if err != nil || found == "" {
			return config, err
		}
		path = found
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData fileConfig
	if isTOML(path) {
		if err := toml.Unmarshal(rawData, &fileData); err != nil {
			return config, fmt.Errorf("parse config toml: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return config, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyFileConfig(&config, fileData)
	config.Path = path
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks enumerated values.
func (config Config) Validate() error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, config.LogLevel)
	}
	switch config.Variant {
	case VariantAuto, VariantDesktop, VariantMobile:
	default:
		return fmt.Errorf("%w: variant %q", ErrInvalidConfig, config.Variant)
	}
	return nil
}

// StatePath returns the terminal key-value file, defaulting to state.json in
// the config directory.
func (config Config) StatePath() (string, error) {
	if config.StateFile != "" {
		return expandHome(config.StateFile)
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// LogPath returns the log file with ~ expanded, or "" when file logging is off.
func (config Config) LogPath() (string, error) {
	if config.LogFile == "" {
		return "", nil
	}
	return expandHome(config.LogFile)
}

func findConfigFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{yamlFileName, tomlFileName} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat config file: %w", err)
		}
	}
	return "", nil
}

func applyFileConfig(config *Config, fileData fileConfig) {
	if level := strings.ToLower(strings.TrimSpace(fileData.LogLevel)); level != "" {
		config.LogLevel = level
	}
	if variant := strings.ToLower(strings.TrimSpace(fileData.Variant)); variant != "" {
		config.Variant = variant
	}
	if fileData.Notifications != nil {
		config.Notifications = *fileData.Notifications
	}
	if fileData.BreakReminder != nil {
		config.BreakReminder = *fileData.BreakReminder
	}
	config.LogFile = strings.TrimSpace(fileData.LogFile)
	config.SoundFile = strings.TrimSpace(fileData.SoundFile)
	config.StateFile = strings.TrimSpace(fileData.StateFile)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
