// Package config provides configuration management for yumctl. It handles
// loading, validating, and saving application settings: which package tool
// to wrap, where the managed repository file lives, hook script locations,
// and logging behavior. The package supports YAML configuration files and
// provides sensible defaults while allowing customization through the file
// or CLI flags.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/fsutil"
	"github.com/glorpus-work/yumctl/pkg/repofile"
	"github.com/glorpus-work/yumctl/pkg/yum"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Tool selection and transaction behavior
	Tool ToolConfig `yaml:"tool"`

	// Managed repository file
	Repo RepoConfig `yaml:"repo"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// ToolConfig selects the package tool wrapped by the backend.
type ToolConfig struct {
	// Command is the tool to invoke, a name resolved on PATH or an
	// absolute path.
	Command string `yaml:"command"`

	// Transient overrides image-mode detection when set. Unset means
	// autodetect from the running system.
	Transient *bool `yaml:"transient,omitempty"`
}

// RepoConfig describes the repository file edited by the repo commands.
type RepoConfig struct {
	// File is the INI repository file new repositories are written to.
	File string `yaml:"file"`

	// DefaultOptions are extra INI options added to every new repository
	// section, e.g. gpgkey or priority. A repo add --option with the same
	// key wins.
	DefaultOptions map[string]string `yaml:"default_options,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// HooksDir holds the hook scripts run around package operations.
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	LogLevel     string `yaml:"log_level"`     // error, warn, info, debug
}

// YAMLIndent is the number of spaces to use for YAML indentation.
const YAMLIndent = 2

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Tool: ToolConfig{
			Command: yum.DefaultTool,
		},
		Repo: RepoConfig{
			File: repofile.DefaultPath,
		},
		Settings: Settings{
			OutputFormat: "text",
			LogLevel:     "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file, atomically via a temporary
// file next to the target.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := fsutil.CreateFilePerm(tempPath, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	if err := os.Chmod(absPath, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileChmod, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Tool.Command == "" {
		return errors.ErrEmptyToolCommand
	}
	if c.Repo.File == "" {
		return errors.ErrEmptyRepoFilePath
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Settings.OutputFormat] {
		return errors.ErrInvalidOutputFormatWithDetails(c.Settings.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Settings.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(c.Settings.LogLevel)
	}
	return nil
}

// BackendOptions translates the tool configuration into backend options.
// Hook wiring is left to the caller since it needs the loaded hook manager.
func (c *Config) BackendOptions() yum.Options {
	return yum.Options{
		Tool:      c.Tool.Command,
		Transient: c.Tool.Transient,
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, "yumctl", "config.yaml"), nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Tool.Command == "" {
		c.Tool.Command = defaults.Tool.Command
	}
	if c.Repo.File == "" {
		c.Repo.File = defaults.Repo.File
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
