package config

import (
	"strconv"

	"github.com/glorpus-work/yumctl/pkg/errors"
)

// transientAuto is the SetValue sentinel that reverts tool.transient to
// image-mode autodetection.
const transientAuto = "auto"

// SetValue sets a configuration value by key.
// Supported keys:
//   - tool.command: string - Package tool to invoke (name or path)
//   - tool.transient: bool|"auto" - Force or suppress --transient, or autodetect
//   - repo.file: string - Path of the managed repository file
//   - hooks_dir: string - Directory holding hook scripts
//   - output_format: string - Output format (text, json)
//   - log_level: string - Logging level (error, warn, info, debug)
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "tool.command":
		c.Tool.Command = value
	case "tool.transient":
		if value == transientAuto {
			c.Tool.Transient = nil
			return nil
		}
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidBoolValue, "%s=%s", key, value)
		}
		c.Tool.Transient = &boolVal
	case "repo.file":
		c.Repo.File = value
	case "hooks_dir":
		c.Settings.HooksDir = value
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return errors.Wrap(errors.ErrUnknownConfigKey, key)
	}
	return nil
}

// GetValue returns a configuration value as a string by key.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "tool.command":
		return c.Tool.Command, nil
	case "tool.transient":
		if c.Tool.Transient == nil {
			return transientAuto, nil
		}
		return strconv.FormatBool(*c.Tool.Transient), nil
	case "repo.file":
		return c.Repo.File, nil
	case "hooks_dir":
		return c.Settings.HooksDir, nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", errors.Wrap(errors.ErrUnknownConfigKey, key)
	}
}

// ToMap returns all settable configuration values keyed like SetValue.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)
	for _, key := range []string{
		"tool.command",
		"tool.transient",
		"repo.file",
		"hooks_dir",
		"output_format",
		"log_level",
	} {
		value, err := c.GetValue(key)
		if err != nil {
			continue
		}
		result[key] = value
	}
	return result
}
