// Package errors defines the sentinel errors shared across yumctl and
// small helpers for wrapping them with context. Callers are expected to
// test with errors.Is against the sentinels rather than matching message
// strings.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileChmod   = fmt.Errorf("failed to set config file permissions")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")

	// Config validation errors.
	ErrEmptyToolCommand    = fmt.Errorf("tool command cannot be empty")
	ErrEmptyRepoFilePath   = fmt.Errorf("repository file path cannot be empty")
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel     = fmt.Errorf("invalid log level")
	ErrInvalidBoolValue    = fmt.Errorf("invalid boolean value")
	ErrUnknownConfigKey    = fmt.Errorf("unknown configuration key")

	// Backend errors.
	ErrCommandNotFound = fmt.Errorf("package manager command not found")
	ErrEmptyPackage    = fmt.Errorf("package name cannot be empty")

	// Repository file errors.
	ErrRepoFileParse     = fmt.Errorf("failed to parse repository file")
	ErrRepoFileWrite     = fmt.Errorf("failed to write repository file")
	ErrRepoEmptyURL      = fmt.Errorf("repository URL cannot be empty")
	ErrInvalidRepoOption = fmt.Errorf("invalid repository option, expected key=value")

	// Capability lookup errors.
	ErrProvidesDisabled = fmt.Errorf("provides lookup is disabled: no capability query backend available")

	// Source retrieval errors.
	ErrNoDestination    = fmt.Errorf("destination path cannot be empty")
	ErrSourceDownload   = fmt.Errorf("failed to download source package")
	ErrSourceInstall    = fmt.Errorf("failed to install source package")
	ErrSourcePrepare    = fmt.Errorf("failed to prepare source package")
	ErrBuildDepsInstall = fmt.Errorf("failed to install build dependencies")
	ErrHelperInstall    = fmt.Errorf("failed to install helper package")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: error, warn, info, debug", ErrInvalidLogLevel, level)
}
