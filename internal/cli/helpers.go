package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/config"
	"github.com/glorpus-work/yumctl/pkg/hooks"
	"github.com/glorpus-work/yumctl/pkg/repofile"
	"github.com/glorpus-work/yumctl/pkg/rpm"
	"github.com/glorpus-work/yumctl/pkg/runner"
	"github.com/glorpus-work/yumctl/pkg/yum"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	LogLevel     *string
	OutputFormat *string
)

// loadConfig loads the configuration, applies CLI flag overrides, and
// points the global logger at the configured level and format.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if LogLevel != nil && *LogLevel != "" {
		cfg.Settings.LogLevel = *LogLevel
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	format := logger.FormatText
	if cfg.Settings.OutputFormat == "json" {
		format = logger.FormatJSON
	}
	logger.InitLogger(cfg.Settings.LogLevel, format)

	return cfg, nil
}

// buildBackend assembles the package backend from the configuration.
func buildBackend(ctx context.Context, cfg *config.Config) (*yum.Backend, error) {
	run := runner.NewExecRunner()

	hookManager := hooks.NewHookManager()
	if cfg.Settings.HooksDir != "" {
		if err := hooks.LoadHooksFromDir(hookManager, cfg.Settings.HooksDir); err != nil {
			return nil, fmt.Errorf("failed to load hooks: %w", err)
		}
	}

	opts := cfg.BackendOptions()
	opts.Hooks = hookManager

	backend, err := yum.New(ctx, run, rpm.NewBackend(run), repofile.NewManager(cfg.Repo.File, run), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", cfg.Tool.Command, err)
	}

	return backend, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// If we can't get the default path, use an empty string which will cause a more descriptive error later
		// when the config file is actually being read/written
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}
