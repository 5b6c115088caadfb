package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for yumctl and the wrapped package tool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd.Context())
		},
	}

	return cmd
}

func runVersion(ctx context.Context) error {
	fmt.Printf("yumctl version %s\n", Version)
	fmt.Printf("Build date: %s\n", BuildDate)
	fmt.Printf("Git commit: %s\n", GitCommit)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		// Still useful without the tool installed.
		logger.Debugf("package tool version unavailable: %v", err)
		return nil
	}

	if sv := backend.SemVer(); sv != nil {
		fmt.Printf("%s version: %s\n", cfg.Tool.Command, sv)
	} else {
		fmt.Printf("%s version: %s\n", cfg.Tool.Command, backend.Version())
	}

	return nil
}
