package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install PACKAGE...",
		Short: "Install packages",
		Long: `Install one or more packages with the configured package tool.
The tool resolves and downloads dependencies itself; yumctl only drives it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), args)
		},
	}

	return cmd
}

func runInstall(ctx context.Context, packages []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	for _, name := range packages {
		if err := backend.Install(ctx, name); err != nil {
			return fmt.Errorf("failed to install %s: %w", name, err)
		}
		logger.Success("Installed package", logger.Fields{"package": name})
	}

	return nil
}
