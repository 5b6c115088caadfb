package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/spf13/cobra"
)

// NewUpgradeCmd creates the upgrade command.
func NewUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upgrade [PACKAGE...]",
		Aliases: []string{"update"},
		Short:   "Upgrade packages",
		Long: `Upgrade the named packages, or every installed package when none
are named.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpgrade(cmd.Context(), args)
		},
	}

	return cmd
}

func runUpgrade(ctx context.Context, packages []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		if err := backend.Upgrade(ctx, ""); err != nil {
			return fmt.Errorf("failed to upgrade packages: %w", err)
		}
		logger.Success("Upgraded all packages")
		return nil
	}

	for _, name := range packages {
		if err := backend.Upgrade(ctx, name); err != nil {
			return fmt.Errorf("failed to upgrade %s: %w", name, err)
		}
		logger.Success("Upgraded package", logger.Fields{"package": name})
	}

	return nil
}
