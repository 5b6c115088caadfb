package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/spf13/cobra"
)

// NewProvidesCmd creates the provides command.
func NewProvidesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provides CAPABILITY",
		Short: "Find the package providing a capability",
		Long: `Query which package provides the named capability. The capability is
matched as a path glob as well, so plain file names resolve too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvides(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runProvides(ctx context.Context, capability string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	match, err := backend.Provides(ctx, capability)
	if err != nil {
		return fmt.Errorf("failed to query providers of %s: %w", capability, err)
	}
	if match == "" {
		logger.Info("No package provides capability", logger.Fields{"capability": capability})
		return nil
	}

	fmt.Println(match)
	return nil
}
