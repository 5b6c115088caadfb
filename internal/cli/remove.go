package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove PACKAGE...",
		Aliases: []string{"erase"},
		Short:   "Remove packages",
		Long:    "Remove one or more installed packages with the configured package tool.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), args)
		},
	}

	return cmd
}

func runRemove(ctx context.Context, packages []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	for _, name := range packages {
		if err := backend.Remove(ctx, name); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
		logger.Success("Removed package", logger.Fields{"package": name})
	}

	return nil
}
