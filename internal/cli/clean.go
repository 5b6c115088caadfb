package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/spf13/cobra"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the package tool's caches",
		Long:  "Drop the package tool's metadata and package caches (clean all).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context())
		},
	}

	return cmd
}

func runClean(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	if err := backend.CleanCache(ctx); err != nil {
		return fmt.Errorf("failed to clean caches: %w", err)
	}

	logger.Success("Cleaned caches", logger.Fields{"tool": cfg.Tool.Command})
	return nil
}
