package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/archive"
	"github.com/spf13/cobra"
)

// NewSourceCmd creates the source command.
func NewSourceCmd() *cobra.Command {
	var (
		dest        string
		buildOption string
		archivePath string
	)

	cmd := &cobra.Command{
		Use:   "source PACKAGE",
		Short: "Fetch and prepare a package's sources",
		Long: `Download the source rpm for a package, install its build dependencies,
and unpack a ready-to-build source tree into the destination directory.
Requires the rpm-build and yum-utils helper packages; missing helpers are
installed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(cmd.Context(), args[0], dest, buildOption, archivePath)
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Destination directory for the prepared source tree")
	cmd.Flags().StringVar(&buildOption, "build-option", "", "rpmbuild stage option (default: -bp, prep only)")
	cmd.Flags().StringVar(&archivePath, "archive", "", "Also pack the prepared tree into this .tar.gz file")

	return cmd
}

func runSource(ctx context.Context, name, dest, buildOption, archivePath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	sourceDir, err := backend.GetSource(ctx, name, dest, buildOption)
	if err != nil {
		return fmt.Errorf("failed to retrieve sources for %s: %w", name, err)
	}
	logger.Success("Prepared source tree", logger.Fields{"package": name, "dir": sourceDir})

	if archivePath != "" {
		if err := archive.NewManager().Pack(ctx, sourceDir, archivePath); err != nil {
			return fmt.Errorf("failed to archive source tree: %w", err)
		}
		logger.Success("Packed source archive", logger.Fields{"archive": archivePath})
	}

	fmt.Println(sourceDir)
	return nil
}
