package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRepoCmd creates the repo command with subcommands.
func NewRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories",
		Long:  "Add, remove, and list repositories in the managed repository file",
	}

	cmd.AddCommand(
		newRepoAddCmd(),
		newRepoRemoveCmd(),
		newRepoListCmd(),
	)

	return cmd
}

func newRepoAddCmd() *cobra.Command {
	var options []string

	cmd := &cobra.Command{
		Use:   "add URL",
		Short: "Add a repository",
		Long: `Add a repository by base URL. A new uniquely named section is written
to the managed repository file; adding the same URL twice is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoAdd(cmd.Context(), args[0], options)
		},
	}

	cmd.Flags().StringArrayVar(&options, "option", nil, "Extra INI option for the new section (key=value, repeatable)")

	return cmd
}

func newRepoRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove URL",
		Short: "Remove a repository",
		Long:  "Remove the repository section matching the base URL from the managed repository file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoRemove(cmd.Context(), args[0])
		},
	}

	return cmd
}

func newRepoListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List managed repositories",
		Long:  "List the repositories in the managed repository file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepoList(cmd.Context())
		},
	}

	return cmd
}

func runRepoAdd(ctx context.Context, url string, optionPairs []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	options, err := parseRepoOptions(optionPairs)
	if err != nil {
		return err
	}
	options = mergeRepoOptions(cfg.Repo.DefaultOptions, options)

	added, err := backend.AddRepo(ctx, url, options)
	if err != nil {
		return fmt.Errorf("failed to add repository %s: %w", url, err)
	}
	if !added {
		logger.Info("Repository already configured", logger.Fields{"url": url})
		return nil
	}

	logger.Success("Added repository", logger.Fields{"url": url, "file": backend.RepoFilePath()})
	return nil
}

func runRepoRemove(ctx context.Context, url string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	removed, err := backend.RemoveRepo(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to remove repository %s: %w", url, err)
	}
	if !removed {
		logger.Info("No repository with that URL", logger.Fields{"url": url})
		return nil
	}

	logger.Success("Removed repository", logger.Fields{"url": url})
	return nil
}

func runRepoList(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend, err := buildBackend(ctx, cfg)
	if err != nil {
		return err
	}

	repos, err := backend.ListRepos()
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repos) == 0 {
		fmt.Printf("No repositories in %s\n", backend.RepoFilePath())
		return nil
	}

	tabWriter := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "SECTION\tBASEURL\tNAME")
	for _, repo := range repos {
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\n", repo.Section, repo.BaseURL, repo.Name)
	}
	_ = tabWriter.Flush()

	return nil
}

// parseRepoOptions splits repeated key=value flags into a map.
func parseRepoOptions(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	options := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, errors.Wrap(errors.ErrInvalidRepoOption, pair)
		}
		options[key] = value
	}
	return options, nil
}

// mergeRepoOptions layers CLI options over the configured defaults.
func mergeRepoOptions(defaults, overrides map[string]string) map[string]string {
	if len(defaults) == 0 {
		return overrides
	}

	merged := make(map[string]string, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}
