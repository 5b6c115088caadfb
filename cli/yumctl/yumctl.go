package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/yumctl/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	logLevel     string
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yumctl",
		Short: "A thin driver for yum-compatible package tools",
		Long: `yumctl drives a yum-compatible package tool (yum, dnf) from one place:
- Transactions: install, remove, upgrade
- Repositories: add, remove, and list entries in a managed repo file
- Sources: fetch and prepare source trees, query capability providers`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (error, warn, info, debug)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.LogLevel = &logLevel
	cli.OutputFormat = &outputFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewInstallCmd(),
		cli.NewRemoveCmd(),
		cli.NewUpgradeCmd(),
		cli.NewRepoCmd(),
		cli.NewProvidesCmd(),
		cli.NewSourceCmd(),
		cli.NewCleanCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
