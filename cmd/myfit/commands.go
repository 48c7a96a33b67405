package main

import (
	"github.com/spf13/cobra"
	"github.com/terraincognita07/myfit/internal/cli"
)

var (
	// Version is set at build time
	Version = "dev"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "myfit",
		Short: "Self-hosted workout tracker",
		Long: `myfit records workout sessions with a stopwatch, estimates energy use
from a fixed MET table and tracks weekly duration goals.

Running myfit without a subcommand starts the web server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newResetPasswordCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func newResetPasswordCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "reset-password [email]",
		Short: "Set a temporary password and force a change on next login",
		Long: `Generate a temporary password for an account and print it.

Example:
  myfit reset-password runner@example.com --db data/myfit.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunResetPasswordCommand(dbPath, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", resolveDBPath(), "SQLite database path (default from DB_PATH)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("myfit %s\n", Version)
		},
	}
}
