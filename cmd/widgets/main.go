// Package main is the entry point for the widgets CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          "widgets",
		Short:        "Interactive widget playground in the terminal",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeTUI(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to widgets.toml (default: search upward from the working directory)")

	root.AddCommand(
		initCmd(),
		validateCmd(),
	)
	return root
}
