// Package main is the entry point for the Herald Discord bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "herald-bot",
		Short: "Herald, a Hunter: The Reckoning 5E Discord bot",
		Long: `Herald manages Hunter: The Reckoning 5E characters over Discord slash
commands and resolves dice pools with edge and desperation dice.

Running without a subcommand starts the bot.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newRollCmd())
	rootCmd.AddCommand(newRouseCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
