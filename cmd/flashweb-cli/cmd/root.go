package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flashweb-cli",
	Short: "FlashWeb CLI tool",
	Long: `FlashWeb CLI is a command-line interface for the FlashWeb landing page.

Available commands:
  topics     Explore the message bus topics
  content    Print the landing page copy
  export     Write the page as a static site
  version    Print the CLI version

Use "flashweb-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
