package cmd

import (
	"github.com/spf13/cobra"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Explore the FlashWeb message bus topics",
	Long: `The topics command lists, inspects and validates the topics used on the
FlashWeb message bus. The landing module publishes glitch flips on a module
topic; the websocket bridge listens on the framework topics.

Available subcommands:
  list      List all registered topics with optional filtering
  get       Get detailed information about a specific topic
  validate  Validate a topic name and definition

Examples:
  flashweb-cli topics list
  flashweb-cli topics list --module=landing
  flashweb-cli topics list --scope=framework
  flashweb-cli topics get landing.glitch.changed
  flashweb-cli topics validate ws.html.direct`,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
