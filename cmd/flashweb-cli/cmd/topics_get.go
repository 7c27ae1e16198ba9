package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashcode/flashweb/cmd/flashweb-cli/internal/topics"
)

var getOutputFormat string

// topicsGetCmd represents the topics get command
var topicsGetCmd = &cobra.Command{
	Use:   "get <topic-name>",
	Short: "Get detailed information about a specific topic",
	Long: `Show the name, scope, module, description, pattern, example and metadata
of one registered topic.

Examples:
  flashweb-cli topics get landing.glitch.changed
  flashweb-cli topics get ws.html.direct --format json`,
	Args: cobra.ExactArgs(1),
	RunE: topicsGetHandler,
}

func topicsGetHandler(cmd *cobra.Command, args []string) error {
	manager, err := topics.Initialize()
	if err != nil {
		return fmt.Errorf("failed to initialize topics: %w", err)
	}

	topic, found := manager.Get(args[0])
	if !found {
		return fmt.Errorf("topic '%s' not found; use 'flashweb-cli topics list' to see all available topics", args[0])
	}
	return topics.DisplayTopicDetails(cmd.OutOrStdout(), topic, getOutputFormat)
}

func init() {
	topicsCmd.AddCommand(topicsGetCmd)

	topicsGetCmd.Flags().StringVarP(&getOutputFormat, "format", "f", "table", "Output format (table, json)")
}
