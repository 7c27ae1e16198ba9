package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashcode/flashweb/cmd/flashweb-cli/internal/topics"
	"github.com/flashcode/flashweb/internal/topicmgr"
)

// topicsValidateCmd represents the topics validate command
var topicsValidateCmd = &cobra.Command{
	Use:   "validate <topic-name>",
	Short: "Validate a topic definition",
	Long: `Check that a topic name follows the naming rules (lowercase, dot-separated,
no reserved prefix) and that the registered definition is complete.

Examples:
  flashweb-cli topics validate landing.glitch.changed
  flashweb-cli topics validate Invalid.Topic        # name format error`,
	Args: cobra.ExactArgs(1),
	RunE: topicsValidateHandler,
}

func topicsValidateHandler(cmd *cobra.Command, args []string) error {
	topicName := args[0]

	manager, err := topics.Initialize()
	if err != nil {
		return fmt.Errorf("failed to initialize topics: %w", err)
	}

	validator := topicmgr.NewValidator()
	nameErr := validator.ValidateName(topicName)

	topic, found := manager.Get(topicName)
	var defErr error
	if found {
		defErr = validator.ValidateDefinition(topic)
	} else {
		defErr = fmt.Errorf("topic '%s' not found", topicName)
	}

	out := cmd.OutOrStdout()
	topics.DisplayValidationResult(out, topic, nameErr, defErr)
	if nameErr != nil {
		return nameErr
	}
	return defErr
}

func init() {
	topicsCmd.AddCommand(topicsValidateCmd)
}
