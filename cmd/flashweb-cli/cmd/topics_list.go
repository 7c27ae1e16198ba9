package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flashcode/flashweb/cmd/flashweb-cli/internal/topics"
	"github.com/flashcode/flashweb/internal/topicmgr"
)

var (
	listOutputFormat string
	listModuleFilter string
	listScopeFilter  string
)

// topicsListCmd represents the topics list command
var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered topics",
	Long: `List all topics registered by the FlashWeb modules.

Examples:
  flashweb-cli topics list                      # All topics in table format
  flashweb-cli topics list --format json        # All topics in JSON format
  flashweb-cli topics list --module landing     # Topics owned by the landing module
  flashweb-cli topics list --scope framework    # Framework topics only

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format with metadata`,
	RunE: topicsListHandler,
}

func topicsListHandler(cmd *cobra.Command, args []string) error {
	manager, err := topics.Initialize()
	if err != nil {
		return fmt.Errorf("failed to initialize topics: %w", err)
	}

	var scope topicmgr.TopicScope
	if listScopeFilter != "" {
		if scope = parseScope(listScopeFilter); scope == "" {
			return fmt.Errorf("invalid scope '%s'. Valid scopes: framework, module", listScopeFilter)
		}
	}

	var topicList []topicmgr.Topic
	switch {
	case listModuleFilter != "":
		for _, topic := range manager.ListByModule(listModuleFilter) {
			if scope == "" || topic.Scope() == scope {
				topicList = append(topicList, topic)
			}
		}
	case scope != "":
		topicList = manager.ListByScope(scope)
	default:
		topicList = manager.List()
	}

	out := cmd.OutOrStdout()
	if len(topicList) == 0 {
		message := "No topics found"
		var filters []string
		if listModuleFilter != "" {
			filters = append(filters, fmt.Sprintf("module '%s'", listModuleFilter))
		}
		if listScopeFilter != "" {
			filters = append(filters, fmt.Sprintf("scope '%s'", listScopeFilter))
		}
		if len(filters) > 0 {
			message += " matching: " + strings.Join(filters, ", ")
		}
		fmt.Fprintln(out, message)
		return nil
	}

	switch listOutputFormat {
	case "json":
		return topics.DisplayTopicsJSON(out, topicList)
	case "table":
		return topics.DisplayTopicsTable(out, topicList)
	default:
		return fmt.Errorf("unsupported output format '%s'. Use 'table' or 'json'", listOutputFormat)
	}
}

// parseScope converts string scope to topicmgr.TopicScope
func parseScope(scopeStr string) topicmgr.TopicScope {
	switch strings.ToLower(scopeStr) {
	case "framework":
		return topicmgr.ScopeFramework
	case "module":
		return topicmgr.ScopeModule
	default:
		return ""
	}
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)

	topicsListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", "table", "Output format (table, json)")
	topicsListCmd.Flags().StringVarP(&listModuleFilter, "module", "m", "", "Filter topics by module name")
	topicsListCmd.Flags().StringVarP(&listScopeFilter, "scope", "s", "", "Filter topics by scope (framework, module)")
}
