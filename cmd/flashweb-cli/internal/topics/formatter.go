package topics

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/flashcode/flashweb/internal/topicmgr"
)

// TopicDisplay represents a topic for display purposes
type TopicDisplay struct {
	Name        string                 `json:"name"`
	Scope       string                 `json:"scope"`
	Module      string                 `json:"module"`
	Description string                 `json:"description"`
	Pattern     string                 `json:"pattern"`
	Example     string                 `json:"example"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func toDisplay(topic topicmgr.Topic) TopicDisplay {
	return TopicDisplay{
		Name:        topic.Name(),
		Scope:       string(topic.Scope()),
		Module:      topic.Module(),
		Description: topic.Description(),
		Pattern:     topic.Pattern(),
		Example:     topic.Example(),
		Metadata:    topic.Metadata(),
	}
}

// DisplayTopicsTable writes topics as an aligned table.
func DisplayTopicsTable(out io.Writer, topics []topicmgr.Topic) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tSCOPE\tMODULE\tDESCRIPTION\tEXAMPLE")
	fmt.Fprintln(w, "----\t-----\t------\t-----------\t-------")

	for _, topic := range topics {
		module := topic.Module()
		if module == "" {
			module = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			topic.Name(),
			topic.Scope(),
			module,
			truncateString(topic.Description(), 40),
			truncateString(topic.Example(), 30))
	}
	return w.Flush()
}

// DisplayTopicsJSON writes topics as JSON.
func DisplayTopicsJSON(out io.Writer, topics []topicmgr.Topic) error {
	topicDisplays := make([]TopicDisplay, len(topics))
	for i, topic := range topics {
		topicDisplays[i] = toDisplay(topic)
	}

	output := struct {
		Topics []TopicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}{
		Topics: topicDisplays,
		Count:  len(topicDisplays),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// DisplayTopicDetails writes every field of one topic.
func DisplayTopicDetails(out io.Writer, topic topicmgr.Topic, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(toDisplay(topic))
	}

	module := topic.Module()
	if module == "" {
		module = "(framework)"
	}
	fmt.Fprintf(out, "Name:        %s\n", topic.Name())
	fmt.Fprintf(out, "Scope:       %s\n", topic.Scope())
	fmt.Fprintf(out, "Module:      %s\n", module)
	fmt.Fprintf(out, "Description: %s\n", topic.Description())
	fmt.Fprintf(out, "Pattern:     %s\n", topic.Pattern())
	fmt.Fprintf(out, "Example:     %s\n", topic.Example())

	metadata := topic.Metadata()
	if len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(out, "Metadata:")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %v\n", k, metadata[k])
		}
	}
	return nil
}

// DisplayValidationResult writes topic validation results.
func DisplayValidationResult(out io.Writer, topic topicmgr.Topic, nameErr, defErr error) {
	if nameErr != nil {
		fmt.Fprintf(out, "❌ Topic name validation failed: %v\n", nameErr)
		return
	}
	if defErr != nil {
		fmt.Fprintf(out, "❌ Topic validation failed: %v\n", defErr)
		return
	}

	module := topic.Module()
	if module == "" {
		module = "(framework)"
	}
	fmt.Fprintf(out, "✅ Topic '%s' is valid\n", topic.Name())
	fmt.Fprintf(out, "   Scope: %s\n", topic.Scope())
	fmt.Fprintf(out, "   Module: %s\n", module)
	fmt.Fprintf(out, "   Description: %s\n", topic.Description())
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}
