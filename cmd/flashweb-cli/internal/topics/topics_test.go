package topics

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashcode/flashweb/internal/topicmgr"
)

func sampleTopics() []topicmgr.Topic {
	return []topicmgr.Topic{
		topicmgr.DefineModule(topicmgr.TopicConfig{
			Name:        "landing.glitch.changed",
			Module:      "landing",
			Description: "The decorative glitch flag of the landing page flipped",
			Example:     `{"active":true}`,
		}),
		topicmgr.DefineFramework(topicmgr.TopicConfig{
			Name:        "ws.html.broadcast",
			Description: "HTML fragment for every client",
		}),
	}
}

func TestInitialize(t *testing.T) {
	manager, err := Initialize()
	require.NoError(t, err)

	glitch, ok := manager.Get("landing.glitch.changed")
	require.True(t, ok)
	assert.Equal(t, "landing", glitch.Module())
	assert.Len(t, manager.ListByScope(topicmgr.ScopeFramework), 4)
	assert.Len(t, manager.ListByModule("presence"), 1)
}

func TestDisplayTopicsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayTopicsTable(&buf, sampleTopics()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "landing.glitch.changed")
	assert.Contains(t, out, "The decorative glitch flag of the lan...")
	assert.Regexp(t, `ws\.html\.broadcast\s+framework\s+-\s+`, out)
}

func TestDisplayTopicsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayTopicsJSON(&buf, sampleTopics()))

	var got struct {
		Topics []TopicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "landing", got.Topics[0].Module)
	assert.Equal(t, "ws.html.broadcast", got.Topics[1].Pattern)
}

func TestDisplayTopicDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayTopicDetails(&buf, sampleTopics()[1], "table"))
	assert.Contains(t, buf.String(), "Module:      (framework)")

	buf.Reset()
	require.NoError(t, DisplayTopicDetails(&buf, sampleTopics()[0], "json"))
	var got TopicDisplay
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, `{"active":true}`, got.Example)
}

func TestDisplayValidationResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayValidationResult(&buf, sampleTopics()[0], nil, nil)
	assert.Contains(t, buf.String(), "✅ Topic 'landing.glitch.changed' is valid")

	buf.Reset()
	DisplayValidationResult(&buf, nil, errors.New("bad name"), nil)
	assert.Contains(t, buf.String(), "❌ Topic name validation failed: bad name")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "...", truncateString("abcdef", 2))
	assert.Equal(t, "Bônu...", truncateString("Bônus exclusivo", 7))
}
