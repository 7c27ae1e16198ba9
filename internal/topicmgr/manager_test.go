package topicmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Register(t *testing.T) {
	m := NewManager()

	glitch := DefineModule(TopicConfig{
		Name:        "landing.glitch.changed",
		Module:      "landing",
		Description: "glitch flag flipped",
	})
	broadcast := DefineFramework(TopicConfig{
		Name:        "ws.html.broadcast",
		Module:      "ignored",
		Description: "html fragment to every client",
	})

	require.NoError(t, m.Register(glitch))
	require.NoError(t, m.Register(broadcast))
	assert.Equal(t, 2, m.Count())

	assert.Equal(t, "landing.glitch.changed", glitch.Pattern(), "pattern defaults to the name")
	assert.Empty(t, broadcast.Module())

	got, ok := m.Get("landing.glitch.changed")
	require.True(t, ok)
	assert.Equal(t, glitch, got)

	err := m.Register(glitch)
	var topicErr *TopicError
	require.ErrorAs(t, err, &topicErr)
	assert.Equal(t, ErrorDuplicateRegistration, topicErr.Type)
}

func TestManager_RegisterRejectsInvalidTopics(t *testing.T) {
	tests := []struct {
		name  string
		topic Topic
	}{
		{"uppercase name", DefineModule(TopicConfig{Name: "Landing.glitch", Module: "landing", Description: "x"})},
		{"reserved prefix", DefineModule(TopicConfig{Name: "debug.glitch", Module: "landing", Description: "x"})},
		{"missing description", DefineModule(TopicConfig{Name: "landing.glitch", Module: "landing"})},
		{"missing module", DefineModule(TopicConfig{Name: "landing.glitch", Description: "x"})},
		{"framework prefix", DefineFramework(TopicConfig{Name: "landing.glitch", Description: "x"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			err := m.Register(tt.topic)

			var topicErr *TopicError
			require.ErrorAs(t, err, &topicErr)
			assert.Equal(t, ErrorValidationFailed, topicErr.Type)
			assert.Zero(t, m.Count())
		})
	}
}

func TestManager_Listing(t *testing.T) {
	m := NewManager()
	m.MustRegister(DefineModule(TopicConfig{Name: "landing.view.mounted", Module: "landing", Description: "a"}))
	m.MustRegister(DefineModule(TopicConfig{Name: "landing.glitch.changed", Module: "landing", Description: "b"}))
	m.MustRegister(DefineFramework(TopicConfig{Name: "ws.html.broadcast", Description: "c"}))

	names := func(topics []Topic) []string {
		out := make([]string, 0, len(topics))
		for _, t := range topics {
			out = append(out, t.Name())
		}
		return out
	}

	assert.Equal(t, []string{"landing.glitch.changed", "landing.view.mounted", "ws.html.broadcast"}, names(m.List()))
	assert.Equal(t, []string{"landing.glitch.changed", "landing.view.mounted"}, names(m.ListByModule("landing")))
	assert.Equal(t, []string{"ws.html.broadcast"}, names(m.ListByScope(ScopeFramework)))
	assert.Equal(t, []string{"landing.glitch.changed"}, names(m.ListByPrefix("landing.glitch")))

	m.Reset()
	assert.Zero(t, m.Count())
}

func TestMustRegister_Panics(t *testing.T) {
	m := NewManager()
	assert.Panics(t, func() {
		m.MustRegister(DefineModule(TopicConfig{Name: "BAD", Module: "landing", Description: "x"}))
	})
}

func TestTypedTopic_MetadataIsCopied(t *testing.T) {
	topic := DefineModule(TopicConfig{
		Name:        "landing.glitch.changed",
		Module:      "landing",
		Description: "x",
		Metadata:    map[string]interface{}{"is_typed": true},
	})

	md := topic.Metadata()
	md["is_typed"] = false
	assert.Equal(t, true, topic.Metadata()["is_typed"])
}
