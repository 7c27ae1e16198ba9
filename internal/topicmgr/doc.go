// Package topicmgr keeps the catalogue of message bus topics.
//
// Framework topics belong to the server itself (websocket fan-out, lifecycle);
// module topics are owned by a feature module such as the landing page:
//
//	var GlitchChanged = topicmgr.DefineModule(topicmgr.TopicConfig{
//		Name:        "landing.glitch.changed",
//		Module:      "landing",
//		Description: "The decorative glitch flag flipped",
//		Pattern:     "landing.glitch.changed",
//		Example:     `{"active":true}`,
//	})
//
// Topics are registered once, usually at package initialization, and can be
// listed by module or scope (the CLI's "topics list" does exactly that).
package topicmgr
