package websocket

import (
	"errors"

	"github.com/flashcode/flashweb/internal/topicmgr"
)

// Framework topics used by the bridge.
var (
	// TopicHTMLDirect carries an HTML fragment for the view named in the
	// recipient_id metadata.
	TopicHTMLDirect = topicmgr.DefineFramework(topicmgr.TopicConfig{
		Name:        "ws.html.direct",
		Description: "Send an HTML fragment to a single page view",
		Example:     `<div id="glitch-marker" hx-swap-oob="true"></div>`,
		Metadata: map[string]interface{}{
			"endpoint_type": "html",
			"routing_type":  "direct",
			"requires":      []string{MetaRecipientID},
		},
	})

	// TopicClientReady is published when a view's websocket opens.
	TopicClientReady = topicmgr.DefineFramework(topicmgr.TopicConfig{
		Name:        "ws.client.ready",
		Description: "Published when a page view's websocket connects",
		Example:     `{"endpoint":"html","viewID":"0b6f..."}`,
		Metadata: map[string]interface{}{
			"event_type":     "lifecycle",
			"payload_fields": []string{"endpoint", "viewID"},
		},
	})

	// TopicClientDisconnected is published when a view's websocket closes.
	TopicClientDisconnected = topicmgr.DefineFramework(topicmgr.TopicConfig{
		Name:        "ws.client.disconnected",
		Description: "Published when a page view's websocket disconnects",
		Example:     `{"endpoint":"html","viewID":"0b6f...","reason":"client_closed"}`,
		Metadata: map[string]interface{}{
			"event_type":     "lifecycle",
			"payload_fields": []string{"endpoint", "viewID", "reason"},
		},
	})
)

// Topics lists the framework topics of the bridge.
func Topics() []topicmgr.Topic {
	return []topicmgr.Topic{
		TopicHTMLDirect,
		TopicClientReady,
		TopicClientDisconnected,
	}
}

// RegisterTopics registers the bridge topics with the default topic manager.
func RegisterTopics() error {
	return RegisterTopicsWithManager(topicmgr.Default())
}

// RegisterTopicsWithManager registers the bridge topics with manager.
// Topics that are already registered are skipped.
func RegisterTopicsWithManager(manager *topicmgr.Manager) error {
	for _, topic := range Topics() {
		if err := manager.Register(topic); err != nil {
			var topicErr *topicmgr.TopicError
			if errors.As(err, &topicErr) && topicErr.Type == topicmgr.ErrorDuplicateRegistration {
				continue
			}
			return err
		}
	}
	return nil
}
