package app

import (
	"github.com/flashcode/flashweb/internal/landing"
	"github.com/flashcode/flashweb/internal/module"
	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/rendering"
	"github.com/flashcode/flashweb/internal/topicmgr"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	TopicMgr   *topicmgr.Manager
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		landing.New(landing.Dependencies{
			Publisher:  deps.Publisher,
			Subscriber: deps.Subscriber,
			Renderer:   deps.Renderer,
			TopicMgr:   deps.TopicMgr,
		}),
	}
}
