package topics

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/flashcode/flashweb/internal/app"
	"github.com/flashcode/flashweb/internal/config"
	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/registry"
	"github.com/flashcode/flashweb/internal/topicmgr"
)

// Initialize registers the topics of every module with a fresh manager and
// returns it. Modules are registered but never booted, so nothing runs.
func Initialize() (*topicmgr.Manager, error) {
	// Keep the CLI quiet.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	manager := topicmgr.NewManager()
	bus := pubsub.NewWatermillBridge(pubsub.WithLogger(watermill.NopLogger{}))
	defer bus.Close()

	// Register needs configuration values, not a valid deployment, so the
	// defaults are enough.
	reg := registry.New(config.Defaults())

	modules := app.NewModules(app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		TopicMgr:   manager,
	})
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			return nil, fmt.Errorf("failed to register module %s: %w", mod.Name(), err)
		}
	}
	return manager, nil
}
