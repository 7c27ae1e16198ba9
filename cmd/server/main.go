package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/flashcode/flashweb/internal/app"
	"github.com/flashcode/flashweb/internal/config"
	"github.com/flashcode/flashweb/internal/logging"
	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/rendering"
	"github.com/flashcode/flashweb/internal/server"
	"github.com/flashcode/flashweb/internal/topicmgr"
)

// version can be set at build time.
// Example: go build -ldflags "-X 'main.version=1.2.0'"
var version = "dev"

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	ctx := context.Background()

	tracing := cfg.GetTracing()
	tracer, cleanup, err := pubsub.SetupOTel(ctx, pubsub.TracingConfig{
		Enabled:     tracing.Enabled,
		ServiceName: tracing.ServiceName,
		ZipkinURL:   tracing.ZipkinURL,
		Version:     version,
	})
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	busOpts := []pubsub.BridgeOption{
		pubsub.WithLogger(watermill.NewStdLogger(cfg.GetLogLevel() == "debug", false)),
	}
	if tracing.Enabled {
		busOpts = append(busOpts, pubsub.WithTracer(tracer))
	}
	bus := pubsub.NewWatermillBridge(busOpts...)
	defer bus.Close()

	renderer := rendering.NewUniversalRenderer()
	modules := app.NewModules(app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
		TopicMgr:   topicmgr.Default(),
	})

	s := server.New(cfg, renderer, modules)
	if err := s.Boot(ctx); err != nil {
		slog.Error("Failed to boot modules", "error", err)
		os.Exit(1)
	}

	if err := s.Start(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
