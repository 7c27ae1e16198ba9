package landing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashcode/flashweb/internal/landing/components"
	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/rendering"
	"github.com/flashcode/flashweb/internal/websocket"
)

// GlitchSubscriber listens for glitch flips on the bus, renders the marker as
// an out-of-band fragment and hands it to the websocket bridge for the view
// that flipped.
type GlitchSubscriber struct {
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	logger     *slog.Logger
}

// NewGlitchSubscriber creates a subscriber.
func NewGlitchSubscriber(pub pubsub.Publisher, sub pubsub.Subscriber, renderer rendering.Renderer) *GlitchSubscriber {
	return &GlitchSubscriber{
		publisher:  pub,
		subscriber: sub,
		renderer:   renderer,
		logger:     slog.Default().With("service", "landing-glitch"),
	}
}

// Start subscribes to GlitchChangedEvent until ctx is cancelled.
func (s *GlitchSubscriber) Start(ctx context.Context) error {
	s.logger.Info("Starting glitch subscriber")
	return pubsub.Subscribe(ctx, s.subscriber, GlitchChangedEvent, s.handleGlitchChanged)
}

func (s *GlitchSubscriber) handleGlitchChanged(ctx context.Context, evt GlitchChanged) error {
	html, err := s.renderer.RenderComponent(ctx, components.GlitchMarker(evt.Active, true))
	if err != nil {
		return fmt.Errorf("render glitch marker: %w", err)
	}

	s.logger.Debug("Sending glitch marker", "view_id", evt.ViewID, "active", evt.Active)
	return s.publisher.Publish(ctx, pubsub.Message{
		Topic:    websocket.TopicHTMLDirect.Name(),
		Payload:  html,
		Metadata: map[string]string{websocket.MetaRecipientID: evt.ViewID},
	})
}
