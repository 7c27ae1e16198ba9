package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/trace"
)

const (
	metaKeyVisitorID = "visitor_id"
	metaKeyTopic     = "topic"
)

// WatermillBridge implements Publisher and Subscriber on top of watermill's
// in-memory GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

// BridgeOption configures a WatermillBridge.
type BridgeOption func(*bridgeOptions)

type bridgeOptions struct {
	logger watermill.LoggerAdapter
	tracer trace.Tracer
	buffer int64
}

// WithLogger sets the watermill logger.
func WithLogger(logger watermill.LoggerAdapter) BridgeOption {
	return func(o *bridgeOptions) { o.logger = logger }
}

// WithTracer traces every publish and every handled message.
func WithTracer(tracer trace.Tracer) BridgeOption {
	return func(o *bridgeOptions) { o.tracer = tracer }
}

// WithOutputBuffer sets the per-subscriber channel buffer.
func WithOutputBuffer(size int64) BridgeOption {
	return func(o *bridgeOptions) { o.buffer = size }
}

// NewWatermillBridge creates the in-memory bus.
func NewWatermillBridge(opts ...BridgeOption) *WatermillBridge {
	o := bridgeOptions{
		logger: watermill.NewStdLogger(false, false),
		buffer: 64,
	}
	for _, opt := range opts {
		opt(&o)
	}

	goChannel := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: o.buffer}, o.logger)

	var pub message.Publisher = goChannel
	if o.tracer != nil {
		pub = NewPublisherTracingMiddleware(goChannel, o.tracer)
	}

	return &WatermillBridge{
		pub:    pub,
		sub:    goChannel,
		tracer: o.tracer,
	}
}

func toWatermill(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyVisitorID, msg.VisitorID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	wmMsg.SetContext(ctx)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyVisitorID && k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:     wmMsg.Metadata.Get(metaKeyTopic),
		VisitorID: wmMsg.Metadata.Get(metaKeyVisitorID),
		Payload:   wmMsg.Payload,
		Metadata:  metadata,
	}
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, toWatermill(ctx, msg))
}

// Subscribe implements Subscriber. Messages are handled one at a time on a
// dedicated goroutine.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	process := func(wmMsg *message.Message) ([]*message.Message, error) {
		return nil, handler(wmMsg.Context(), fromWatermill(wmMsg))
	}
	if wb.tracer != nil {
		process = TracingMiddleware(wb.tracer)(process)
	}

	go func() {
		for wmMsg := range messages {
			if _, err := process(wmMsg); err != nil {
				// GoChannel redelivers nacked messages forever, so failures are acked too.
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bus down; every subscription channel is closed.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
